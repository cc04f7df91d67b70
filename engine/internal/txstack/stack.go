package txstack

import "github.com/tarcisiozf/tkv/engine/internal/scope"

type Stack struct {
	snapshots []*scope.Scope
}

func New() *Stack {
	return &Stack{}
}

func (st *Stack) Begin(current *scope.Scope) {
	st.snapshots = append(st.snapshots, current.Clone())
}

func (st *Stack) Rollback() (*scope.Scope, bool) {
	if len(st.snapshots) == 0 {
		return nil, false
	}
	top := st.snapshots[len(st.snapshots)-1]
	st.snapshots = st.snapshots[:len(st.snapshots)-1]
	return top, true
}

func (st *Stack) Commit() bool {
	if len(st.snapshots) == 0 {
		return false
	}
	st.snapshots = nil
	return true
}

func (st *Stack) Depth() int {
	return len(st.snapshots)
}
