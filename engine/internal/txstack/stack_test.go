package txstack_test

import (
	"github.com/tarcisiozf/tkv/engine/internal/scope"
	"github.com/tarcisiozf/tkv/engine/internal/txstack"
	"testing"
)

func TestStack_BeginSnapshotsCurrent(t *testing.T) {
	t.Parallel()

	current := scope.New()
	current.Set("a", 1)

	st := txstack.New()
	st.Begin(current)

	current.Set("a", 2)
	current.Set("b", 3)

	snapshot, ok := st.Rollback()
	if !ok {
		t.Fatalf("Expected a snapshot, got none")
	}
	value, ok := snapshot.Get("a")
	if !ok || value != 1 {
		t.Fatalf("Expected snapshot to hold a=1, got %d (present: %v)", value, ok)
	}
	if _, ok := snapshot.Get("b"); ok {
		t.Fatalf("Expected snapshot to predate b")
	}
	if st.Depth() != 0 {
		t.Fatalf("Expected empty stack after rollback, depth is %d", st.Depth())
	}
}

func TestStack_RollbackOnEmptyStack(t *testing.T) {
	t.Parallel()

	st := txstack.New()
	snapshot, ok := st.Rollback()
	if ok {
		t.Fatalf("Expected no snapshot from an empty stack")
	}
	if snapshot != nil {
		t.Fatalf("Expected nil snapshot, got %v", snapshot)
	}
}

func TestStack_CommitDiscardsEveryLevel(t *testing.T) {
	t.Parallel()

	current := scope.New()
	st := txstack.New()

	for i := 0; i < 3; i++ {
		st.Begin(current)
	}
	if st.Depth() != 3 {
		t.Fatalf("Expected depth 3, got %d", st.Depth())
	}

	if !st.Commit() {
		t.Fatalf("Expected commit to succeed with open snapshots")
	}
	if st.Depth() != 0 {
		t.Fatalf("Expected empty stack after commit, depth is %d", st.Depth())
	}

	if st.Commit() {
		t.Fatalf("Expected commit on an empty stack to report no transaction")
	}
}

func TestStack_NestedRollbacksRestoreInOrder(t *testing.T) {
	t.Parallel()

	current := scope.New()
	st := txstack.New()

	current.Set("a", 10)
	st.Begin(current)
	current.Set("a", 20)
	st.Begin(current)
	current.Set("a", 30)

	snapshot, ok := st.Rollback()
	if !ok {
		t.Fatalf("Expected a snapshot from the inner block")
	}
	if value, _ := snapshot.Get("a"); value != 20 {
		t.Fatalf("Expected inner snapshot to hold a=20, got %d", value)
	}

	snapshot, ok = st.Rollback()
	if !ok {
		t.Fatalf("Expected a snapshot from the outer block")
	}
	if value, _ := snapshot.Get("a"); value != 10 {
		t.Fatalf("Expected outer snapshot to hold a=10, got %d", value)
	}
}
