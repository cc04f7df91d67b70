package engine

import (
	"github.com/tarcisiozf/tkv/engine/command"
	"github.com/tarcisiozf/tkv/engine/command/types/verb"
	"github.com/tarcisiozf/tkv/engine/internal/scope"
	"github.com/tarcisiozf/tkv/engine/internal/txstack"
	"github.com/tarcisiozf/tkv/engine/types/state"
	"iter"
	"strconv"
)

const (
	nullValue     = "NULL"
	noTransaction = "NO TRANSACTION"
)

// DbEngine holds the whole state of one store: the live scope, the stack
// of open transaction snapshots, and the machine state. It is owned by a
// single caller and is not safe for concurrent use.
type DbEngine struct {
	scope        *scope.Scope
	transactions *txstack.Stack
	state        state.State
}

func NewDbEngine() *DbEngine {
	return &DbEngine{
		scope:        scope.New(),
		transactions: txstack.New(),
		state:        state.Running,
	}
}

func (db *DbEngine) Set(key string, value int32) {
	db.scope.Set(key, value)
}

func (db *DbEngine) Get(key string) (int32, bool) {
	return db.scope.Get(key)
}

func (db *DbEngine) Unset(key string) {
	db.scope.Unset(key)
}

func (db *DbEngine) NumEqualTo(value int32) int {
	return db.scope.Count(value)
}

func (db *DbEngine) Begin() {
	db.transactions.Begin(db.scope)
}

// Rollback discards every change since the matching BEGIN by swapping the
// popped snapshot in as the live scope. Reports false when no transaction
// is open.
func (db *DbEngine) Rollback() bool {
	snapshot, ok := db.transactions.Rollback()
	if !ok {
		return false
	}
	db.scope = snapshot
	return true
}

// Commit discards every snapshot at once; the live scope already carries
// all changes. Reports false when no transaction is open.
func (db *DbEngine) Commit() bool {
	return db.transactions.Commit()
}

func (db *DbEngine) End() {
	db.state = state.Terminated
}

func (db *DbEngine) State() state.State {
	return db.state
}

func (db *DbEngine) Depth() int {
	return db.transactions.Depth()
}

func (db *DbEngine) Entries() iter.Seq2[string, int32] {
	return db.scope.All()
}

// Apply performs exactly one transition for a validated command and
// returns its output line, if any. A terminated engine ignores every
// command.
func (db *DbEngine) Apply(cmd command.Command) (string, bool) {
	if db.state.IsTerminated() {
		return "", false
	}

	switch cmd.Verb {
	case verb.Set:
		db.Set(cmd.Key, cmd.Value)
	case verb.Get:
		value, ok := db.Get(cmd.Key)
		if !ok {
			return nullValue, true
		}
		return strconv.Itoa(int(value)), true
	case verb.Unset:
		db.Unset(cmd.Key)
	case verb.NumEqualTo:
		return strconv.Itoa(db.NumEqualTo(cmd.Value)), true
	case verb.Begin:
		db.Begin()
	case verb.Rollback:
		if !db.Rollback() {
			return noTransaction, true
		}
	case verb.Commit:
		if !db.Commit() {
			return noTransaction, true
		}
	case verb.End:
		db.End()
	}

	return "", false
}
