// Package trail implements the backtrack environment that the rest of this
// module depends on: a LIFO stack of undo closures, addressable by mark, so
// that search can unwind any number of decisions and have every state
// mutation recorded since that point reversed in the opposite order it was
// applied.
//
// The interface a consumer actually depends on is tiny — Environment only
// needs Save. This package's Trail is the reference implementation used
// by this module's own tests and its cmd/gacdiff CLI driver; a real
// solver is free to plug in its own backtrack environment instead, as
// long as it honors the same Save/undo-ordering contract.
package trail

// Environment is the external collaborator every backtrack-aware
// mutation in this module registers undo actions with. Save must execute
// undo exactly once when search pops past the decision that was active
// when Save was called, and must do so in LIFO order relative to every
// other undo saved since that decision — nested backtracks depend on
// this ordering guarantee.
type Environment interface {
	Save(undo func())
}

// Trail is a concrete, mark-addressable Environment. It owns nothing
// about the decisions themselves; callers take a Mark before branching
// and call UndoTo when unwinding past it.
type Trail struct {
	undo []func()
}

// New returns an empty Trail.
func New() *Trail {
	return &Trail{undo: make([]func(), 0, 64)}
}

// Save appends undo to the trail. Panics on a nil closure — registering
// a no-op undo is a caller bug, not a runtime condition to tolerate.
func (t *Trail) Save(undo func()) {
	if undo == nil {
		panic("trail: Save called with a nil undo closure")
	}
	t.undo = append(t.undo, undo)
}

// Mark returns the current trail depth, to be passed back to UndoTo.
func (t *Trail) Mark() int {
	return len(t.undo)
}

// Depth is an alias for Mark, read where the value is used purely as a
// diagnostic rather than a token to later UndoTo.
func (t *Trail) Depth() int {
	return len(t.undo)
}

// UndoTo replays every undo closure saved since mark, most-recent-first,
// and truncates the trail to mark. Calling UndoTo with a mark greater
// than the current depth is a caller bug and panics.
func (t *Trail) UndoTo(mark int) {
	if mark > len(t.undo) {
		panic("trail: UndoTo mark exceeds current depth")
	}
	for i := len(t.undo) - 1; i >= mark; i-- {
		t.undo[i]()
	}
	t.undo = t.undo[:mark]
}
