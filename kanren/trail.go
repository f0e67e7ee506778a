package kanren

import "github.com/logicgo/kanren/term"

// trailEntry records one variable's prior binding so it can be
// restored on backtrack.
type trailEntry struct {
	v     *term.Var
	prior term.Term
}

// Trail is the explicit undo log backing one logical search. A single
// Trail is shared, by pointer, across every goal evaluated within one
// top-level Run/Once call — it is the "binding store" of spec.md §3,
// made concrete as a stack rather than left as an implicit lexical
// discipline.
//
// Trail is not safe for concurrent use; per spec.md §5, a search is
// single-threaded cooperative within one logical task.
type Trail struct {
	entries []trailEntry
}

// NewTrail returns an empty trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Mark returns a position in the trail that can later be passed to
// Undo to unwind everything bound since this call.
func (t *Trail) Mark() int {
	return len(t.entries)
}

// Bind installs v's binding, recording its prior value (unbound or
// previously bound) so Undo can restore it later.
func (t *Trail) Bind(v *term.Var, val term.Term) {
	t.entries = append(t.entries, trailEntry{v: v, prior: v.Binding()})
	v.SetBinding(val)
}

// Undo restores every binding made since mark, in reverse order of
// installation, and truncates the trail back to mark. Calling Undo
// with the trail's current Mark() is a no-op.
func (t *Trail) Undo(mark int) {
	for i := len(t.entries) - 1; i >= mark; i-- {
		e := t.entries[i]
		e.v.SetBinding(e.prior)
	}
	t.entries = t.entries[:mark]
}
