package kanren

import "github.com/logicgo/kanren/term"

// unify is the structural-recursive equality at the heart of the
// engine. It dereferences both sides, then dispatches on their shape
// per spec.md §4.3. Every binding it makes is recorded on tr, and on
// failure it undoes everything it bound since it was entered, so
// callers never need to clean up after a failed unify call.
func unify(a, b term.Term, tr *Trail) bool {
	a = term.Deref(a)
	b = term.Deref(b)

	av, aIsVar := a.(*term.Var)
	bv, bIsVar := b.(*term.Var)

	if aIsVar && bIsVar && av == bv {
		// Self-unification after deref: identity, no binding needed.
		return true
	}
	if aIsVar {
		tr.Bind(av, b)
		return true
	}
	if bIsVar {
		tr.Bind(bv, a)
		return true
	}

	switch at := a.(type) {
	case *term.Scalar:
		bt, ok := b.(*term.Scalar)
		return ok && at.Equal(bt)

	case *term.Sequence:
		bt, ok := b.(*term.Sequence)
		if !ok || len(at.Items) != len(bt.Items) {
			return false
		}
		return unifyItems(at.Items, bt.Items, tr)

	case *term.Tuple:
		bt, ok := b.(*term.Tuple)
		if !ok || len(at.Items) != len(bt.Items) {
			return false
		}
		return unifyItems(at.Items, bt.Items, tr)

	case *term.Record:
		bt, ok := b.(*term.Record)
		if !ok {
			return false
		}
		mark := tr.Mark()
		for k, v := range at.Fields {
			subj, present := bt.Fields[k]
			if !present || !unify(v, subj, tr) {
				tr.Undo(mark)
				return false
			}
		}
		return true
	}

	return false
}

// unifyItems unifies two equal-length slices positionally, undoing
// everything it bound if any pair fails partway through.
func unifyItems(as, bs []term.Term, tr *Trail) bool {
	mark := tr.Mark()
	for i := range as {
		if !unify(as[i], bs[i], tr) {
			tr.Undo(mark)
			return false
		}
	}
	return true
}

// Pair is one side of a unify_all request: unify A against B.
type Pair struct {
	A, B term.Term
}
