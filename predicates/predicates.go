// Package predicates is the standard relational predicate library that
// sits above the kanren engine: list membership, concatenation, and a
// small numeric range generator. None of these add engine-level
// invariants of their own — they are ordinary Goal-returning functions
// built entirely out of kanren's public contract (Eq, OR, Fail) — which
// is why spec.md scopes the predicate library out of the core redesign
// even though member is exercised directly by the core's own test
// scenarios. Negation-as-failure (different) is not defined here; it is
// kanren.Different / kanren.NotUnifiable.
//
// Lists here are represented as plain []term.Term rather than
// logic-variable-length chains, because term.Sequence (unlike the
// teacher's cons-pair Term) always has a length fixed at construction
// time; that keeps these predicates simple case-split enumerations
// instead of recursive relations over an open-ended tail.
package predicates

import (
	"github.com/logicgo/kanren/kanren"
	"github.com/logicgo/kanren/term"
)

// Member relates x to each element of items in turn: OR over a direct
// Eq goal per element, so backtracking visits items in order — this
// is exactly spec.md §8 scenario 3's member/2.
func Member(x term.Term, items []term.Term) kanren.Goal {
	goals := make([]kanren.Goal, len(items))
	for i, it := range items {
		goals[i] = kanren.Eq(x, it)
	}
	return kanren.OR(goals...)
}

// Append unifies result with the concatenation of a and b. Both
// operands must already be concrete slices (this predicate does not
// search over list structure the way a Pair-chain append/3 would);
// it exists to exercise list_operations.py's append use case with
// the Sequence term shape.
func Append(a, b []term.Term, result term.Term) kanren.Goal {
	combined := make([]term.Term, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return kanren.Eq(result, term.NewSequence(combined...))
}

// Between relates x to each integer in [lo, hi], inclusive, in
// ascending order.
func Between(lo, hi int, x term.Term) kanren.Goal {
	if hi < lo {
		return kanren.Fail
	}
	goals := make([]kanren.Goal, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		goals = append(goals, kanren.Eq(x, term.NewScalar(i)))
	}
	return kanren.OR(goals...)
}

// Length relates a concrete list to its length as a Scalar.
func Length(items []term.Term, n term.Term) kanren.Goal {
	return kanren.Eq(n, term.NewScalar(len(items)))
}
