package kanren

import (
	"context"
	"testing"

	"github.com/logicgo/kanren/term"
	"github.com/stretchr/testify/require"
)

func TestUnifyScalarsGround(t *testing.T) {
	tr := NewTrail()
	require.True(t, unify(term.NewScalar(5), term.NewScalar(5), tr))
	require.False(t, unify(term.NewScalar(5), term.NewScalar(6), tr))
}

func TestUnifyScalarStrictTypes(t *testing.T) {
	tr := NewTrail()
	require.False(t, unify(term.NewScalar(0), term.NewScalar(false), tr))
	require.False(t, unify(term.NewScalar(1), term.NewScalar(1.0), tr))
}

func TestUnifyVarBinds(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	require.True(t, unify(x, term.NewScalar("hi"), tr))
	require.Equal(t, term.Term(term.NewScalar("hi")), term.Deref(x))
}

func TestUnifyUndoesOnFailurePartway(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	seq1 := term.NewSequence(x, term.NewScalar(2))
	seq2 := term.NewSequence(term.NewScalar(1), term.NewScalar(3))

	ok := unify(seq1, seq2, tr)
	require.False(t, ok)
	// x must be unbound again: the first element matched and bound x,
	// but the second element's mismatch must undo that binding too.
	require.Equal(t, term.Term(x), term.Deref(x))
}

func TestUnifySequenceDifferentLengthFails(t *testing.T) {
	tr := NewTrail()
	a := term.NewSequence(term.NewScalar(1))
	b := term.NewSequence(term.NewScalar(1), term.NewScalar(2))
	require.False(t, unify(a, b, tr))
}

func TestUnifyTupleArity(t *testing.T) {
	tr := NewTrail()
	a := term.NewTuple(term.NewScalar(1), term.NewScalar(2))
	b := term.NewTuple(term.NewScalar(1), term.NewScalar(2))
	require.True(t, unify(a, b, tr))

	tr2 := NewTrail()
	c := term.NewTuple(term.NewScalar(1))
	require.False(t, unify(a, c, tr2))
}

func TestUnifyRecordOneSided(t *testing.T) {
	tr := NewTrail()
	pattern := term.NewRecord(map[string]term.Term{"name": term.NewScalar("bart")})
	subject := term.NewRecord(map[string]term.Term{
		"name": term.NewScalar("bart"),
		"age":  term.NewScalar(10),
	})
	require.True(t, unify(pattern, subject, tr))

	tr2 := NewTrail()
	// Direction matters: subject cannot act as a pattern requiring a
	// key the real pattern doesn't have.
	require.False(t, unify(subject, pattern, tr2))
}

func TestUnifyRecordMissingKeyFails(t *testing.T) {
	tr := NewTrail()
	pattern := term.NewRecord(map[string]term.Term{"missing": term.NewScalar(1)})
	subject := term.NewRecord(map[string]term.Term{"name": term.NewScalar("bart")})
	require.False(t, unify(pattern, subject, tr))
}

func TestUnifySelfIdentityNoBinding(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	require.True(t, unify(x, x, tr))
	require.Equal(t, 0, tr.Mark())
}

func TestUnifyTwoUnboundVars(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	y := term.NewVar("y")
	require.True(t, unify(x, y, tr))
	// Whichever direction was chosen, both now deref to the same term.
	require.Equal(t, term.Deref(x), term.Deref(y))
}

func TestUnifySymmetricForGroundTerms(t *testing.T) {
	a := term.NewSequence(term.NewScalar(1), term.NewScalar("x"))
	b := term.NewSequence(term.NewScalar(1), term.NewScalar("x"))

	tr1 := NewTrail()
	ok1 := unify(a, b, tr1)
	tr2 := NewTrail()
	ok2 := unify(b, a, tr2)
	require.Equal(t, ok1, ok2)
	require.True(t, ok1)
}

// TestUnifyAllSimultaneousPairs issues a direct unify_all request over
// a slice of Pair (one plain Var pair, one nested Sequence pair whose
// variables sit on opposite sides), rather than a single nested
// Sequence unification, so UnifyAll and Pair are actually exercised
// rather than merely compiled.
func TestUnifyAllSimultaneousPairs(t *testing.T) {
	ctx := context.Background()
	x := term.NewVar("X")
	y := term.NewVar("Y")
	z := term.NewVar("Z")

	pairs := []Pair{
		{A: x, B: term.NewScalar(1)},
		{A: term.NewSequence(y, term.NewScalar(2)), B: term.NewSequence(term.NewScalar(3), z)},
	}

	sol, ok := RunOne(ctx, UnifyAll(pairs), Vars{"X": x, "Y": y, "Z": z})
	require.True(t, ok)

	xv, _ := sol.Get("X")
	yv, _ := sol.Get("Y")
	zv, _ := sol.Get("Z")
	require.Equal(t, 1, xv.(*term.Scalar).Value)
	require.Equal(t, 3, yv.(*term.Scalar).Value)
	require.Equal(t, 2, zv.(*term.Scalar).Value)
}

// TestUnifyAllFailsPartwayUndoesEverything mirrors scenario 5: when a
// later pair in the sequence cannot unify, the whole UnifyAll fails
// and every binding made by earlier pairs is undone (the conjunctive
// backbone UnifyAll is built from already guarantees this, but the
// required §6 operation itself needs a failing-path test too).
func TestUnifyAllFailsPartwayUndoesEverything(t *testing.T) {
	ctx := context.Background()
	x := term.NewVar("X")

	pairs := []Pair{
		{A: x, B: term.NewScalar(1)},
		{A: x, B: term.NewScalar(2)},
	}

	sols := RunAll(ctx, UnifyAll(pairs), Vars{"X": x})
	require.Empty(t, sols)
	require.Nil(t, x.Binding())
}
