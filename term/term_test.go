package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDerefUnbound(t *testing.T) {
	v := NewVar("x")
	require.Equal(t, Term(v), Deref(v))
}

func TestDerefChain(t *testing.T) {
	a := NewVar("a")
	b := NewVar("b")
	s := NewScalar(5)

	a.SetBinding(b)
	b.SetBinding(s)

	require.Equal(t, Term(s), Deref(a))
	require.Equal(t, Term(s), Deref(b))
}

func TestDerefNonVar(t *testing.T) {
	s := NewScalar("hi")
	require.Equal(t, Term(s), Deref(s))
}

func TestScalarEqualStrictTypes(t *testing.T) {
	require.True(t, NewScalar(1).Equal(NewScalar(1)))
	require.False(t, NewScalar(0).Equal(NewScalar(false)))
	require.False(t, NewScalar(1).Equal(NewScalar(1.0)))
	require.False(t, NewScalar(int64(1)).Equal(NewScalar(1)))
}

func TestVarIdentityNotName(t *testing.T) {
	a := NewVar("q")
	b := NewVar("q")
	require.NotEqual(t, a.ID(), b.ID())
	require.NotSame(t, a, b)
}

func TestSequenceTupleRecordString(t *testing.T) {
	seq := NewSequence(NewScalar(1), NewScalar(2))
	require.Equal(t, "[1 2]", seq.String())

	tup := NewTuple(NewScalar("a"), NewScalar(1))
	require.Equal(t, "(a, 1)", tup.String())

	rec := NewRecord(map[string]Term{"b": NewScalar(2), "a": NewScalar(1)})
	require.Equal(t, "{a: 1, b: 2}", rec.String())
}

func TestIsVar(t *testing.T) {
	require.True(t, NewVar("x").IsVar())
	require.False(t, NewScalar(1).IsVar())
	require.False(t, NewSequence().IsVar())
	require.False(t, NewTuple().IsVar())
	require.False(t, NewRecord(nil).IsVar())
}

// TestStructuralDiffOfCompoundTerms uses cmp.Diff rather than
// reflect.DeepEqual (via require.Equal) for compound-term comparison,
// since a mismatch inside a nested Sequence/Tuple/Record produces a
// readable field-path diff instead of an opaque "not equal".
func TestStructuralDiffOfCompoundTerms(t *testing.T) {
	a := NewSequence(NewTuple(NewScalar("bart"), NewScalar(10)), NewScalar(true))
	b := NewSequence(NewTuple(NewScalar("bart"), NewScalar(10)), NewScalar(true))
	require.Empty(t, cmp.Diff(a, b))

	c := NewSequence(NewTuple(NewScalar("bart"), NewScalar(11)), NewScalar(true))
	diff := cmp.Diff(a, c)
	require.NotEmpty(t, diff)
	require.Contains(t, diff, "10")
}

func TestStructuralDiffOfRecords(t *testing.T) {
	a := NewRecord(map[string]Term{"name": NewScalar("bart"), "age": NewScalar(10)})
	b := NewRecord(map[string]Term{"name": NewScalar("bart"), "age": NewScalar(10)})
	require.Empty(t, cmp.Diff(a, b))

	c := NewRecord(map[string]Term{"name": NewScalar("lisa"), "age": NewScalar(8)})
	require.NotEmpty(t, cmp.Diff(a, c))
}
