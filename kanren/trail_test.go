package kanren

import (
	"testing"

	"github.com/logicgo/kanren/term"
	"github.com/stretchr/testify/require"
)

func TestTrailBindAndUndo(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	mark := tr.Mark()
	tr.Bind(x, term.NewScalar(1))
	require.Equal(t, term.Term(term.NewScalar(1)), term.Deref(x))

	tr.Undo(mark)
	require.True(t, x.IsVar())
	require.Nil(t, x.Binding())
}

func TestTrailNestedMarks(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	y := term.NewVar("y")

	outer := tr.Mark()
	tr.Bind(x, term.NewScalar(1))

	inner := tr.Mark()
	tr.Bind(y, term.NewScalar(2))
	tr.Undo(inner)

	require.Nil(t, y.Binding())
	require.NotNil(t, x.Binding())

	tr.Undo(outer)
	require.Nil(t, x.Binding())
}

func TestTrailUndoNoOpAtCurrentMark(t *testing.T) {
	tr := NewTrail()
	x := term.NewVar("x")
	tr.Bind(x, term.NewScalar(1))
	tr.Undo(tr.Mark())
	require.NotNil(t, x.Binding())
}
