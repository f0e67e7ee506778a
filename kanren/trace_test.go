package kanren

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/logicgo/kanren/term"
	"github.com/stretchr/testify/require"
)

func TestTracedDoesNotChangeSemantics(t *testing.T) {
	ctx := context.Background()
	q := term.NewVar("q")
	g := Traced("eq-five", Eq(q, term.NewScalar(5)))

	sols := RunAll(ctx, g, Vars{"q": q})
	require.Len(t, sols, 1)
	v, _ := sols[0].Get("q")
	require.Equal(t, 5, v.(*term.Scalar).Value)
}

func TestTraceOnOffToggle(t *testing.T) {
	defer TraceOff()

	TraceOn()
	require.True(t, currentTracer().IsTrace())

	TraceOff()
	require.False(t, currentTracer().IsTrace())
}

func TestSetLoggerOverride(t *testing.T) {
	defer TraceOff()
	custom := hclog.NewNullLogger()
	SetLogger(custom)
	require.Same(t, custom, currentTracer())
}
