package kanren

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

// Tracing is an opt-in diagnostic: entry/exit/success-count logging
// with nesting depth, via a leveled structured logger. It is
// deliberately process-global state (not threaded through Store),
// matching spec.md §6's note that tracing is a diagnostic, not a
// semantic feature, so it need not be task-local the way the trail is.
var tracer atomic.Value // holds loggerHolder

// loggerHolder wraps the current hclog.Logger so that every value
// stored in tracer has the same concrete type, as atomic.Value requires
// (the null logger and a real logger are different types).
type loggerHolder struct{ hclog.Logger }

var traceDepth int64

func init() {
	tracer.Store(loggerHolder{hclog.NewNullLogger()})
	if os.Getenv("KANREN_TRACE") == "1" {
		enableTracer()
	}
}

func enableTracer() {
	tracer.Store(loggerHolder{hclog.New(&hclog.LoggerOptions{
		Name:  "kanren",
		Level: hclog.Trace,
	})})
}

func currentTracer() hclog.Logger {
	return tracer.Load().(loggerHolder).Logger
}

// TraceOn enables trace logging for Traced goals, at hclog.Trace
// level. It is global, matching the teacher's GOKANDO_WFS_TRACE
// env-gated toggle (wfs_trace.go) rather than a Store-scoped setting.
func TraceOn() { enableTracer() }

// TraceOff disables trace logging; Traced goals run with no logging
// overhead beyond a depth-counter increment/decrement.
func TraceOff() { tracer.Store(loggerHolder{hclog.NewNullLogger()}) }

// SetLogger replaces the tracer with a caller-supplied hclog.Logger,
// for embedding this engine's trace output into a larger application's
// logging setup.
func SetLogger(l hclog.Logger) { tracer.Store(loggerHolder{l}) }

// Traced wraps goal so that every entry, success, and exit is logged
// under name, with the current nesting depth attached.
func Traced(name string, goal Goal) Goal {
	return func(ctx context.Context, st *Store) Stream {
		depth := atomic.AddInt64(&traceDepth, 1)
		log := currentTracer()
		log.Trace("enter", "goal", name, "depth", depth)
		return &tracedStream{inner: goal(ctx, st), name: name, depth: depth, log: log}
	}
}

type tracedStream struct {
	inner Stream
	name  string
	depth int64
	log   hclog.Logger
	count int
	exited bool
}

func (t *tracedStream) Next(ctx context.Context) bool {
	ok := t.inner.Next(ctx)
	if ok {
		t.count++
		t.log.Trace("success", "goal", t.name, "depth", t.depth, "count", t.count)
		return true
	}
	t.markExited()
	return false
}

func (t *tracedStream) Close() {
	t.inner.Close()
	t.markExited()
}

func (t *tracedStream) markExited() {
	if t.exited {
		return
	}
	t.exited = true
	atomic.AddInt64(&traceDepth, -1)
	t.log.Trace("exit", "goal", t.name, "depth", t.depth, "count", t.count)
}
