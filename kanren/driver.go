package kanren

import (
	"context"
	"sort"
	"strings"

	"github.com/logicgo/kanren/term"
	"golang.org/x/sync/errgroup"
)

// Solution is an immutable snapshot of named Var bindings at the
// instant one success was yielded. Because it is built from a deep
// reification of each Var's dereferenced value (see reify), later
// backtracking against the originating Store cannot change a
// Solution already handed to the caller (spec.md §8 P9).
type Solution struct {
	names  []string
	values map[string]term.Term
}

func newSolution(vars Vars) *Solution {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)

	values := make(map[string]term.Term, len(vars))
	for n, v := range vars {
		values[n] = reify(v)
	}
	return &Solution{names: names, values: values}
}

// Get returns the dereferenced value bound to name at the moment this
// Solution was produced. It is a usage fault to ask for a name the
// Solution was not constructed with.
func (s *Solution) Get(name string) (term.Term, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, &unknownNameError{name: name}
	}
	return v, nil
}

// GetAll returns the dereferenced values for every requested name, in
// the same order as names. If any name is unknown, it returns a
// single aggregated error listing all of them rather than stopping at
// the first.
func (s *Solution) GetAll(names ...string) ([]term.Term, error) {
	var missing []string
	for _, n := range names {
		if _, ok := s.values[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, aggregateUnknownNames(missing)
	}

	out := make([]term.Term, len(names))
	for i, n := range names {
		out[i] = s.values[n]
	}
	return out, nil
}

// Names returns the solution's variable names in sorted order.
func (s *Solution) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// String renders a diagnostic representation like "X=1, Y=2".
func (s *Solution) String() string {
	parts := make([]string, len(s.names))
	for i, n := range s.names {
		parts[i] = n + "=" + s.values[n].String()
	}
	return strings.Join(parts, ", ")
}

// reify deep-copies t's dereferenced shape, replacing any
// still-unbound Var it reaches with a fresh placeholder. A fresh
// placeholder (rather than the original Var) is essential: once the
// originating search backtracks, the original Var may become bound to
// something else entirely, and an already-issued Solution must not
// silently start reflecting that.
func reify(t term.Term) term.Term {
	t = term.Deref(t)
	switch v := t.(type) {
	case *term.Var:
		return term.NewVar(v.Name())
	case *term.Sequence:
		items := make([]term.Term, len(v.Items))
		for i, it := range v.Items {
			items[i] = reify(it)
		}
		return term.NewSequence(items...)
	case *term.Tuple:
		items := make([]term.Term, len(v.Items))
		for i, it := range v.Items {
			items[i] = reify(it)
		}
		return term.NewTuple(items...)
	case *term.Record:
		fields := make(map[string]term.Term, len(v.Fields))
		for k, fv := range v.Fields {
			fields[k] = reify(fv)
		}
		return term.NewRecord(fields)
	default:
		return t
	}
}

// Solutions is the lazy sequence of Solution produced by Run: each
// call to Next backtracks into the underlying goal for its next
// success, snapshotting bindings into a Solution before anything is
// undone.
type Solutions struct {
	ctx    context.Context
	stream Stream
	vars   Vars
	cur    *Solution
}

// Run evaluates goal against a fresh Store and returns the lazy
// sequence of Solutions it produces, one per success, snapshotting
// the named vars at each.
func Run(ctx context.Context, goal Goal, vars Vars) *Solutions {
	st := NewStore()
	return &Solutions{ctx: ctx, stream: goal(ctx, st), vars: vars}
}

// Next advances to the next success and snapshots it. It returns
// false once the goal is exhausted; Solution then returns the last
// Solution produced, if any.
func (s *Solutions) Next() bool {
	if !s.stream.Next(s.ctx) {
		return false
	}
	s.cur = newSolution(s.vars)
	return true
}

// Solution returns the Solution snapshotted by the most recent
// successful call to Next.
func (s *Solutions) Solution() *Solution { return s.cur }

// Close abandons the remaining search, undoing any bindings still in
// effect. Safe to call at any time, including after exhaustion.
func (s *Solutions) Close() { s.stream.Close() }

// RunOne returns the first solution of goal, or false if it has none.
func RunOne(ctx context.Context, goal Goal, vars Vars) (*Solution, bool) {
	s := Run(ctx, goal, vars)
	defer s.Close()
	if s.Next() {
		return s.Solution(), true
	}
	return nil, false
}

// RunAll materializes every solution of goal. It does not terminate if
// goal has infinitely many solutions; pass a context with a deadline
// to bound it.
func RunAll(ctx context.Context, goal Goal, vars Vars) []*Solution {
	s := Run(ctx, goal, vars)
	defer s.Close()

	var all []*Solution
	for s.Next() {
		all = append(all, s.Solution())
	}
	return all
}

// Once runs goal against a fresh Store, commits to its first success
// by never unwinding the trail, and reports whether a success was
// found. After Once returns true, the caller reads the committed
// bindings directly by dereferencing the Vars it built goal from;
// those bindings persist across subsequent, unrelated queries because
// this Store's trail is simply never undone (see DESIGN.md's
// discussion of why commit mode needs no global flag in this port).
func Once(ctx context.Context, goal Goal) bool {
	st := NewStore()
	stream := goal(ctx, st)
	return stream.Next(ctx)
}

// Query pairs a goal with the Vars it should be observed through, for
// use with RunAllConcurrent.
type Query struct {
	Goal Goal
	Vars Vars
}

// RunAllConcurrent runs several independent top-level queries
// concurrently and returns each one's full solution list in the same
// order as queries. Per spec.md §5, concurrency is sound here only
// because each query gets its own Store over its own, disjoint set of
// Vars — there is no shared mutable binding store across goroutines.
func RunAllConcurrent(ctx context.Context, queries []Query) ([][]*Solution, error) {
	results := make([][]*Solution, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = RunAll(gctx, q.Goal, q.Vars)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
