package kanren

import (
	"context"

	"github.com/logicgo/kanren/term"
)

// AND builds the conjunction of goals: a success for every tuple
// (s1, ..., sn) where each si is a success of goals[i] evaluated with
// the store left by s(i-1). Enumeration is lexicographic: the
// rightmost goal varies fastest. AND() with no goals yields exactly
// one empty success.
func AND(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Succeed
	case 1:
		return goals[0]
	}
	return func(ctx context.Context, st *Store) Stream {
		return &conjStream{ctx: ctx, st: st, goals: goals, streams: make([]Stream, len(goals)), i: 0}
	}
}

// conjStream implements the conjunctive search state machine of
// spec.md §4.6: a cursor i into goals, with streams[i] holding that
// goal's in-progress resumption point. Advancing goal i to success
// moves the cursor forward (starting the next goal fresh); a goal
// exhausting moves the cursor back (resuming the previous goal).
type conjStream struct {
	ctx     context.Context
	st      *Store
	goals   []Goal
	streams []Stream
	i       int
	emitted bool
}

func (c *conjStream) Next(ctx context.Context) bool {
	if c.i < 0 {
		return false
	}
	if c.emitted {
		// "After emitting an overall success, on next demand:
		// backtrack step on goal n-1."
		c.i = len(c.goals) - 1
		c.emitted = false
	}
	for {
		if c.i < 0 {
			return false
		}
		if c.i == len(c.goals) {
			c.emitted = true
			return true
		}
		if c.streams[c.i] == nil {
			c.streams[c.i] = c.goals[c.i](ctx, c.st)
		}
		if c.streams[c.i].Next(ctx) {
			c.i++
		} else {
			c.streams[c.i] = nil
			c.i--
		}
	}
}

func (c *conjStream) Close() {
	start := c.i
	if start >= len(c.goals) {
		start = len(c.goals) - 1
	}
	for idx := start; idx >= 0; idx-- {
		if c.streams[idx] != nil {
			c.streams[idx].Close()
			c.streams[idx] = nil
		}
	}
	c.i = -1
}

// UnifyAll yields once iff every pair unifies simultaneously in
// sequence: it unifies the first pair, then recursively the rest
// against the result, undoing the head's binding if the remainder
// fails. This is exactly AND over the pairwise Eq goals, which already
// implements that backbone.
func UnifyAll(pairs []Pair) Goal {
	goals := make([]Goal, len(pairs))
	for i, p := range pairs {
		goals[i] = Eq(p.A, p.B)
	}
	return AND(goals...)
}

// OR builds the disjunction of goals: every success of goals[0], then
// every success of goals[1], and so on, with each branch's bindings
// undone before the next is tried. OR() with no goals never succeeds.
//
// Enumeration is strictly sequential and left-to-right. This is a
// deliberate departure from a goroutine-fanned-out disjunction: running
// branches concurrently would make the order of successes
// nondeterministic, which violates the ordering guarantee spec.md §5
// and §8 (P1) require as a testable property.
func OR(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail
	case 1:
		return goals[0]
	}
	return func(ctx context.Context, st *Store) Stream {
		return &disjStream{ctx: ctx, st: st, goals: goals}
	}
}

type disjStream struct {
	ctx   context.Context
	st    *Store
	goals []Goal
	idx   int
	cur   Stream
}

func (d *disjStream) Next(ctx context.Context) bool {
	for d.idx < len(d.goals) {
		if d.cur == nil {
			d.cur = d.goals[d.idx](ctx, d.st)
		}
		if d.cur.Next(ctx) {
			return true
		}
		d.cur = nil
		d.idx++
	}
	return false
}

func (d *disjStream) Close() {
	if d.cur != nil {
		d.cur.Close()
		d.cur = nil
	}
	d.idx = len(d.goals)
}

// ONCE yields at most the first success of g, then ends. Unlike the
// commit-mode driver (Once), this combinator still undoes g's
// bindings when the consumer requests a further success or closes the
// stream — the ordinary trail discipline applies, it is simply
// truncated to one solution.
func ONCE(g Goal) Goal {
	return func(ctx context.Context, st *Store) Stream {
		return &onceStream{inner: g(ctx, st)}
	}
}

type onceStream struct {
	inner Stream
	state int // 0=fresh, 1=yielded, 2=done
}

func (o *onceStream) Next(ctx context.Context) bool {
	switch o.state {
	case 0:
		if o.inner.Next(ctx) {
			o.state = 1
			return true
		}
		o.state = 2
		return false
	case 1:
		o.inner.Close()
		o.state = 2
		return false
	default:
		return false
	}
}

func (o *onceStream) Close() {
	if o.state == 1 {
		o.inner.Close()
	}
	o.state = 2
}

// NotUnifiable implements negation-as-failure over unification: it
// yields exactly one success iff unify(a, b) would fail, and never
// leaks a binding — the probe unification, whether it succeeds or
// fails, is always undone before NotUnifiable returns.
func NotUnifiable(a, b term.Term) Goal {
	return func(ctx context.Context, st *Store) Stream {
		mark := st.trail.Mark()
		ok := unify(a, b, st.trail)
		st.trail.Undo(mark)
		if ok {
			return emptyStream{}
		}
		return &singleStream{}
	}
}

// Different is an alias for NotUnifiable, matching spec.md's external
// naming (not_unifiable / different).
func Different(a, b term.Term) Goal {
	return NotUnifiable(a, b)
}
