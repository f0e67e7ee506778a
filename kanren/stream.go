// Package kanren implements the evaluation engine described in
// spec.md: logic variables and terms (see the sibling term package),
// trail-based unification, the AND/OR/ONCE combinators, and the query
// driver that turns a goal into a sequence of Solutions.
//
// A Goal is a lazy producer of successes:
//
//	type Goal func(ctx context.Context, st *Store) Stream
//
// A success carries no value; it signals that st's bindings are
// currently consistent with the goal. Calling Stream.Next again
// performs backtracking: any bindings made since the previous success
// are undone before the next is sought. There is no explicit failure
// signal — Next simply returns false when the goal is exhausted.
package kanren

import (
	"context"

	"github.com/logicgo/kanren/term"
)

// Store is the mutable binding store for one logical search: a trail
// shared by every goal evaluated within a single top-level Run or
// Once. It is not safe for concurrent use (spec.md §5) — independent
// searches must each build their own Store via Run/Once.
type Store struct {
	trail *Trail
}

// NewStore returns a fresh, empty binding store.
func NewStore() *Store {
	return &Store{trail: NewTrail()}
}

// Stream is a lazy, pull-based sequence of at-most-one-at-a-time
// successes against a Store. Requesting the next success via Next
// implicitly backtracks: the store returns to the state it had before
// the previously yielded success.
type Stream interface {
	// Next advances to the next success, returning true if one was
	// found. The store reflects that success's bindings until Next or
	// Close is called again. Returns false, permanently, once the
	// stream is exhausted.
	Next(ctx context.Context) bool

	// Close abandons the stream, undoing any bindings made by the
	// most recently yielded (but not yet superseded) success. It is
	// always safe to call, including after the stream is exhausted.
	Close()
}

// Goal is a lazy producer of successes over a Store. Because a Goal
// closure always receives the Store it runs against at the moment it
// is invoked, a Goal already behaves as the "nullary constructor"
// spec.md §4.4/§9 describes — there is no separate form for an
// already-built producer to support, since producers only make sense
// paired with the store they run against.
type Goal func(ctx context.Context, st *Store) Stream

// singleStream yields exactly one no-op success, then is exhausted.
// It backs Succeed and the empty-conjunction base case.
type singleStream struct{ state int } // 0=fresh, 1=yielded, 2=done

func (s *singleStream) Next(ctx context.Context) bool {
	switch s.state {
	case 0:
		s.state = 1
		return true
	case 1:
		s.state = 2
		return false
	default:
		return false
	}
}
func (s *singleStream) Close() { s.state = 2 }

// emptyStream never yields. It backs Fail and the empty-disjunction
// base case.
type emptyStream struct{}

func (emptyStream) Next(ctx context.Context) bool { return false }
func (emptyStream) Close()                         {}

// Succeed is a goal that always yields exactly one success with no
// binding.
var Succeed Goal = func(ctx context.Context, st *Store) Stream {
	return &singleStream{}
}

// Fail is a goal that never yields.
var Fail Goal = func(ctx context.Context, st *Store) Stream {
	return emptyStream{}
}

// unifyStream runs unify once, lazily, undoing its binding when the
// consumer asks for a second success or closes early.
type unifyStream struct {
	a, b  term.Term
	tr    *Trail
	state int // 0=fresh, 1=yielded, 2=done
	mark  int
}

func (u *unifyStream) Next(ctx context.Context) bool {
	switch u.state {
	case 0:
		u.mark = u.tr.Mark()
		if unify(u.a, u.b, u.tr) {
			u.state = 1
			return true
		}
		u.state = 2
		return false
	case 1:
		u.tr.Undo(u.mark)
		u.state = 2
		return false
	default:
		return false
	}
}

func (u *unifyStream) Close() {
	if u.state == 1 {
		u.tr.Undo(u.mark)
	}
	u.state = 2
}

// Eq constructs the fundamental unification goal: constrain a and b
// to be equal, binding variables as needed.
func Eq(a, b term.Term) Goal {
	return func(ctx context.Context, st *Store) Stream {
		select {
		case <-ctx.Done():
			return emptyStream{}
		default:
		}
		return &unifyStream{a: a, b: b, tr: st.trail}
	}
}
