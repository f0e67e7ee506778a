// Package term defines the value model of the engine: the things that
// can appear as arguments to unification. A Term is one of an opaque
// Scalar, an ordered Sequence, a fixed-arity Tuple, a keyed Record, or
// a logic Var. Var is the only mutable constructor; everything else is
// immutable once built.
package term

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Term is any value the engine can unify.
type Term interface {
	// String returns a human-readable representation, used for
	// diagnostics and Solution printing.
	String() string

	// IsVar reports whether this term is a logic variable. Every
	// operation that inspects or compares a term must deref first;
	// IsVar lets callers recognize a Var without a type switch.
	IsVar() bool
}

// Scalar is an opaque, comparable host value: a number, string, bool,
// or symbol. Two scalars unify only if their values compare equal
// under Go's == — which, deliberately, does not conflate 0 and false,
// or 1 and 1.0, because they carry different dynamic types inside the
// interface{}.
type Scalar struct {
	Value interface{}
}

// NewScalar wraps a host value as a Scalar term.
func NewScalar(v interface{}) *Scalar { return &Scalar{Value: v} }

func (s *Scalar) String() string { return fmt.Sprintf("%v", s.Value) }
func (s *Scalar) IsVar() bool    { return false }

// Equal reports strict host equality, distinguishing numeric types
// from booleans and from each other (int 1 is not float64 1.0).
func (s *Scalar) Equal(other *Scalar) bool {
	return s.Value == other.Value
}

// Sequence is an ordered list of terms with a known length.
type Sequence struct {
	Items []Term
}

// NewSequence builds a Sequence from the given terms.
func NewSequence(items ...Term) *Sequence { return &Sequence{Items: items} }

func (s *Sequence) IsVar() bool { return false }
func (s *Sequence) String() string {
	parts := make([]string, len(s.Items))
	for i, t := range s.Items {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Tuple is a fixed-arity positional record of terms. As with Sequence,
// two tuples of different arity never unify; a Tuple never unifies with
// a Sequence, even one with the same items.
type Tuple struct {
	Items []Term
}

// NewTuple builds a Tuple from the given terms.
func NewTuple(items ...Term) *Tuple { return &Tuple{Items: items} }

func (t *Tuple) IsVar() bool { return false }
func (t *Tuple) String() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Record is a mapping from string keys to terms. Unification of two
// records is one-sided: every key present in the pattern (the first
// unify argument) must be present in the subject (the second), with
// matching values; extra keys in the subject are tolerated. See
// kanren.unify for the asymmetric dispatch.
type Record struct {
	Fields map[string]Term
}

// NewRecord builds a Record from the given fields.
func NewRecord(fields map[string]Term) *Record {
	if fields == nil {
		fields = map[string]Term{}
	}
	return &Record{Fields: fields}
}

func (r *Record) IsVar() bool { return false }
func (r *Record) String() string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, r.Fields[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

var varCounter int64

// Var is a logic variable: a mutable placeholder with process-wide
// identity. Its binding field is written and restored only through a
// kanren.Trail; code outside this package should treat binding as
// read-only and go through Deref.
type Var struct {
	id      int64
	name    string
	binding Term
}

// NewVar creates a fresh, unbound logic variable. name is a display
// label only; it plays no part in identity (I4).
func NewVar(name string) *Var {
	return &Var{id: atomic.AddInt64(&varCounter, 1), name: name}
}

func (v *Var) IsVar() bool { return true }

func (v *Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("_%s_%d", v.name, v.id)
	}
	return fmt.Sprintf("_%d", v.id)
}

// ID returns the variable's unique, monotonically increasing identifier.
func (v *Var) ID() int64 { return v.id }

// Name returns the variable's display label, which may be empty.
func (v *Var) Name() string { return v.name }

// Binding returns the term this variable is currently bound to, or nil
// if it is unbound. Exported for kanren.Trail; ordinary callers should
// use Deref instead.
func (v *Var) Binding() Term { return v.binding }

// SetBinding installs or clears (via nil) this variable's binding.
// Exported for kanren.Trail, which is the only code that should call
// it — every call must be paired with an eventual trail-driven undo.
func (v *Var) SetBinding(t Term) { v.binding = t }

// Deref returns the canonical term for t: if t is an unbound Var it is
// returned as-is; if it is a bound Var its binding is followed
// recursively; otherwise t is returned unchanged. Deref performs no
// mutation and terminates as long as the binding graph is acyclic (I1)
// — a cyclic binding graph, which the engine does not check for, makes
// Deref loop forever.
func Deref(t Term) Term {
	for {
		v, ok := t.(*Var)
		if !ok || v.binding == nil {
			return t
		}
		t = v.binding
	}
}
