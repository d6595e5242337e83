// Package csp implements Plico's constraint-satisfaction engine: finite
// domains, a constraint protocol, an AC-3 propagator, and a backtracking
// search procedure built on top of them.
package csp

import (
	"fmt"
	"hash/maphash"
)

// valueKind tags the concrete representation carried by a Value.
type valueKind uint8

const (
	kindInt valueKind = iota
	kindBool
	kindSymbol
)

// Value is the engine's opaque, equality-and-hash-comparable atom. The
// engine never inspects a value's internal structure beyond the operations
// below; it is a closed tagged union over the "standard value universe"
// (integers, booleans, small symbolic tags) spec.md §3 describes as a
// convenience rather than a requirement. Problem-specific code that needs a
// richer value space can still key its own lookup tables by Value, since
// Value is comparable and ordered.
type Value struct {
	kind valueKind
	i    int64
	b    bool
	s    string
}

// Int wraps an integer as a Value.
func Int(v int64) Value { return Value{kind: kindInt, i: v} }

// Bool wraps a boolean as a Value.
func Bool(v bool) Value { return Value{kind: kindBool, b: v} }

// Symbol wraps a short symbolic tag (e.g. a colour name) as a Value.
func Symbol(v string) Value { return Value{kind: kindSymbol, s: v} }

// Ints converts a slice of integers to Values, preserving order.
func Ints(vs ...int64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}

// IntRange builds the Values for the inclusive range [lo, hi].
func IntRange(lo, hi int64) []Value {
	if hi < lo {
		return nil
	}
	out := make([]Value, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, Int(v))
	}
	return out
}

// Bools returns the two boolean Values, false then true.
func Bools() []Value { return []Value{Bool(false), Bool(true)} }

// Symbols converts a slice of strings to symbolic Values, preserving order.
func Symbols(vs ...string) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Symbol(v)
	}
	return out
}

// IsInt reports whether the Value is an integer.
func (v Value) IsInt() bool { return v.kind == kindInt }

// Int64 returns the underlying integer. It panics if the Value is not an
// integer; callers that are unsure should check IsInt first.
func (v Value) Int64() int64 {
	if v.kind != kindInt {
		panic("csp: Value.Int64 called on a non-integer Value")
	}
	return v.i
}

// IsBool reports whether the Value is a boolean.
func (v Value) IsBool() bool { return v.kind == kindBool }

// BoolValue returns the underlying boolean. It panics if the Value is not a
// boolean.
func (v Value) BoolValue() bool {
	if v.kind != kindBool {
		panic("csp: Value.BoolValue called on a non-boolean Value")
	}
	return v.b
}

// IsSymbol reports whether the Value is a symbolic tag.
func (v Value) IsSymbol() bool { return v.kind == kindSymbol }

// SymbolValue returns the underlying symbol. It panics if the Value is not
// a symbol.
func (v Value) SymbolValue() string {
	if v.kind != kindSymbol {
		panic("csp: Value.SymbolValue called on a non-symbol Value")
	}
	return v.s
}

// Equal reports whether two Values are the same atom.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindInt:
		return v.i == other.i
	case kindBool:
		return v.b == other.b
	default:
		return v.s == other.s
	}
}

// Less gives Values a deterministic total order, used for sorted domain
// iteration and by the ordinal constraints (Inequality, Arithmetic, SumOf)
// that require values to be comparable. Values of different kinds are
// ordered by kind, so the relation is total even over a mixed domain.
func (v Value) Less(other Value) bool {
	if v.kind != other.kind {
		return v.kind < other.kind
	}
	switch v.kind {
	case kindInt:
		return v.i < other.i
	case kindBool:
		return !v.b && other.b
	default:
		return v.s < other.s
	}
}

// String renders the Value for tracing and error messages. DomainSemantics
// implementations may prefer Describe for problem-specific rendering; this
// is the engine's own fallback.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return fmt.Sprintf("%d", v.i)
	case kindBool:
		return fmt.Sprintf("%t", v.b)
	default:
		return v.s
	}
}

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit digest of the Value, satisfying the
// "hash-comparable" half of spec.md §3's Value contract. The seed is
// chosen randomly at process start, so digests are stable within one
// process but differ between runs. Equal Values always hash equal; the
// converse is not guaranteed.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(v.kind))
	switch v.kind {
	case kindInt:
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v.i >> (8 * i))
		}
		h.Write(buf[:])
	case kindBool:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	default:
		h.WriteString(v.s)
	}
	return h.Sum64()
}
