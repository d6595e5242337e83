package csp

import (
	"fmt"
	"strconv"
	"strings"
)

// DomainSemantics adapts the engine to a problem's own vocabulary, per
// spec.md §4.2: it turns a client-chosen tag into a standard Domain, and
// renders Values back into the client's terms for tracing and error
// messages. The engine never calls EnumerateStandard or Describe itself
// during propagation or search — they exist for client code (example
// programs, the CLI) to avoid hand-rolling Domain construction and
// presentation for the handful of value shapes the standard library
// constraints already understand.
type DomainSemantics interface {
	// EnumerateStandard builds the Domain a tag like "ints:1..9" or
	// "symbols:red,green,blue" denotes. It returns an error if the tag
	// is not recognised.
	EnumerateStandard(tag string) (Domain, error)
	// Describe renders a single Value in the problem's own vocabulary.
	Describe(v Value) string
}

// VariableOrderHint is an optional interface a DomainSemantics may
// implement to bias variable selection away from the engine default (MRV).
// Options.VariableOrder must be set to CustomVariableOrder, and
// Options.VariableHint supplied, for this to take effect — DomainSemantics
// itself is never consulted by Solve directly; it is a convenience for
// client code to build an Options.VariableHint from.
type VariableOrderHint interface {
	OrderVariables(p Problem, candidates []VariableId) []VariableId
}

// ValueOrderHint is the value-ordering analogue of VariableOrderHint.
type ValueOrderHint interface {
	OrderValues(p Problem, v VariableId, values []Value) []Value
}

// DefaultSemantics implements DomainSemantics for the "standard value
// universe" spec.md §3 names as a convenience: integer ranges, the two
// booleans, and small symbol sets. Tags take the form "ints:LO..HI",
// "bools", or "symbols:a,b,c".
type DefaultSemantics struct{}

// EnumerateStandard parses tag and returns the Domain it denotes.
func (DefaultSemantics) EnumerateStandard(tag string) (Domain, error) {
	switch {
	case tag == "bools":
		return NewDomain(Bools()), nil
	case strings.HasPrefix(tag, "ints:"):
		body := strings.TrimPrefix(tag, "ints:")
		lo, hi, ok := strings.Cut(body, "..")
		if !ok {
			return Domain{}, fmt.Errorf("csp: malformed ints tag %q, want ints:LO..HI", tag)
		}
		loN, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
		if err != nil {
			return Domain{}, fmt.Errorf("csp: malformed ints tag %q: %w", tag, err)
		}
		hiN, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
		if err != nil {
			return Domain{}, fmt.Errorf("csp: malformed ints tag %q: %w", tag, err)
		}
		return NewDomain(IntRange(loN, hiN)), nil
	case strings.HasPrefix(tag, "symbols:"):
		body := strings.TrimPrefix(tag, "symbols:")
		parts := strings.Split(body, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return NewDomain(Symbols(parts...)), nil
	default:
		return Domain{}, fmt.Errorf("csp: unrecognised domain tag %q", tag)
	}
}

// Describe renders v using its own String method.
func (DefaultSemantics) Describe(v Value) string { return v.String() }
