package csp

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the genuine error conditions spec.md §7 defines.
// Unsatisfiability and cancellation are NOT errors: they are expected
// SolveResult outcomes (ResultUnsatisfiable, ResultCancelled), surfaced
// through the return value rather than the error channel.
type ErrorKind int

const (
	// KindMalformedProblem marks a Builder.Build failure: a constraint
	// referencing an unknown VariableId.
	KindMalformedProblem ErrorKind = iota
	// KindEmptyInitialDomain marks a variable declared with no Values at
	// all, before any propagation has run.
	KindEmptyInitialDomain
	// KindConstraintContractViolation marks a Constraint.Propagate
	// implementation that broke its own contract (e.g. claimed Changed
	// but reported no modified variables, or reported a variable outside
	// its declared Scope). Only raised when Options.DebugContracts is
	// set; production runs pay nothing for this check.
	KindConstraintContractViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedProblem:
		return "malformed problem"
	case KindEmptyInitialDomain:
		return "empty initial domain"
	case KindConstraintContractViolation:
		return "constraint contract violation"
	default:
		return "unknown error kind"
	}
}

// MalformedProblemError reports a Builder.Build failure caused by a
// structurally invalid problem description.
type MalformedProblemError struct {
	ConstraintIndex int
	VariableID      VariableId
	Reason          string
}

func (e *MalformedProblemError) Error() string {
	return fmt.Sprintf("csp: malformed problem: constraint %d references variable %d: %s",
		e.ConstraintIndex, e.VariableID, e.Reason)
}

// Kind reports the ErrorKind this error belongs to, for callers that
// switch on ErrorKind rather than the concrete type.
func (e *MalformedProblemError) Kind() ErrorKind { return KindMalformedProblem }

// EmptyInitialDomainError reports a variable declared with an empty Domain.
type EmptyInitialDomainError struct {
	VariableID VariableId
}

func (e *EmptyInitialDomainError) Error() string {
	return fmt.Sprintf("csp: variable %d was declared with an empty initial domain", e.VariableID)
}

// Kind reports the ErrorKind this error belongs to.
func (e *EmptyInitialDomainError) Kind() ErrorKind { return KindEmptyInitialDomain }

// ConstraintContractViolationError reports a Constraint implementation that
// violated the Propagate contract. It is only ever raised when
// Options.DebugContracts is enabled.
type ConstraintContractViolationError struct {
	ConstraintID ConstraintId
	Reason       string
}

func (e *ConstraintContractViolationError) Error() string {
	return fmt.Sprintf("csp: constraint %d violated its propagation contract: %s",
		e.ConstraintID, e.Reason)
}

// Kind reports the ErrorKind this error belongs to.
func (e *ConstraintContractViolationError) Kind() ErrorKind { return KindConstraintContractViolation }

// ErrInconsistent is the sentinel a Propagator.Run returns when a fixed
// point cannot be reached without emptying some variable's domain. It is
// not itself a program error: Solve translates it into
// SolveResult{Kind: ResultUnsatisfiable} without ever exposing the partial,
// inconsistent Problem the propagator was building when it gave up.
var ErrInconsistent = errors.New("csp: propagation reached an inconsistent state")
