package csp

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// VariableOrderPolicy selects how Solve picks the next variable to branch
// on, per spec.md §4.6.
type VariableOrderPolicy uint8

const (
	// MRV (minimum remaining values) picks the unassigned variable with
	// the smallest current Domain, breaking ties by ascending
	// VariableId. This is the default: it tends to hit dead ends, and
	// therefore prune the search tree, earliest.
	MRV VariableOrderPolicy = iota
	// SmallestID picks the lowest-numbered unassigned variable,
	// ignoring domain size.
	SmallestID
	// CustomVariableOrder delegates to Options.VariableHint.
	CustomVariableOrder
)

// ValueOrderPolicy selects how Solve orders the candidate values it tries
// for the branching variable.
type ValueOrderPolicy uint8

const (
	// NaturalOrder tries a Domain's Values in their deterministic
	// iteration order (ascending, per Value.Less). This is the default.
	NaturalOrder ValueOrderPolicy = iota
	// CustomValueOrder delegates to Options.ValueHint.
	CustomValueOrder
)

// Options configures a Solve call. The zero value is the same
// configuration DefaultOptions returns.
type Options struct {
	VariableOrder  VariableOrderPolicy
	ValueOrder     ValueOrderPolicy
	VariableHint   func(p Problem, candidates []VariableId) []VariableId
	ValueHint      func(p Problem, v VariableId, values []Value) []Value
	WorklistPolicy WorklistPolicy
	// Cancel is polled cooperatively between search decisions. A nil
	// Cancel means the search cannot be cancelled. Spec.md §5 requires
	// cancellation to be cooperative rather than preemptive: Solve only
	// checks Cancel at well-defined points, never mid-propagation.
	Cancel func() bool
	// DebugContracts enables the ConstraintContractViolation assertions
	// on every constraint Solve runs. Off by default; it exists for
	// development and test builds, not production solving.
	DebugContracts bool
	Monitor        *SolverMonitor
	Logger         logrus.FieldLogger
}

// DefaultOptions returns the engine's default configuration: MRV variable
// ordering, natural value ordering, FIFO propagation, no cancellation, no
// contract checking, no tracing.
func DefaultOptions() Options {
	return Options{VariableOrder: MRV, ValueOrder: NaturalOrder, WorklistPolicy: FIFO}
}

// ResultKind tags the outcome Solve reports. Per spec.md §7,
// Unsatisfiable and Cancelled are expected outcomes, not errors.
type ResultKind uint8

const (
	ResultSolution ResultKind = iota
	ResultUnsatisfiable
	ResultCancelled
	ResultError
)

// SolveResult is Solve's return value. Problem is only meaningful when Kind
// == ResultSolution; Err is only meaningful when Kind == ResultError.
type SolveResult struct {
	Kind    ResultKind
	Problem Problem
	Err     error
}

// Solve runs AC-3 propagation to a fixed point and, if that leaves any
// variable unassigned, performs backtracking search — per spec.md §4.5 and
// §4.6 — until it finds a complete assignment, exhausts the search space,
// or opts.Cancel reports true.
func Solve(p Problem, opts Options) SolveResult {
	prop := NewPropagator(opts.WorklistPolicy).WithDebugContracts(opts.DebugContracts).WithMonitor(opts.Monitor)

	root, err := prop.Run(p, p.AllConstraintIDs())
	if err != nil {
		if errors.Is(err, ErrInconsistent) {
			return SolveResult{Kind: ResultUnsatisfiable}
		}
		return SolveResult{Kind: ResultError, Err: err}
	}

	return search(root, opts, prop)
}

type searchFrame struct {
	problem Problem
	varID   VariableId
	values  []Value
	idx     int
}

// search is the iterative, explicit-stack backtracking procedure adapted
// from the teacher's solver.go Solve/search pair: each stack frame is one
// branching decision still trying candidate values, mirroring the
// teacher's searchFrame{state, varID, values, valueIndex}. Using an
// explicit stack rather than native recursion keeps the propagation
// Problem values (cheap, persistent) as the only state that needs copying
// on backtrack — the frames themselves just index into a slice of
// already-computed candidate values.
func search(root Problem, opts Options, prop *Propagator) SolveResult {
	trace := newTracer(opts.Logger)

	if root.IsSolved() {
		return SolveResult{Kind: ResultSolution, Problem: root}
	}

	varID, ok := selectVariable(root, opts)
	if !ok {
		return SolveResult{Kind: ResultUnsatisfiable}
	}
	stack := []*searchFrame{{problem: root, varID: varID, values: orderedValues(root, varID, opts)}}

	for len(stack) > 0 {
		if opts.Cancel != nil && opts.Cancel() {
			return SolveResult{Kind: ResultCancelled}
		}

		top := stack[len(stack)-1]
		if top.idx >= len(top.values) {
			stack = stack[:len(stack)-1]
			if opts.Monitor != nil {
				opts.Monitor.RecordBacktrack()
			}
			trace.backtrack(len(stack), top.varID)
			continue
		}

		val := top.values[top.idx]
		top.idx++
		if opts.Monitor != nil {
			opts.Monitor.RecordNode()
		}
		trace.assign(len(stack), top.varID, val)

		branch := top.problem.Assign(top.varID, val)
		propagated, err := prop.Run(branch, branch.ConstraintsOn(top.varID))
		if err != nil {
			if errors.Is(err, ErrInconsistent) {
				trace.inconsistent(len(stack), top.varID, val)
				continue
			}
			return SolveResult{Kind: ResultError, Err: err}
		}

		if propagated.IsSolved() {
			return SolveResult{Kind: ResultSolution, Problem: propagated}
		}

		nextVar, ok := selectVariable(propagated, opts)
		if !ok {
			continue
		}
		stack = append(stack, &searchFrame{
			problem: propagated,
			varID:   nextVar,
			values:  orderedValues(propagated, nextVar, opts),
		})
	}

	return SolveResult{Kind: ResultUnsatisfiable}
}

// selectVariable implements Options.VariableOrder over the unassigned
// (Domain.Size() > 1) variables of p.
func selectVariable(p Problem, opts Options) (VariableId, bool) {
	var candidates []VariableId
	for v := VariableId(0); v < VariableId(p.VariableCount()); v++ {
		if p.GetDomain(v).Size() > 1 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	switch opts.VariableOrder {
	case SmallestID:
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
		return candidates[0], true
	case CustomVariableOrder:
		ordered := candidates
		if opts.VariableHint != nil {
			ordered = opts.VariableHint(p, candidates)
		}
		if len(ordered) == 0 {
			return 0, false
		}
		return ordered[0], true
	default: // MRV
		best := candidates[0]
		bestSize := p.GetDomain(best).Size()
		for _, v := range candidates[1:] {
			size := p.GetDomain(v).Size()
			if size < bestSize {
				best, bestSize = v, size
			}
		}
		return best, true
	}
}

// orderedValues implements Options.ValueOrder for the candidate variable v.
func orderedValues(p Problem, v VariableId, opts Options) []Value {
	values := p.GetDomain(v).Iter()
	if opts.ValueOrder == CustomValueOrder && opts.ValueHint != nil {
		return opts.ValueHint(p, v, values)
	}
	return values
}
