package csp

import "container/list"

// WorklistPolicy selects the order in which the propagator drains its
// pending-constraint queue. Both orders reach the same fixed point; they
// differ only in how much work is done before the first dead end is
// detected. Spec.md §4.5 leaves the choice open; Plico exposes it as an
// Options field rather than hard-coding one.
type WorklistPolicy uint8

const (
	// FIFO processes constraints in the order they were queued
	// (breadth-first over the dependency graph). This is the default.
	FIFO WorklistPolicy = iota
	// LIFO processes the most recently queued constraint first
	// (depth-first), which tends to chase a single narrowing chain to
	// its conclusion before fanning back out.
	LIFO
)

type workItem struct {
	constraintID ConstraintId
	trigger      *VariableId
}

// Propagator drives a Problem to an arc-consistency fixed point, per
// spec.md §4.5. It is grounded on the teacher's queue-based re-propagation
// in fd.go and on the original Rust implementation's work_list.rs, whose
// (variable, constraint) membership set this adapts as a per-constraint
// "pending" set — Plico's Constraint.Propagate takes the whole constraint
// rather than a single arc, so deduplication only needs to be keyed by
// ConstraintId.
type Propagator struct {
	policy         WorklistPolicy
	debugContracts bool
	monitor        *SolverMonitor
}

// NewPropagator returns a Propagator draining its worklist in the given
// order.
func NewPropagator(policy WorklistPolicy) *Propagator {
	return &Propagator{policy: policy}
}

// WithDebugContracts enables the ConstraintContractViolation assertions on
// every constraint this Propagator runs.
func (pr *Propagator) WithDebugContracts(enabled bool) *Propagator {
	pr.debugContracts = enabled
	return pr
}

// WithMonitor attaches a SolverMonitor to record per-constraint statistics
// as this Propagator runs. A nil monitor disables recording.
func (pr *Propagator) WithMonitor(m *SolverMonitor) *Propagator {
	pr.monitor = m
	return pr
}

func (pr *Propagator) constraintAt(p Problem, id ConstraintId) Constraint {
	c := p.Constraint(id)
	if pr.debugContracts {
		return checkedConstraint{id: id, inner: c}
	}
	return c
}

// Run propagates every constraint named in seed, and transitively whatever
// they narrow, to a fixed point. On success it returns the narrowed
// Problem and a nil error. If a wipeout is detected, it returns the
// original input Problem — never the partial state under construction when
// the wipeout was found — together with ErrInconsistent.
func (pr *Propagator) Run(p Problem, seed []ConstraintId) (Problem, error) {
	input := p
	pending := make(map[ConstraintId]bool, len(seed))
	queue := list.New()

	enqueue := func(id ConstraintId, trigger *VariableId) {
		if pending[id] {
			return
		}
		pending[id] = true
		item := workItem{constraintID: id, trigger: trigger}
		if pr.policy == LIFO {
			queue.PushFront(item)
		} else {
			queue.PushBack(item)
		}
	}

	for _, id := range seed {
		enqueue(id, nil)
	}

	for queue.Len() > 0 {
		front := queue.Front()
		queue.Remove(front)
		item := front.Value.(workItem)
		pending[item.constraintID] = false

		outcome, err := pr.constraintAt(p, item.constraintID).Propagate(p, item.trigger)
		if err != nil {
			return input, err
		}

		switch outcome.Kind {
		case Inconsistent:
			if pr.monitor != nil {
				pr.monitor.recordRevision(item.constraintID, true)
			}
			return input, ErrInconsistent
		case NoChange:
			if pr.monitor != nil {
				pr.monitor.recordRevision(item.constraintID, false)
			}
		case Changed:
			if pr.monitor != nil {
				pr.monitor.recordRevision(item.constraintID, true)
			}
			p = outcome.Problem
			for _, v := range outcome.ModifiedVars {
				trigger := v
				for _, neighbor := range p.ConstraintsOn(v) {
					if neighbor == item.constraintID {
						continue
					}
					enqueue(neighbor, &trigger)
				}
			}
		}
	}

	return p, nil
}
