package csp

// PropagationKind tags the three possible outcomes of a single
// Constraint.Propagate call, per spec.md §4.3: nothing moved, something
// moved, or the constraint can never again be satisfied from this Problem.
type PropagationKind uint8

const (
	// NoChange means every variable in the constraint's Scope is
	// unchanged from the input Problem; the propagator need not re-queue
	// anything as a result of this call.
	NoChange PropagationKind = iota
	// Changed means at least one variable's Domain was narrowed.
	// ModifiedVars lists exactly which ones, so the propagator knows
	// which neighbouring constraints to re-queue.
	Changed
	// Inconsistent means propagating this constraint against the input
	// Problem would empty some variable's Domain. The returned Problem
	// is never inspected in this case.
	Inconsistent
)

// PropagationOutcome is the tagged value a Constraint.Propagate call
// returns. Only Problem and ModifiedVars are meaningful when Kind ==
// Changed; callers must not read them otherwise.
type PropagationOutcome struct {
	Kind         PropagationKind
	Problem      Problem
	ModifiedVars []VariableId
}

// OutcomeNoChange builds a NoChange outcome.
func OutcomeNoChange() PropagationOutcome { return PropagationOutcome{Kind: NoChange} }

// OutcomeChanged builds a Changed outcome carrying the narrowed Problem and
// the list of variables whose Domain actually moved.
func OutcomeChanged(p Problem, modified []VariableId) PropagationOutcome {
	return PropagationOutcome{Kind: Changed, Problem: p, ModifiedVars: modified}
}

// OutcomeInconsistent builds an Inconsistent outcome.
func OutcomeInconsistent() PropagationOutcome { return PropagationOutcome{Kind: Inconsistent} }

// Constraint is the unit of propagation spec.md §4.3 describes: a relation
// over a fixed set of variables (Scope) that can narrow their Domains in
// light of a Problem snapshot, or report that no narrowing is possible
// without violating the relation.
//
// Propagate must be a pure function of (p, trigger): given the same inputs
// it must always produce the same outcome, and it must never narrow a
// variable outside its own Scope. trigger is the variable whose Domain
// changed and caused this call, or nil when the constraint is being run
// for the first time (e.g. during a fresh Propagator.Run seed); most
// constraints ignore it and simply re-derive from p, but it lets a
// constraint skip work it knows cannot matter.
type Constraint interface {
	// Scope lists the variables this constraint ranges over, in a fixed
	// order the constraint chooses and keeps for its lifetime.
	Scope() []VariableId
	// Propagate computes the narrowing this constraint implies on p.
	Propagate(p Problem, trigger *VariableId) (PropagationOutcome, error)
	// String names the constraint for tracing and error messages.
	String() string
}

func scopeContains(scope []VariableId, v VariableId) bool {
	for _, s := range scope {
		if s == v {
			return true
		}
	}
	return false
}

// checkedConstraint wraps a Constraint with the debug-mode assertions
// spec.md §7's ConstraintContractViolation describes: a Changed outcome
// must name at least one modified variable, and every modified variable
// must belong to the constraint's declared Scope. It is only installed
// when Options.DebugContracts is set, so correct constraints pay nothing
// for it in production.
type checkedConstraint struct {
	id    ConstraintId
	inner Constraint
}

func (c checkedConstraint) Scope() []VariableId { return c.inner.Scope() }
func (c checkedConstraint) String() string      { return c.inner.String() }

func (c checkedConstraint) Propagate(p Problem, trigger *VariableId) (PropagationOutcome, error) {
	out, err := c.inner.Propagate(p, trigger)
	if err != nil {
		return out, err
	}
	if out.Kind != Changed {
		return out, nil
	}
	if len(out.ModifiedVars) == 0 {
		return out, &ConstraintContractViolationError{
			ConstraintID: c.id,
			Reason:       "reported Changed with no ModifiedVars",
		}
	}
	scope := c.inner.Scope()
	for _, v := range out.ModifiedVars {
		if !scopeContains(scope, v) {
			return out, &ConstraintContractViolationError{
				ConstraintID: c.id,
				Reason:       "reported a modified variable outside its declared Scope",
			}
		}
	}
	return out, nil
}
