package csp

import "github.com/pkg/errors"

// VariableId identifies a decision variable within a Problem. IDs are dense
// and zero-based, assigned in declaration order by Builder.
type VariableId int

// ConstraintId identifies a Constraint within a Problem, dense and
// zero-based in the order Builder.AddConstraint was called.
type ConstraintId int

// problemModel is the immutable, shared description of a CSP: the variable
// count, each variable's initial Domain, the constraint list, and a
// variable -> constraint index used to find which constraints to re-queue
// after a Domain changes. Every Problem snapshot derived from a given
// Builder.Build call shares one *problemModel; only the copy-on-write
// overlay chain (stateNode) differs between snapshots.
type problemModel struct {
	initial     []Domain
	constraints []Constraint
	scopeIndex  [][]ConstraintId
	names       []string
}

// stateNode is one link in a Problem's copy-on-write overlay chain, mirroring
// the teacher's SolverState: each node records exactly one variable's
// changed Domain plus a pointer to the state it was derived from. Looking
// up a variable's current Domain walks the chain until that variable is
// found. Build links one node per declared variable holding its initial
// Domain, so every declared variable is found; an undeclared one yields
// the zero Domain.
type stateNode struct {
	model   *problemModel
	parent  *stateNode
	varID   VariableId
	domain  Domain
	touched bool // distinguishes "root node, no override" from varID==0 override
}

// Problem is an immutable snapshot of a CSP's variable domains. It is a
// small value (one pointer) safe to copy, compare, and pass by value; two
// Problems are the same snapshot exactly when their underlying stateNode
// pointers are identical, which is what lets SetDomain report "no change"
// without a deep comparison when nothing actually moved.
type Problem struct {
	node *stateNode
}

// GetDomain returns variable v's current Domain in this snapshot.
func (p Problem) GetDomain(v VariableId) Domain {
	for n := p.node; n != nil; n = n.parent {
		if n.touched && n.varID == v {
			return n.domain
		}
	}
	return Domain{}
}

// SetDomain returns a new Problem with variable v's Domain replaced by d. If
// d already equals v's current Domain, SetDomain returns p unchanged (same
// underlying node, no allocation) — this is what makes a constraint's
// "NoChange" outcome free to produce accidentally.
func (p Problem) SetDomain(v VariableId, d Domain) Problem {
	if p.GetDomain(v).Equal(d) {
		return p
	}
	return Problem{node: &stateNode{
		model:   p.node.model,
		parent:  p.node,
		varID:   v,
		domain:  d,
		touched: true,
	}}
}

// Assign returns a new Problem with variable v's Domain narrowed to the
// single Value val. It does not check that val was a member of v's prior
// Domain; callers that need that guarantee should check Domain.Contains
// first (the search procedure only ever assigns Values already present).
func (p Problem) Assign(v VariableId, val Value) Problem {
	return p.SetDomain(v, NewDomain([]Value{val}))
}

// VariableCount returns the number of variables in the problem.
func (p Problem) VariableCount() int { return len(p.node.model.initial) }

// ConstraintCount returns the number of constraints in the problem.
func (p Problem) ConstraintCount() int { return len(p.node.model.constraints) }

// Constraint returns the constraint registered under id.
func (p Problem) Constraint(id ConstraintId) Constraint { return p.node.model.constraints[id] }

// ConstraintsOn returns the IDs of every constraint whose Scope includes v,
// in registration order.
func (p Problem) ConstraintsOn(v VariableId) []ConstraintId { return p.node.model.scopeIndex[v] }

// AllConstraintIDs returns every constraint ID in registration order. Used
// to seed the propagator's worklist for a fresh Problem.
func (p Problem) AllConstraintIDs() []ConstraintId {
	ids := make([]ConstraintId, p.ConstraintCount())
	for i := range ids {
		ids[i] = ConstraintId(i)
	}
	return ids
}

// VariableName returns the declared name for v, or its numeric form if it
// was not given one.
func (p Problem) VariableName(v VariableId) string {
	if name := p.node.model.names[v]; name != "" {
		return name
	}
	return v.String()
}

// IsSolved reports whether every variable's Domain in this snapshot is a
// singleton.
func (p Problem) IsSolved() bool {
	for v := VariableId(0); v < VariableId(p.VariableCount()); v++ {
		if _, ok := p.GetDomain(v).Singleton(); !ok {
			return false
		}
	}
	return true
}

// HasEmptyDomain reports whether any variable's Domain in this snapshot is
// empty (the wipeout condition AC-3 watches for).
func (p Problem) HasEmptyDomain() bool {
	for v := VariableId(0); v < VariableId(p.VariableCount()); v++ {
		if p.GetDomain(v).IsEmpty() {
			return true
		}
	}
	return false
}

// Assignment extracts the current Value of every variable. It panics if any
// variable is not yet a singleton; callers should check IsSolved first.
func (p Problem) Assignment() []Value {
	out := make([]Value, p.VariableCount())
	for v := range out {
		val, ok := p.GetDomain(VariableId(v)).Singleton()
		if !ok {
			panic("csp: Assignment called on an unsolved Problem")
		}
		out[v] = val
	}
	return out
}

func (v VariableId) String() string {
	return "v" + itoa(int(v))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Builder assembles a Problem description: variable declarations with their
// initial Domains, followed by constraints over those variables. Build
// validates the description (spec.md §7's MalformedProblem and
// EmptyInitialDomain checks) eagerly, so a Problem that exists at all is
// guaranteed structurally sound before the first Propagate call.
type Builder struct {
	domains     []Domain
	names       []string
	constraints []Constraint
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// DeclareVariable registers a new variable with the given initial Domain
// and returns its VariableId. IDs are assigned densely starting at 0, in
// call order.
func (b *Builder) DeclareVariable(domain Domain) VariableId {
	id := VariableId(len(b.domains))
	b.domains = append(b.domains, domain)
	b.names = append(b.names, "")
	return id
}

// DeclareNamedVariable is DeclareVariable with a debugging name attached.
func (b *Builder) DeclareNamedVariable(name string, domain Domain) VariableId {
	id := b.DeclareVariable(domain)
	b.names[id] = name
	return id
}

// DeclareVariables registers count variables, all sharing the given initial
// Domain, and returns their VariableIds in order.
func (b *Builder) DeclareVariables(count int, domain Domain) []VariableId {
	ids := make([]VariableId, count)
	for i := range ids {
		ids[i] = b.DeclareVariable(domain)
	}
	return ids
}

// AddConstraint registers a constraint and returns its ConstraintId.
func (b *Builder) AddConstraint(c Constraint) ConstraintId {
	id := ConstraintId(len(b.constraints))
	b.constraints = append(b.constraints, c)
	return id
}

// Build validates the accumulated declarations and constraints and, if
// they are sound, returns the sealed initial Problem. Validation failures
// are returned as *MalformedProblemError or *EmptyInitialDomainError,
// wrapped with github.com/pkg/errors for a stack trace.
func (b *Builder) Build() (Problem, error) {
	for v, d := range b.domains {
		if d.IsEmpty() {
			return Problem{}, errors.WithStack(&EmptyInitialDomainError{VariableID: VariableId(v)})
		}
	}

	scopeIndex := make([][]ConstraintId, len(b.domains))
	for cid, c := range b.constraints {
		for _, v := range c.Scope() {
			if int(v) < 0 || int(v) >= len(b.domains) {
				return Problem{}, errors.WithStack(&MalformedProblemError{
					ConstraintIndex: cid,
					VariableID:      v,
					Reason:          "references a variable that was never declared",
				})
			}
			scopeIndex[v] = append(scopeIndex[v], ConstraintId(cid))
		}
	}

	model := &problemModel{
		initial:     append([]Domain(nil), b.domains...),
		constraints: append([]Constraint(nil), b.constraints...),
		scopeIndex:  scopeIndex,
		names:       append([]string(nil), b.names...),
	}

	root := &stateNode{model: model}
	for v, d := range model.initial {
		root = &stateNode{model: model, parent: root, varID: VariableId(v), domain: d, touched: true}
	}
	return Problem{node: root}, nil
}
