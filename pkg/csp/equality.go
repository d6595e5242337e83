package csp

import "fmt"

// equalConstraint forces two variables to take the same Value. It is
// grounded on the teacher's propagation.go Inequality family (which
// handles NotEqual as one of its kinds); Equal is the complementary half
// spec.md §4.4 asks for.
type equalConstraint struct {
	a, b VariableId
}

// Equal returns a constraint requiring a and b to hold the same Value.
func Equal(a, b VariableId) Constraint { return equalConstraint{a: a, b: b} }

func (c equalConstraint) Scope() []VariableId { return []VariableId{c.a, c.b} }
func (c equalConstraint) String() string      { return fmt.Sprintf("Equal(%s, %s)", c.a, c.b) }

func (c equalConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	da := p.GetDomain(c.a)
	db := p.GetDomain(c.b)
	common := da.Intersect(db)
	if common.IsEmpty() {
		return OutcomeInconsistent(), nil
	}

	var modified []VariableId
	next := p
	if !da.Equal(common) {
		next = next.SetDomain(c.a, common)
		modified = append(modified, c.a)
	}
	if !db.Equal(common) {
		next = next.SetDomain(c.b, common)
		modified = append(modified, c.b)
	}
	if len(modified) == 0 {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(next, modified), nil
}

// notEqualConstraint forbids two variables from taking the same Value. Full
// generalised-arc-consistency for NotEqual only prunes once one side is a
// singleton; this is the same baseline the teacher's Inequality{NotEqual}
// propagation method (propNE) implements.
type notEqualConstraint struct {
	a, b VariableId
}

// NotEqual returns a constraint forbidding a and b from holding the same
// Value.
func NotEqual(a, b VariableId) Constraint { return notEqualConstraint{a: a, b: b} }

func (c notEqualConstraint) Scope() []VariableId { return []VariableId{c.a, c.b} }
func (c notEqualConstraint) String() string      { return fmt.Sprintf("NotEqual(%s, %s)", c.a, c.b) }

func (c notEqualConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	da := p.GetDomain(c.a)
	db := p.GetDomain(c.b)

	if va, ok := da.Singleton(); ok {
		if vb, ok := db.Singleton(); ok {
			if va.Equal(vb) {
				return OutcomeInconsistent(), nil
			}
			return OutcomeNoChange(), nil
		}
		pruned := db.Remove(va)
		if pruned.IsEmpty() {
			return OutcomeInconsistent(), nil
		}
		if pruned.Equal(db) {
			return OutcomeNoChange(), nil
		}
		return OutcomeChanged(p.SetDomain(c.b, pruned), []VariableId{c.b}), nil
	}

	if vb, ok := db.Singleton(); ok {
		pruned := da.Remove(vb)
		if pruned.IsEmpty() {
			return OutcomeInconsistent(), nil
		}
		if pruned.Equal(da) {
			return OutcomeNoChange(), nil
		}
		return OutcomeChanged(p.SetDomain(c.a, pruned), []VariableId{c.a}), nil
	}

	return OutcomeNoChange(), nil
}
