package csp

import "fmt"

// arithmeticConstraint enforces dst = src + offset over integer Values,
// with bidirectional arc consistency: each direction's pruning feeds the
// other until nothing moves. Grounded on the teacher's Arithmetic
// (propagation.go), generalised from the teacher's fixed [1, maxValue] int
// domain to Value's ordinal Int64 form.
type arithmeticConstraint struct {
	src, dst VariableId
	offset   int64
}

// Arithmetic returns a constraint requiring dst's Value to equal src's
// Value plus offset. Both variables must hold integer Values.
func Arithmetic(src, dst VariableId, offset int64) Constraint {
	return arithmeticConstraint{src: src, dst: dst, offset: offset}
}

func (c arithmeticConstraint) Scope() []VariableId { return []VariableId{c.src, c.dst} }
func (c arithmeticConstraint) String() string {
	if c.offset >= 0 {
		return fmt.Sprintf("%s = %s + %d", c.dst, c.src, c.offset)
	}
	return fmt.Sprintf("%s = %s - %d", c.dst, c.src, -c.offset)
}

func imageShift(d Domain, offset int64) Domain {
	values := d.Iter()
	shifted := make([]Value, len(values))
	for i, v := range values {
		shifted[i] = Int(v.Int64() + offset)
	}
	return NewDomain(shifted)
}

func (c arithmeticConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	if c.src == c.dst {
		if c.offset == 0 {
			return OutcomeNoChange(), nil
		}
		return OutcomeInconsistent(), nil
	}

	srcDom := p.GetDomain(c.src)
	dstDom := p.GetDomain(c.dst)

	newDst := dstDom.Intersect(imageShift(srcDom, c.offset))
	newSrc := srcDom.Intersect(imageShift(newDst, -c.offset))

	if newSrc.IsEmpty() || newDst.IsEmpty() {
		return OutcomeInconsistent(), nil
	}

	var modified []VariableId
	next := p
	if !newSrc.Equal(srcDom) {
		next = next.SetDomain(c.src, newSrc)
		modified = append(modified, c.src)
	}
	if !newDst.Equal(dstDom) {
		next = next.SetDomain(c.dst, newDst)
		modified = append(modified, c.dst)
	}
	if len(modified) == 0 {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(next, modified), nil
}

// InequalityKind names the ordering relation an inequalityConstraint
// enforces between its two variables.
type InequalityKind int

const (
	LessThan InequalityKind = iota
	LessEqual
	GreaterThan
	GreaterEqual
)

func (k InequalityKind) String() string {
	switch k {
	case LessThan:
		return "<"
	case LessEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// inequalityConstraint enforces x `kind` y using bounds propagation: it
// derives each side's pruning from the other side's Min/Max only, never
// from its full membership. For an order relation this is already
// arc-consistent: a value of x has a support in y exactly when it lies on
// the correct side of y's opposite bound, and vice versa.
type inequalityConstraint struct {
	x, y VariableId
	kind InequalityKind
}

// Inequality returns a constraint requiring x kind y to hold, where kind is
// one of LessThan, LessEqual, GreaterThan, GreaterEqual. Both variables
// must hold ordinal (in practice, integer) Values.
func Inequality(x, y VariableId, kind InequalityKind) Constraint {
	return inequalityConstraint{x: x, y: y, kind: kind}
}

func (c inequalityConstraint) Scope() []VariableId { return []VariableId{c.x, c.y} }
func (c inequalityConstraint) String() string {
	return fmt.Sprintf("%s %s %s", c.x, c.kind, c.y)
}

func (c inequalityConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	if c.x == c.y {
		switch c.kind {
		case LessThan, GreaterThan:
			return OutcomeInconsistent(), nil
		default:
			return OutcomeNoChange(), nil
		}
	}

	xDom := p.GetDomain(c.x)
	yDom := p.GetDomain(c.y)
	xMax, xHasMax := xDom.Max()
	xMin, xHasMin := xDom.Min()
	yMax, yHasMax := yDom.Max()
	yMin, yHasMin := yDom.Min()
	if !xHasMax || !xHasMin || !yHasMax || !yHasMin {
		return OutcomeInconsistent(), nil
	}

	newX, newY := xDom, yDom
	switch c.kind {
	case LessThan:
		newX = newX.RemoveAtOrAbove(yMax)
		newY = newY.RemoveAtOrBelow(xMin)
	case LessEqual:
		newX = newX.RemoveAbove(yMax)
		newY = newY.RemoveBelow(xMin)
	case GreaterThan:
		newX = newX.RemoveAtOrBelow(yMin)
		newY = newY.RemoveAtOrAbove(xMax)
	case GreaterEqual:
		newX = newX.RemoveBelow(yMin)
		newY = newY.RemoveAbove(xMax)
	default:
		return PropagationOutcome{}, fmt.Errorf("csp: unknown InequalityKind %d", c.kind)
	}

	if newX.IsEmpty() || newY.IsEmpty() {
		return OutcomeInconsistent(), nil
	}

	var modified []VariableId
	next := p
	if !newX.Equal(xDom) {
		next = next.SetDomain(c.x, newX)
		modified = append(modified, c.x)
	}
	if !newY.Equal(yDom) {
		next = next.SetDomain(c.y, newY)
		modified = append(modified, c.y)
	}
	if len(modified) == 0 {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(next, modified), nil
}
