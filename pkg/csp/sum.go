package csp

import "fmt"

// sumOfConstraint enforces terms[0] + terms[1] + ... + terms[n-1] == sum
// over integer Values, using the same bounds-propagation trade Inequality
// makes: each side is pruned from the others' current min/max rather than
// by full enumeration. Grounded on original_source's sum_of.rs, which this
// follows variable-for-variable (SumOfConstraint::revise's two cases:
// revising the sum from the terms' bounds, and revising a term from the
// sum's bounds and the other terms' bounds).
type sumOfConstraint struct {
	terms []VariableId
	sum   VariableId
}

// SumOf returns a constraint requiring the sum of terms' Values to equal
// sum's Value. All variables must hold integer Values.
func SumOf(terms []VariableId, sum VariableId) Constraint {
	return sumOfConstraint{terms: append([]VariableId(nil), terms...), sum: sum}
}

func (c sumOfConstraint) Scope() []VariableId {
	return append(append([]VariableId(nil), c.terms...), c.sum)
}

func (c sumOfConstraint) String() string {
	return fmt.Sprintf("SumOf(%v) == %s", c.terms, c.sum)
}

func (c sumOfConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	if len(c.terms) == 0 {
		return OutcomeNoChange(), nil
	}

	termDoms := make([]Domain, len(c.terms))
	mins := make([]int64, len(c.terms))
	maxs := make([]int64, len(c.terms))
	for i, v := range c.terms {
		d := p.GetDomain(v)
		termDoms[i] = d
		minV, ok := d.Min()
		if !ok {
			return OutcomeInconsistent(), nil
		}
		maxV, _ := d.Max()
		mins[i] = minV.Int64()
		maxs[i] = maxV.Int64()
	}

	var sumOfMins, sumOfMaxs int64
	for i := range c.terms {
		sumOfMins += mins[i]
		sumOfMaxs += maxs[i]
	}

	sumDom := p.GetDomain(c.sum)
	newSumDom := sumDom.Retain(func(v Value) bool {
		n := v.Int64()
		return n >= sumOfMins && n <= sumOfMaxs
	})
	if newSumDom.IsEmpty() {
		return OutcomeInconsistent(), nil
	}

	var modified []VariableId
	next := p
	if !newSumDom.Equal(sumDom) {
		next = next.SetDomain(c.sum, newSumDom)
		modified = append(modified, c.sum)
	}

	sumMin, _ := newSumDom.Min()
	sumMax, _ := newSumDom.Max()

	for i, v := range c.terms {
		var sumMinsOthers, sumMaxsOthers int64
		for j := range c.terms {
			if j == i {
				continue
			}
			sumMinsOthers += mins[j]
			sumMaxsOthers += maxs[j]
		}
		newMaxT := sumMax.Int64() - sumMinsOthers
		newMinT := sumMin.Int64() - sumMaxsOthers

		d := termDoms[i]
		pruned := d.Retain(func(v Value) bool {
			n := v.Int64()
			return n >= newMinT && n <= newMaxT
		})
		if pruned.IsEmpty() {
			return OutcomeInconsistent(), nil
		}
		if pruned.Equal(d) {
			continue
		}
		next = next.SetDomain(v, pruned)
		modified = append(modified, v)
	}

	if len(modified) == 0 {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(next, modified), nil
}

// booleanOrConstraint enforces vars[0] OR vars[1] OR ... OR vars[n-1].
// Grounded on original_source's boolean_or.rs: it only prunes in the
// "last hope" case, where every variable but one is already known false —
// that one remaining variable must then be true. It also catches the case
// the Rust version leaves to search: every variable already false, which
// is an immediate contradiction.
type booleanOrConstraint struct {
	vars []VariableId
}

// BooleanOr returns a constraint requiring at least one of vars to be true.
// All variables must hold boolean Values.
func BooleanOr(vars []VariableId) Constraint {
	return booleanOrConstraint{vars: append([]VariableId(nil), vars...)}
}

func (c booleanOrConstraint) Scope() []VariableId { return c.vars }
func (c booleanOrConstraint) String() string      { return fmt.Sprintf("BooleanOr(%v)", c.vars) }

func (c booleanOrConstraint) Propagate(p Problem, _ *VariableId) (PropagationOutcome, error) {
	trueVal := Bool(true)
	var lastHope VariableId
	possiblyTrue := 0
	knownFalse := 0

	for _, v := range c.vars {
		d := p.GetDomain(v)
		if val, ok := d.Singleton(); ok {
			if val.Equal(trueVal) {
				return OutcomeNoChange(), nil
			}
			knownFalse++
			continue
		}
		possiblyTrue++
		lastHope = v
	}

	if possiblyTrue == 0 {
		return OutcomeInconsistent(), nil
	}
	if possiblyTrue != 1 || knownFalse != len(c.vars)-1 {
		return OutcomeNoChange(), nil
	}

	d := p.GetDomain(lastHope)
	pruned := d.Retain(func(v Value) bool { return v.Equal(trueVal) })
	if pruned.IsEmpty() {
		return OutcomeInconsistent(), nil
	}
	if pruned.Equal(d) {
		return OutcomeNoChange(), nil
	}
	return OutcomeChanged(p.SetDomain(lastHope, pruned), []VariableId{lastHope}), nil
}
