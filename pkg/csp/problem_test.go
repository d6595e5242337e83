package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTwoVarProblem(t *testing.T) (Problem, VariableId, VariableId) {
	t.Helper()
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(IntRange(1, 3)))
	c := b.DeclareVariable(NewDomain(IntRange(1, 3)))
	p, err := b.Build()
	require.NoError(t, err)
	return p, a, c
}

func TestBuilderRejectsEmptyInitialDomain(t *testing.T) {
	b := NewBuilder()
	b.DeclareVariable(NewDomain(nil))
	_, err := b.Build()
	require.Error(t, err)
	var target *EmptyInitialDomainError
	assert.ErrorAs(t, err, &target)
}

func TestBuilderRejectsUnknownVariableInConstraint(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(IntRange(1, 3)))
	phantom := VariableId(int(a) + 99)
	b.AddConstraint(Equal(a, phantom))
	_, err := b.Build()
	require.Error(t, err)
	var target *MalformedProblemError
	assert.ErrorAs(t, err, &target)
}

func TestProblemSetDomainIsStructurallyShared(t *testing.T) {
	p, a, _ := buildTwoVarProblem(t)
	same := p.SetDomain(a, p.GetDomain(a))
	assert.Equal(t, p, same, "setting an unchanged domain must return the identical snapshot")

	narrowed := p.SetDomain(a, p.GetDomain(a).Remove(Int(2)))
	assert.NotEqual(t, p, narrowed)
	assert.Equal(t, Ints(1, 2, 3), p.GetDomain(a).Iter(), "the original snapshot must be untouched")
	assert.Equal(t, Ints(1, 3), narrowed.GetDomain(a).Iter())
}

func TestProblemAssignAndIsSolved(t *testing.T) {
	p, a, c := buildTwoVarProblem(t)
	assert.False(t, p.IsSolved())

	p = p.Assign(a, Int(1))
	assert.False(t, p.IsSolved())
	p = p.Assign(c, Int(2))
	assert.True(t, p.IsSolved())
	assert.Equal(t, Ints(1, 2), p.Assignment())
}

func TestProblemConstraintsOnIndexesScope(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(IntRange(1, 3)))
	c := b.DeclareVariable(NewDomain(IntRange(1, 3)))
	d := b.DeclareVariable(NewDomain(IntRange(1, 3)))
	eq := b.AddConstraint(Equal(a, c))
	_ = b.AddConstraint(Equal(c, d))
	p, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []ConstraintId{eq}, p.ConstraintsOn(a))
	assert.Equal(t, 2, len(p.ConstraintsOn(c)))
}
