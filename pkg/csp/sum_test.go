package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumOfPrunesSumFromTermBounds(t *testing.T) {
	b := NewBuilder()
	t1 := b.DeclareVariable(NewDomain(Ints(1, 2)))
	t2 := b.DeclareVariable(NewDomain(Ints(3, 4)))
	sum := b.DeclareVariable(NewDomain(IntRange(0, 20)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := SumOf([]VariableId{t1, t2}, sum).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	assert.Equal(t, IntRange(4, 6), out.Problem.GetDomain(sum).Iter())
}

func TestSumOfPrunesTermFromSumAndOtherTerms(t *testing.T) {
	b := NewBuilder()
	t1 := b.DeclareVariable(NewDomain(IntRange(0, 10)))
	t2 := b.DeclareVariable(NewDomain(Ints(3)))
	sum := b.DeclareVariable(NewDomain(Ints(5)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := SumOf([]VariableId{t1, t2}, sum).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	assert.Equal(t, Ints(2), out.Problem.GetDomain(t1).Iter())
}

func TestSumOfDetectsInconsistency(t *testing.T) {
	b := NewBuilder()
	t1 := b.DeclareVariable(NewDomain(Ints(10)))
	t2 := b.DeclareVariable(NewDomain(Ints(10)))
	sum := b.DeclareVariable(NewDomain(Ints(1)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := SumOf([]VariableId{t1, t2}, sum).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}

func TestBooleanOrSatisfiedByExistingTrue(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Bools()))
	c := b.DeclareVariable(NewDomain(Ints(0))) // placeholder unrelated var
	_ = c
	d := b.DeclareVariable(NewDomain([]Value{Bool(true)}))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := BooleanOr([]VariableId{a, d}).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, NoChange, out.Kind)
}

func TestBooleanOrForcesLastHope(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain([]Value{Bool(false)}))
	c := b.DeclareVariable(NewDomain([]Value{Bool(false)}))
	d := b.DeclareVariable(NewDomain(Bools()))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := BooleanOr([]VariableId{a, c, d}).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	assert.Equal(t, []Value{Bool(true)}, out.Problem.GetDomain(d).Iter())
}

func TestBooleanOrDetectsAllFalseIsInconsistent(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain([]Value{Bool(false)}))
	c := b.DeclareVariable(NewDomain([]Value{Bool(false)}))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := BooleanOr([]VariableId{a, c}).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}
