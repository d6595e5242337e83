package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualPropagateIntersectsDomains(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Ints(1, 2, 3)))
	c := b.DeclareVariable(NewDomain(Ints(2, 3, 4)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Equal(a, c).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	assert.Equal(t, Ints(2, 3), out.Problem.GetDomain(a).Iter())
	assert.Equal(t, Ints(2, 3), out.Problem.GetDomain(c).Iter())
	assert.ElementsMatch(t, []VariableId{a, c}, out.ModifiedVars)
}

func TestEqualPropagateDetectsInconsistency(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Ints(1)))
	c := b.DeclareVariable(NewDomain(Ints(2)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Equal(a, c).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}

func TestEqualPropagateNoChangeWhenAlreadyEqual(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Ints(1, 2)))
	c := b.DeclareVariable(NewDomain(Ints(1, 2)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Equal(a, c).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, NoChange, out.Kind)
}

func TestNotEqualPropagatesFromSingleton(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Ints(1)))
	c := b.DeclareVariable(NewDomain(Ints(1, 2, 3)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := NotEqual(a, c).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	assert.Equal(t, Ints(2, 3), out.Problem.GetDomain(c).Iter())
	assert.Equal(t, []VariableId{c}, out.ModifiedVars)
}

func TestNotEqualDetectsTwoEqualSingletons(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Ints(5)))
	c := b.DeclareVariable(NewDomain(Ints(5)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := NotEqual(a, c).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}

func TestNotEqualNoChangeWhenBothNonSingleton(t *testing.T) {
	b := NewBuilder()
	a := b.DeclareVariable(NewDomain(Ints(1, 2)))
	c := b.DeclareVariable(NewDomain(Ints(1, 2)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := NotEqual(a, c).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, NoChange, out.Kind)
}
