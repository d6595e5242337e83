package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticPrunesBothDirections(t *testing.T) {
	b := NewBuilder()
	x := b.DeclareVariable(NewDomain(Ints(1, 2, 5, 7)))
	y := b.DeclareVariable(NewDomain(IntRange(1, 8)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Arithmetic(x, y, 3).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	assert.Equal(t, Ints(4, 5, 8), out.Problem.GetDomain(y).Iter())
	assert.Equal(t, Ints(1, 2, 5), out.Problem.GetDomain(x).Iter())
}

func TestArithmeticSelfReferenceZeroOffsetIsFree(t *testing.T) {
	b := NewBuilder()
	x := b.DeclareVariable(NewDomain(Ints(1, 2, 3)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Arithmetic(x, x, 0).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, NoChange, out.Kind)
}

func TestArithmeticSelfReferenceNonZeroOffsetIsImpossible(t *testing.T) {
	b := NewBuilder()
	x := b.DeclareVariable(NewDomain(Ints(1, 2, 3)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Arithmetic(x, x, 1).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}

func TestInequalityLessThanBoundsPropagation(t *testing.T) {
	b := NewBuilder()
	x := b.DeclareVariable(NewDomain(Ints(1, 2, 6, 7, 8, 9, 10)))
	y := b.DeclareVariable(NewDomain(Ints(5, 6, 7)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Inequality(x, y, LessThan).Propagate(p, nil)
	require.NoError(t, err)
	require.Equal(t, Changed, out.Kind)
	// Bounds propagation removes x >= max(y)=7 and y <= min(x)=1; for an
	// order relation that is already arc-consistent (see
	// inequalityConstraint's doc comment).
	assert.Equal(t, Ints(1, 2, 6), out.Problem.GetDomain(x).Iter())
	assert.Equal(t, Ints(5, 6, 7), out.Problem.GetDomain(y).Iter())
}

func TestInequalityGreaterEqualDetectsInconsistency(t *testing.T) {
	b := NewBuilder()
	x := b.DeclareVariable(NewDomain(Ints(1, 2)))
	y := b.DeclareVariable(NewDomain(Ints(5, 6)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Inequality(x, y, GreaterEqual).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}

func TestInequalitySelfReferenceCases(t *testing.T) {
	b := NewBuilder()
	x := b.DeclareVariable(NewDomain(Ints(1, 2)))
	p, err := b.Build()
	require.NoError(t, err)

	out, err := Inequality(x, x, LessEqual).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, NoChange, out.Kind)

	out, err = Inequality(x, x, LessThan).Propagate(p, nil)
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, out.Kind)
}
