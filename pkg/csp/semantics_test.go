package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSemanticsEnumerateStandard(t *testing.T) {
	s := DefaultSemantics{}

	d, err := s.EnumerateStandard("ints:1..4")
	require.NoError(t, err)
	assert.Equal(t, IntRange(1, 4), d.Iter())

	d, err = s.EnumerateStandard("bools")
	require.NoError(t, err)
	assert.Equal(t, Bools(), d.Iter())

	d, err = s.EnumerateStandard("symbols:red, green, blue")
	require.NoError(t, err)
	assert.Equal(t, Symbols("blue", "green", "red"), d.Iter())

	_, err = s.EnumerateStandard("nonsense")
	assert.Error(t, err)
}

func TestDefaultSemanticsDescribe(t *testing.T) {
	s := DefaultSemantics{}
	assert.Equal(t, "7", s.Describe(Int(7)))
}
