package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Value
		wantEqual bool
	}{
		{"same int", Int(3), Int(3), true},
		{"different int", Int(3), Int(4), false},
		{"same bool", Bool(true), Bool(true), true},
		{"different bool", Bool(true), Bool(false), false},
		{"same symbol", Symbol("red"), Symbol("red"), true},
		{"different symbol", Symbol("red"), Symbol("blue"), false},
		{"different kinds", Int(1), Bool(true), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantEqual, tc.a.Equal(tc.b))
		})
	}
}

func TestValueLessIsATotalOrder(t *testing.T) {
	values := []Value{Int(3), Int(1), Int(2)}
	assert.True(t, values[1].Less(values[2]))
	assert.True(t, values[2].Less(values[0]))
	assert.False(t, values[0].Less(values[0]))
}

func TestValueLessOrdersAcrossKinds(t *testing.T) {
	assert.True(t, Int(100).Less(Bool(false)))
	assert.True(t, Bool(true).Less(Symbol("a")))
}

func TestValueHashAgreesWithEqual(t *testing.T) {
	a := Symbol("queen")
	b := Symbol("queen")
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestIntRange(t *testing.T) {
	assert.Equal(t, Ints(1, 2, 3), IntRange(1, 3))
	assert.Nil(t, IntRange(5, 1))
}

func TestValuePanicsOnWrongAccessor(t *testing.T) {
	assert.Panics(t, func() { Int(1).BoolValue() })
	assert.Panics(t, func() { Bool(true).Int64() })
	assert.Panics(t, func() { Symbol("x").Int64() })
}
