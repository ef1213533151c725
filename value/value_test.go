package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	n := Num(12.5)
	b := Bool(true)

	f, err := n.Num()
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	v, err := b.Bool()
	require.NoError(t, err)
	assert.True(t, v)

	_, err = n.Bool()
	require.EqualError(t, err, "12.5 is not a boolean")

	_, err = b.Num()
	require.EqualError(t, err, "true is not a number")
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "integer valued", v: Num(5), want: "5"},
		{name: "fraction", v: Num(12.222222222222221), want: "12.222222222222221"},
		{name: "negative", v: Num(-0.5), want: "-0.5"},
		{name: "pi", v: Num(math.Pi), want: "3.141592653589793"},
		{name: "true", v: Bool(true), want: "true"},
		{name: "false", v: Bool(false), want: "false"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.String())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Num(1).Equal(Num(1)))
	assert.False(t, Num(1).Equal(Num(2)))
	assert.True(t, Bool(true).Equal(Bool(true)))
	assert.False(t, Num(1).Equal(Bool(true)))

	// NaN is not equal to itself.
	assert.False(t, Num(math.NaN()).Equal(Num(math.NaN())))
}
