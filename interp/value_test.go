package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"integer", "42"},
		{"negative integer", "-7"},
		{"float", "3.5"},
		{"float without fraction", "2.0"},
		{"symbol", "foo"},
		{"string", `"hello"`},
		{"string with escapes", `"a\"b\\c\nd\te"`},
		{"empty list", "{}"},
		{"list", "{1 2 3}"},
		{"nested list", "{1 {2 3} 4}"},
		{"expression", "(+ 1 2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			top, err := Parse(c.src)
			assert.NoError(t, err)
			assert.Equal(t, 1, top.Len())
			assert.Equal(t, c.src, Display(top.Items[0]))
		})
	}
}

func TestFormatFloatAlwaysHasDecimalPoint(t *testing.T) {
	assert.Equal(t, "2.0", formatFloat(2))
	assert.Equal(t, "2.5", formatFloat(2.5))
}

func TestEqualStructural(t *testing.T) {
	assert.True(t, Equal(NewInteger(1), NewInteger(1)))
	assert.False(t, Equal(NewInteger(1), NewInteger(2)))
	assert.False(t, Equal(NewInteger(1), NewFloat(1)))
	assert.True(t, Equal(NewString("a"), NewString("a")))
	assert.True(t, Equal(NewList(NewInteger(1), NewInteger(2)), NewList(NewInteger(1), NewInteger(2))))
	assert.False(t, Equal(NewList(NewInteger(1)), NewList(NewInteger(1), NewInteger(2))))
}

func TestEqualFunctionByBuiltinIdentity(t *testing.T) {
	f1 := NewBuiltinFunction("+", builtinAdd)
	f2 := NewBuiltinFunction("+", builtinAdd)
	f3 := NewBuiltinFunction("-", builtinSub)
	assert.True(t, Equal(f1, f2))
	assert.False(t, Equal(f1, f3))
}

func TestCopyIsDisjoint(t *testing.T) {
	orig := NewList(NewInteger(1), NewInteger(2))
	copy := orig.Copy()
	copy.Items[0].Int = 99
	assert.Equal(t, int64(1), orig.Items[0].Int)
	assert.Equal(t, int64(99), copy.Items[0].Int)
}

func TestAddPopJoinLen(t *testing.T) {
	v := NewList(NewInteger(1))
	v.Add(NewInteger(2))
	assert.Equal(t, 2, v.Len())

	popped := v.Pop(0)
	assert.Equal(t, int64(1), popped.Int)
	assert.Equal(t, 1, v.Len())

	other := NewList(NewInteger(3), NewInteger(4))
	v.Join(other)
	assert.Equal(t, 3, v.Len())
}

func TestIsNumericAndAsFloat(t *testing.T) {
	assert.True(t, NewInteger(1).IsNumeric())
	assert.True(t, NewFloat(1).IsNumeric())
	assert.False(t, NewString("x").IsNumeric())
	assert.Equal(t, 3.0, NewInteger(3).AsFloat())
	assert.Equal(t, 3.5, NewFloat(3.5).AsFloat())
}
