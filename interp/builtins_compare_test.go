package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareLessChain(t *testing.T) {
	env := NewGlobalEnvironment()
	v := builtinLess(env, NewExpression(NewInteger(1), NewInteger(2), NewInteger(3)))
	assert.Equal(t, int64(1), v.Int)

	v2 := builtinLess(env, NewExpression(NewInteger(1), NewInteger(2), NewInteger(1)))
	assert.Equal(t, int64(0), v2.Int)
}

func TestCompareMixedModeWidening(t *testing.T) {
	env := NewGlobalEnvironment()
	v := builtinLess(env, NewExpression(NewInteger(1), NewFloat(1.5)))
	assert.Equal(t, int64(1), v.Int)
}

func TestCompareEqualityAcrossKinds(t *testing.T) {
	env := NewGlobalEnvironment()
	assert.Equal(t, int64(0), builtinEq(env, NewExpression(NewInteger(1), NewString("1"))).Int)
	assert.Equal(t, int64(1), builtinEq(env, NewExpression(NewInteger(1), NewInteger(1))).Int)
	assert.Equal(t, int64(1), builtinNeq(env, NewExpression(NewInteger(1), NewString("1"))).Int)
}

func TestCompareEqualityOnLists(t *testing.T) {
	env := NewGlobalEnvironment()
	a := NewList(NewInteger(1), NewInteger(2))
	b := NewList(NewInteger(1), NewInteger(2))
	assert.Equal(t, int64(1), builtinEq(env, NewExpression(a, b)).Int)
}
