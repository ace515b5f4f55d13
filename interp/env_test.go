package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Set("x", NewInteger(1))
	assert.Equal(t, int64(1), env.Get("x").Int)
}

func TestEnvironmentUnknownSymbol(t *testing.T) {
	env := NewEnvironment(nil)
	got := env.Get("nope")
	assert.Equal(t, KindError, got.Kind)
	assert.Equal(t, "Unknown symbol 'nope'.", got.Str)
}

func TestEnvironmentParentChainLookup(t *testing.T) {
	root := NewEnvironment(nil)
	root.Set("x", NewInteger(1))
	child := NewEnvironment(root)
	assert.Equal(t, int64(1), child.Get("x").Int)
}

func TestEnvironmentShadowing(t *testing.T) {
	root := NewEnvironment(nil)
	root.Set("x", NewInteger(1))
	child := NewEnvironment(root)
	child.Set("x", NewInteger(2))

	assert.Equal(t, int64(2), child.Get("x").Int)
	assert.Equal(t, int64(1), root.Get("x").Int)
}

func TestEnvironmentSetGlobalWalksToRoot(t *testing.T) {
	root := NewEnvironment(nil)
	mid := NewEnvironment(root)
	leaf := NewEnvironment(mid)

	leaf.SetGlobal("x", NewInteger(5))

	assert.Equal(t, int64(5), root.Get("x").Int)
	_, ok := mid.vars.Get(binding{key: "x"})
	assert.False(t, ok)
}

func TestEnvironmentGetReturnsCopyNotAlias(t *testing.T) {
	env := NewEnvironment(nil)
	env.Set("l", NewList(NewInteger(1)))
	got := env.Get("l")
	got.Items[0].Int = 99
	assert.Equal(t, int64(1), env.Get("l").Items[0].Int)
}

func TestEnvironmentBindingsSorted(t *testing.T) {
	env := NewEnvironment(nil)
	env.Set("c", NewInteger(3))
	env.Set("a", NewInteger(1))
	env.Set("b", NewInteger(2))

	bindings := env.Bindings()
	assert.Len(t, bindings, 3)
	assert.Equal(t, "a", bindings[0].key)
	assert.Equal(t, "b", bindings[1].key)
	assert.Equal(t, "c", bindings[2].key)
}

func TestEnvironmentCopySharesParentDeepCopiesBindings(t *testing.T) {
	root := NewEnvironment(nil)
	env := NewEnvironment(root)
	env.Set("x", NewInteger(1))

	dup := env.Copy()
	dup.Set("x", NewInteger(2))

	assert.Same(t, root, dup.Parent)
	assert.Equal(t, int64(1), env.Get("x").Int)
	assert.Equal(t, int64(2), dup.Get("x").Int)
}
