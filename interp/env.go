package interp

import "github.com/google/btree"

// binding is one Symbol->Value pair stored in an Environment frame's btree.
type binding struct {
	key   string
	value *Value
}

func bindingLess(a, b binding) bool { return a.key < b.key }

// Environment is a mapping from Symbol text to Value, with a non-owning
// link to a parent environment (§3 "Environment"). Bindings are kept in a
// btree rather than a bare map so that enumeration (the `env` builtin,
// §4.6) is in a stable, sorted order instead of Go's randomized map order.
type Environment struct {
	vars   *btree.BTreeG[binding]
	Parent *Environment
}

// degree 32 is the teacher's default for memcp's ordered indexes
// (storage/settings.go); there is no reason to differ here since
// environment frames are small.
const envBTreeDegree = 32

// NewEnvironment creates an empty environment frame with the given parent.
// A nil parent marks the root (global) environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: btree.NewG(envBTreeDegree, bindingLess), Parent: parent}
}

// Get implements §4.2's get(sym): search the current frame, then delegate
// to the parent chain, returning a copy of the stored Value, or an Error if
// the symbol is bound nowhere in the chain.
func (e *Environment) Get(sym string) *Value {
	for env := e; env != nil; env = env.Parent {
		if b, ok := env.vars.Get(binding{key: sym}); ok {
			return b.value.Copy()
		}
	}
	return NewError("Unknown symbol '%s'.", sym)
}

// Set implements §4.2's set(sym, v): store a copy of v under sym in the
// current frame, replacing any prior binding.
func (e *Environment) Set(sym string, v *Value) {
	e.vars.ReplaceOrInsert(binding{key: sym, value: v.Copy()})
}

// SetGlobal implements §4.2's set_global(sym, v): walk to the topmost
// parent, then set there.
func (e *Environment) SetGlobal(sym string, v *Value) {
	root := e
	for root.Parent != nil {
		root = root.Parent
	}
	root.Set(sym, v)
}

// Bindings returns every {symbol value} pair held directly by this frame,
// in sorted key order, for the `env` builtin (§4.6).
func (e *Environment) Bindings() []binding {
	result := make([]binding, 0, e.vars.Len())
	e.vars.Ascend(func(b binding) bool {
		result = append(result, b)
		return true
	})
	return result
}

// Copy produces a disjoint duplicate of this environment frame. The parent
// link is shared (it is non-owning, per §3), matching
// original_source/lib/types.c's copy_env.
func (e *Environment) Copy() *Environment {
	if e == nil {
		return nil
	}
	c := NewEnvironment(e.Parent)
	e.vars.Ascend(func(b binding) bool {
		c.vars.ReplaceOrInsert(binding{key: b.key, value: b.value.Copy()})
		return true
	})
	return c
}
