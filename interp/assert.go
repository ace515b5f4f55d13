package interp

// Argument-checking helpers shared by the builtins, grounded on
// original_source/lib/builtin.c's ASSERT_* macros. Each returns an Error
// Value (matching §4.6's "errors uniformly include the function's surface
// name") or nil when the check passes.

func assertCount(name string, args *Value, n int) *Value {
	if args.Len() != n {
		return NewError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, args.Len(), n)
	}
	return nil
}

func assertMin(name string, args *Value, n int) *Value {
	if args.Len() < n {
		return NewError("Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.", name, args.Len(), n)
	}
	return nil
}

func assertType(name string, args *Value, index int, expect Kind) *Value {
	got := args.Items[index].Kind
	if got != expect {
		return NewError("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, index, TypeName(args.Items[index]), expect.String())
	}
	return nil
}

func assertNumType(name string, args *Value, index int) *Value {
	k := args.Items[index].Kind
	if k != KindInteger && k != KindFloat {
		return NewError("Function '%s' passed incorrect type for argument %d. Got %s, Expected Number.", name, index, TypeName(args.Items[index]))
	}
	return nil
}

func assertNumStrType(name string, args *Value, index int) *Value {
	k := args.Items[index].Kind
	if k != KindInteger && k != KindFloat && k != KindString {
		return NewError("Function '%s' passed incorrect type for argument %d. Got %s, Expected Number or String.", name, index, TypeName(args.Items[index]))
	}
	return nil
}

func assertNotEmpty(name string, args *Value, index int) *Value {
	if args.Items[index].Len() == 0 {
		return NewError("Function '%s' passed {} for argument %d.", name, index)
	}
	return nil
}

func assertEmpty(name string, args *Value, index int) *Value {
	if args.Items[index].Len() != 0 {
		return NewError("Function '%s' passed non-empty for argument %d. Expected {}.", name, index)
	}
	return nil
}

func assertElemType(name string, args *Value, index, elem int, expect Kind) *Value {
	got := args.Items[index].Items[elem].Kind
	if got != expect {
		return NewError("Function '%s' passed incorrect type for element %d of argument %d. Got %s, Expected %s.", name, elem, index, got.String(), expect.String())
	}
	return nil
}
