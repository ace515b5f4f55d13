package interp

// Comparison builtins (§4.6 "Comparison"), grounded on
// original_source/lib/builtin.c's num_compare (for `<`/`>`) and compare
// (for `==`/`!=`).
func registerCompareBuiltins(env *Environment) {
	Declare(env, &Declaration{"<", "less than, compared left to right; the result is that of the last pair", builtinLess})
	Declare(env, &Declaration{">", "greater than, compared left to right; the result is that of the last pair", builtinGreater})
	Declare(env, &Declaration{"==", "structural equality of exactly two values", builtinEq})
	Declare(env, &Declaration{"!=", "structural inequality of exactly two values", builtinNeq})
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// numCompare reduces left-to-right, comparing the running value against
// each successor; the result is the Integer 0/1 of the *last* pairwise
// comparison (§4.6), matching num_compare's loop.
func numCompare(name string, args *Value, cmp func(isFloat bool, x, y *Value) bool) *Value {
	if err := assertMin(name, args, 2); err != nil {
		return err
	}
	if err := numericCheck(name, args); err != nil {
		return err
	}
	widenToFloat(args)

	x := args.Pop(0)
	var result int64
	for args.Len() > 0 {
		y := args.Pop(0)
		result = boolToInt(cmp(x.Kind == KindFloat, x, y))
		x = y
	}
	return NewInteger(result)
}

func builtinLess(e *Environment, args *Value) *Value {
	return numCompare("<", args, func(isFloat bool, x, y *Value) bool {
		if isFloat {
			return x.Flt < y.Flt
		}
		return x.Int < y.Int
	})
}

func builtinGreater(e *Environment, args *Value) *Value {
	return numCompare(">", args, func(isFloat bool, x, y *Value) bool {
		if isFloat {
			return x.Flt > y.Flt
		}
		return x.Int > y.Int
	})
}

func builtinEq(e *Environment, args *Value) *Value {
	if err := assertCount("==", args, 2); err != nil {
		return err
	}
	return NewInteger(boolToInt(Equal(args.Items[0], args.Items[1])))
}

func builtinNeq(e *Environment, args *Value) *Value {
	if err := assertCount("!=", args, 2); err != nil {
		return err
	}
	return NewInteger(boolToInt(!Equal(args.Items[0], args.Items[1])))
}
