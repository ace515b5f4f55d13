package interp

import (
	"math"
	"strings"
)

// Arithmetic builtins (§4.6 "Arithmetic"), grounded on
// original_source/lib/builtin.c's num_operation/num_math and b_add's
// String/List overload of `+`. All eight operators apply the same
// mixed-mode widening rule (§3): if any operand is Float, every Integer
// operand is widened to Float before reducing.
func registerArithBuiltins(env *Environment) {
	Declare(env, &Declaration{"+", "add numbers, concatenate strings, or join lists", builtinAdd})
	Declare(env, &Declaration{"-", "subtract numbers, or negate a single operand", builtinSub})
	Declare(env, &Declaration{"*", "multiply numbers", builtinMul})
	Declare(env, &Declaration{"/", "divide numbers", builtinDiv})
	Declare(env, &Declaration{"%", "modulo numbers", builtinMod})
	Declare(env, &Declaration{"^", "raise numbers to a power", builtinPow})
	Declare(env, &Declaration{"min", "smallest of the given numbers", builtinMin})
	Declare(env, &Declaration{"max", "largest of the given numbers", builtinMax})
}

func widenToFloat(args *Value) {
	hasFloat := false
	for _, v := range args.Items {
		if v.Kind == KindFloat {
			hasFloat = true
			break
		}
	}
	if !hasFloat {
		return
	}
	for _, v := range args.Items {
		if v.Kind == KindInteger {
			v.Kind = KindFloat
			v.Flt = float64(v.Int)
		}
	}
}

func numericCheck(name string, args *Value) *Value {
	for i := range args.Items {
		if err := assertNumType(name, args, i); err != nil {
			return err
		}
	}
	return nil
}

// reduceNumeric implements the num_math reduction: pop the first operand,
// then fold each remaining operand into it with op, stopping early if op
// itself produces an Error (division/modulo by zero).
func reduceNumeric(name string, args *Value, op func(isFloat bool, x, y *Value) *Value) *Value {
	if err := assertMin(name, args, 2); err != nil {
		return err
	}
	if err := numericCheck(name, args); err != nil {
		return err
	}
	widenToFloat(args)

	x := args.Pop(0)
	for args.Len() > 0 {
		y := args.Pop(0)
		result := op(x.Kind == KindFloat, x, y)
		if result.Kind == KindError {
			return result
		}
		x = result
	}
	return x
}

func concatStrings(args *Value) *Value {
	var b strings.Builder
	for _, v := range args.Items {
		b.WriteString(valToStr(v))
	}
	return NewString(b.String())
}

func builtinAdd(e *Environment, args *Value) *Value {
	if err := assertMin("+", args, 2); err != nil {
		return err
	}
	switch args.Items[0].Kind {
	case KindString:
		return concatStrings(args)
	case KindList:
		return joinValues(args)
	default:
		return reduceNumeric("+", args, func(isFloat bool, x, y *Value) *Value {
			if isFloat {
				return NewFloat(x.Flt + y.Flt)
			}
			return NewInteger(x.Int + y.Int)
		})
	}
}

func builtinSub(e *Environment, args *Value) *Value {
	if args.Len() == 1 {
		if err := assertNumType("-", args, 0); err != nil {
			return err
		}
		x := args.Items[0]
		if x.Kind == KindFloat {
			return NewFloat(-x.Flt)
		}
		return NewInteger(-x.Int)
	}
	return reduceNumeric("-", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			return NewFloat(x.Flt - y.Flt)
		}
		return NewInteger(x.Int - y.Int)
	})
}

func builtinMul(e *Environment, args *Value) *Value {
	return reduceNumeric("*", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			return NewFloat(x.Flt * y.Flt)
		}
		return NewInteger(x.Int * y.Int)
	})
}

func builtinDiv(e *Environment, args *Value) *Value {
	return reduceNumeric("/", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			if y.Flt == 0 {
				return NewError("Division By Zero.")
			}
			return NewFloat(x.Flt / y.Flt)
		}
		if y.Int == 0 {
			return NewError("Division By Zero.")
		}
		return NewInteger(x.Int / y.Int)
	})
}

func builtinMod(e *Environment, args *Value) *Value {
	return reduceNumeric("%", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			if y.Flt == 0 {
				return NewError("Division By Zero.")
			}
			return NewFloat(math.Mod(x.Flt, y.Flt))
		}
		if y.Int == 0 {
			return NewError("Division By Zero.")
		}
		return NewInteger(x.Int % y.Int)
	})
}

func builtinPow(e *Environment, args *Value) *Value {
	return reduceNumeric("^", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			return NewFloat(math.Pow(x.Flt, y.Flt))
		}
		return NewInteger(int64(math.Pow(float64(x.Int), float64(y.Int))))
	})
}

func builtinMin(e *Environment, args *Value) *Value {
	return reduceNumeric("min", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			if x.Flt < y.Flt {
				return x
			}
			return y
		}
		if x.Int < y.Int {
			return x
		}
		return y
	})
}

func builtinMax(e *Environment, args *Value) *Value {
	return reduceNumeric("max", args, func(isFloat bool, x, y *Value) *Value {
		if isFloat {
			if x.Flt > y.Flt {
				return x
			}
			return y
		}
		if x.Int > y.Int {
			return x
		}
		return y
	})
}
