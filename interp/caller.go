package interp

// Call implements §4.5, the calling convention: binding arguments to
// parameters, the variadic `&` marker, partial application, and body
// evaluation. Grounded on original_source/lib/types.c's call(), with the
// unreachable `"0"`-literal branch omitted per the base spec's own
// resolution of that Open Question (§9).
//
// f is owned by the evaluator (it frees it after the call returns); args is
// owned by the caller and consumed here.
func Call(env *Environment, f *Value, args *Value) *Value {
	if f.Fn.BuiltinFn != nil {
		return f.Fn.BuiltinFn(env, args)
	}

	given := args.Len()
	total := f.Fn.Header.Len()

	for args.Len() > 0 {
		if f.Fn.Header.Len() == 0 {
			return NewError("Function received too many arguments. Received %d. Expected %d.", given, total)
		}

		param := f.Fn.Header.Pop(0)

		if param.Str == "&" {
			if f.Fn.Header.Len() != 1 {
				return NewError("Invalid function format. Symbol '&' should be followed by exactly one Symbol.")
			}
			rest := f.Fn.Header.Pop(0)
			args.Kind = KindList
			f.Fn.Env.Set(rest.Str, args)
			args = NewExpression()
			break
		}

		arg := args.Pop(0)
		f.Fn.Env.Set(param.Str, arg)
	}

	if f.Fn.Header.Len() > 0 && f.Fn.Header.Items[0].Str == "&" {
		if f.Fn.Header.Len() != 2 {
			return NewError("Invalid function format. Symbol '&' should be followed by exactly one Symbol.")
		}
		f.Fn.Header.Pop(0)
		rest := f.Fn.Header.Pop(0)
		f.Fn.Env.Set(rest.Str, NewList())
	}

	if f.Fn.Header.Len() == 0 {
		f.Fn.Env.Parent = env
		body := f.Fn.Body.Copy()
		body.Kind = KindExpression
		return Eval(f.Fn.Env, body)
	}

	return f.Copy()
}
