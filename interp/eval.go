package interp

// Eval implements §4.4: the evaluator is a single-function recursion on
// Value. Grounded on original_source/lib/types.c's eval/eval_exp and
// scm/scm.go's Eval, minus the teacher's goto-restart tail-call trampoline
// — the base spec's Non-goals exclude tail-call optimisation, so this is a
// plain recursive descent.
func Eval(env *Environment, v *Value) *Value {
	switch v.Kind {
	case KindSymbol:
		return env.Get(v.Str)
	case KindExpression:
		return evalExpression(env, v)
	default:
		// Integer, Float, Error, String, List, Function evaluate to
		// themselves unchanged.
		return v
	}
}

func evalExpression(env *Environment, v *Value) *Value {
	evaluated := make([]*Value, len(v.Items))
	for i, child := range v.Items {
		evaluated[i] = Eval(env, child)
	}

	for _, child := range evaluated {
		if child.Kind == KindError {
			return child
		}
	}

	if len(evaluated) == 0 {
		return NewExpression()
	}

	if len(evaluated) == 1 {
		return evaluated[0]
	}

	first := evaluated[0]
	if first.Kind != KindFunction {
		return NewError("Expression must start with a Function. Received '%s'.", TypeName(first))
	}

	rest := NewExpression(evaluated[1:]...)
	return Call(env, first, rest)
}
