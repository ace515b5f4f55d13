package interp

// Control builtins (§4.6 "Control"), grounded on
// original_source/lib/builtin.c's b_if/b_error. There is no special form:
// `if` is an ordinary builtin that sees already-evaluated arguments, so its
// branches arrive as Lists (quoted by virtue of being List literals at the
// call site, per §4.4/§9) and are re-tagged as Expressions for evaluation.
func registerControlBuiltins(env *Environment) {
	Declare(env, &Declaration{"if", "evaluate one of two List branches depending on an Integer condition", builtinIf})
	Declare(env, &Declaration{"error", "construct an Error value from a String message", builtinError})
}

func builtinIf(e *Environment, args *Value) *Value {
	if err := assertCount("if", args, 3); err != nil {
		return err
	}
	if err := assertType("if", args, 0, KindInteger); err != nil {
		return err
	}
	if err := assertType("if", args, 1, KindList); err != nil {
		return err
	}
	if err := assertType("if", args, 2, KindList); err != nil {
		return err
	}

	branch := args.Items[1]
	if args.Items[0].Int == 0 {
		branch = args.Items[2]
	}
	branch.Kind = KindExpression
	return Eval(e, branch)
}

func builtinError(e *Environment, args *Value) *Value {
	if err := assertCount("error", args, 1); err != nil {
		return err
	}
	if err := assertType("error", args, 0, KindString); err != nil {
		return err
	}
	return NewError("%s", args.Items[0].Str)
}
