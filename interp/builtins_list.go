package interp

// List-surface builtins (§4.6 "List surface"), grounded on
// original_source/lib/builtin.c's b_list/b_get/b_remove/b_len/b_eval, plus
// head/tail/join which the base spec adds beyond the original C surface
// (join mirrors the original's internal, unexported join() helper that
// b_add used for List `+`, promoted here to a standalone builtin).
func registerListBuiltins(env *Environment) {
	Declare(env, &Declaration{"list", "tag the argument Expression as a List and return it", builtinList})
	Declare(env, &Declaration{"head", "return the first element of a non-empty List", builtinHead})
	Declare(env, &Declaration{"tail", "return a List holding every element but the first", builtinTail})
	Declare(env, &Declaration{"join", "concatenate one or more Lists; non-List arguments are appended as elements", builtinJoin})
	Declare(env, &Declaration{"len", "return the number of elements of a List", builtinLen})
	Declare(env, &Declaration{"get", "return element i of a List", builtinGet})
	Declare(env, &Declaration{"remove", "return a List without element i", builtinRemove})
	Declare(env, &Declaration{"eval", "evaluate a List as an Expression under the current environment", builtinEval})
}

func builtinList(e *Environment, args *Value) *Value {
	args.Kind = KindList
	return args
}

func builtinHead(e *Environment, args *Value) *Value {
	if err := assertCount("head", args, 1); err != nil {
		return err
	}
	if err := assertType("head", args, 0, KindList); err != nil {
		return err
	}
	if err := assertNotEmpty("head", args, 0); err != nil {
		return err
	}
	return args.Items[0].Items[0]
}

func builtinTail(e *Environment, args *Value) *Value {
	if err := assertCount("tail", args, 1); err != nil {
		return err
	}
	if err := assertType("tail", args, 0, KindList); err != nil {
		return err
	}
	if err := assertNotEmpty("tail", args, 0); err != nil {
		return err
	}
	l := args.Items[0]
	return NewList(l.Items[1:]...)
}

func builtinJoin(e *Environment, args *Value) *Value {
	if err := assertMin("join", args, 1); err != nil {
		return err
	}
	return joinValues(args)
}

// joinValues implements the original's join(): the first argument is the
// accumulator (forced to List kind); each subsequent argument is merged in
// whole if it is itself a List, or appended as a single element otherwise.
func joinValues(args *Value) *Value {
	acc := args.Pop(0)
	acc.Kind = KindList
	for args.Len() > 0 {
		x := args.Pop(0)
		if x.Kind != KindList {
			acc.Add(x)
		} else {
			acc.Join(x)
		}
	}
	return acc
}

func builtinLen(e *Environment, args *Value) *Value {
	if err := assertCount("len", args, 1); err != nil {
		return err
	}
	if err := assertType("len", args, 0, KindList); err != nil {
		return err
	}
	return NewInteger(int64(args.Items[0].Len()))
}

func builtinGet(e *Environment, args *Value) *Value {
	if err := assertCount("get", args, 2); err != nil {
		return err
	}
	if err := assertType("get", args, 0, KindList); err != nil {
		return err
	}
	if err := assertType("get", args, 1, KindInteger); err != nil {
		return err
	}
	l := args.Items[0]
	idx := args.Items[1].Int
	if idx < 0 || idx >= int64(l.Len()) {
		return NewError("Function 'get' index out of bounds (index: %d, list length: %d).", idx, l.Len())
	}
	return l.Items[idx]
}

func builtinRemove(e *Environment, args *Value) *Value {
	if err := assertCount("remove", args, 2); err != nil {
		return err
	}
	if err := assertType("remove", args, 0, KindList); err != nil {
		return err
	}
	if err := assertType("remove", args, 1, KindInteger); err != nil {
		return err
	}
	l := args.Items[0]
	idx := args.Items[1].Int
	if idx < 0 || idx >= int64(l.Len()) {
		return NewError("Function 'remove' index out of bounds (index: %d, list length: %d).", idx, l.Len())
	}
	l.Pop(int(idx))
	return l
}

func builtinEval(e *Environment, args *Value) *Value {
	if err := assertCount("eval", args, 1); err != nil {
		return err
	}
	if err := assertType("eval", args, 0, KindList); err != nil {
		return err
	}
	l := args.Items[0]
	l.Kind = KindExpression
	return Eval(e, l)
}
