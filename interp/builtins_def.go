package interp

import "os"

// Definition, function-construction and process builtins (§4.6
// "Definitions", "Function form", "Environment & process"), grounded on
// original_source/lib/builtin.c's def_var/b_def/b_put/b_fun/b_env/b_exit.
func registerDefBuiltins(env *Environment) {
	Declare(env, &Declaration{"def", "bind Symbols to values in the topmost (global) environment", builtinDef})
	Declare(env, &Declaration{"=", "bind Symbols to values in the current environment", builtinPut})
	Declare(env, &Declaration{"fun", "construct a user Function from a header List and a body List", builtinFun})
	Declare(env, &Declaration{"env", "list every {symbol value} binding of the current frame", builtinEnv})
	Declare(env, &Declaration{"exit", "terminate the process successfully", builtinExit})
}

// defVar implements both `def` (global = true) and `=` (global = false):
// a List of Symbols followed by exactly that many values, each Symbol
// checked against the reserved-keyword set derived from the builtin
// registry (interp/declare.go).
func defVar(env *Environment, args *Value, op string, global bool) *Value {
	if err := assertType(op, args, 0, KindList); err != nil {
		return err
	}

	keys := args.Items[0]
	for i := range keys.Items {
		if err := assertElemType(op, args, 0, i, KindSymbol); err != nil {
			return err
		}
		if IsReserved(keys.Items[i].Str) {
			return NewError("Function '%s' received forbidden Symbol '%s'. This is a builtin Symbol.", op, keys.Items[i].Str)
		}
	}

	if keys.Len() != args.Len()-1 {
		return NewError("Function '%s' received unmatching number of Symbols (%d) and values (%d).", op, keys.Len(), args.Len()-1)
	}

	for i := 0; i < keys.Len(); i++ {
		if global {
			env.SetGlobal(keys.Items[i].Str, args.Items[i+1])
		} else {
			env.Set(keys.Items[i].Str, args.Items[i+1])
		}
	}

	return NewExpression()
}

func builtinDef(e *Environment, args *Value) *Value { return defVar(e, args, "def", true) }
func builtinPut(e *Environment, args *Value) *Value { return defVar(e, args, "=", false) }

func builtinFun(e *Environment, args *Value) *Value {
	if err := assertCount("fun", args, 2); err != nil {
		return err
	}
	if err := assertType("fun", args, 0, KindList); err != nil {
		return err
	}
	if err := assertType("fun", args, 1, KindList); err != nil {
		return err
	}
	for i := range args.Items[0].Items {
		if err := assertElemType("fun", args, 0, i, KindSymbol); err != nil {
			return err
		}
	}

	header := args.Pop(0)
	body := args.Pop(0)
	return NewUserFunction(header, body, NewEnvironment(nil))
}

func builtinEnv(e *Environment, args *Value) *Value {
	if err := assertCount("env", args, 1); err != nil {
		return err
	}
	if err := assertType("env", args, 0, KindList); err != nil {
		return err
	}
	if err := assertEmpty("env", args, 0); err != nil {
		return err
	}

	result := NewList()
	for _, b := range e.Bindings() {
		result.Add(NewList(NewSymbol(b.key), b.value.Copy()))
	}
	return result
}

func builtinExit(e *Environment, args *Value) *Value {
	if err := assertCount("exit", args, 1); err != nil {
		return err
	}
	if err := assertType("exit", args, 0, KindList); err != nil {
		return err
	}
	if err := assertEmpty("exit", args, 0); err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
