package interp

import (
	"regexp"
	"strconv"
	"strings"
)

// Type-utility builtins (§4.6 "Type utilities"), grounded on
// original_source/lib/builtin.c's b_typeof/b_string/b_int/b_float and
// lib/parser.c's string_to_int/string_to_float for the numeric-literal
// error taxonomy (§7 "Numeric-literal error").
func registerTypeBuiltins(env *Environment) {
	Declare(env, &Declaration{"typeof", "return the type name of a value as a String", builtinTypeof})
	Declare(env, &Declaration{"string", "convert a value to its display-form String", builtinString})
	Declare(env, &Declaration{"int", "convert Integer/Float/String to Integer", builtinInt})
	Declare(env, &Declaration{"float", "convert Integer/Float/String to Float", builtinFloat})
}

// valToStr is the "textual" conversion used both by `string` and by the
// String overload of `+` (§4.6): a String converts to its own text; every
// other value converts via its display form.
func valToStr(v *Value) string {
	if v.Kind == KindString {
		return v.Str
	}
	return Display(v)
}

func builtinTypeof(e *Environment, args *Value) *Value {
	if err := assertCount("typeof", args, 1); err != nil {
		return err
	}
	return NewString(TypeName(args.Items[0]))
}

func builtinString(e *Environment, args *Value) *Value {
	if err := assertCount("string", args, 1); err != nil {
		return err
	}
	return NewString(valToStr(args.Items[0]))
}

func builtinInt(e *Environment, args *Value) *Value {
	if err := assertCount("int", args, 1); err != nil {
		return err
	}
	if err := assertNumStrType("int", args, 0); err != nil {
		return err
	}
	v := args.Items[0]
	switch v.Kind {
	case KindInteger:
		return v
	case KindFloat:
		return NewInteger(int64(v.Flt))
	default:
		return parseIntValue(v.Str)
	}
}

func builtinFloat(e *Environment, args *Value) *Value {
	if err := assertCount("float", args, 1); err != nil {
		return err
	}
	if err := assertNumStrType("float", args, 0); err != nil {
		return err
	}
	v := args.Items[0]
	switch v.Kind {
	case KindFloat:
		return v
	case KindInteger:
		return NewFloat(float64(v.Int))
	default:
		return parseFloatValue(v.Str)
	}
}

var intLiteralRe = regexp.MustCompile(`^-?[0-9]+`)
var floatLiteralRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?`)

func parseIntValue(s string) *Value {
	lead := intLiteralRe.FindString(s)
	if lead == "" {
		return NewError("Invalid Integer '%s'. No digits found.", s)
	}
	n, err := strconv.ParseInt(lead, 10, 64)
	if err != nil {
		if strings.HasPrefix(lead, "-") {
			return NewError("Invalid Integer '%s'. Underflow.", s)
		}
		return NewError("Invalid Integer '%s'. Overflow.", s)
	}
	if lead != s {
		return NewError("Invalid Integer '%s'. Additional characters found.", s)
	}
	return NewInteger(n)
}

func parseFloatValue(s string) *Value {
	lead := floatLiteralRe.FindString(s)
	if lead == "" {
		return NewError("Invalid Float '%s'. No digits found.", s)
	}
	f, err := strconv.ParseFloat(lead, 64)
	if err != nil {
		return NewError("Invalid Float '%s'. Overflow.", s)
	}
	if lead != s {
		return NewError("Invalid Float '%s'. Additional characters found.", s)
	}
	return NewFloat(f)
}
