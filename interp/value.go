// Package interp implements the Z-Lisp language runtime: the value model,
// the lexical environment, the parser, the evaluator, the calling
// convention and the built-in operator library.
package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindError
	KindSymbol
	KindString
	KindExpression
	KindList
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindError:
		return "Error"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindExpression:
		return "Expression"
	case KindList:
		return "List"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Builtin is the native Go implementation backing a builtin Function. It
// receives the caller's environment and an owned Expression of already
// evaluated arguments, and returns a freshly owned Value.
type Builtin func(e *Environment, args *Value) *Value

// Function is the payload of a KindFunction Value: either a builtin
// (BuiltinFn set, BuiltinName used for display/equality) or a user function
// (Header, Body and Env all owned exclusively by this Function).
type Function struct {
	BuiltinFn   Builtin
	BuiltinName string

	Header *Value // List of Symbols, consumed left-to-right by the caller
	Body   *Value // List, the function body
	Env    *Environment
}

// Value is the tagged sum at the heart of the interpreter. Exactly one of
// the fields below is meaningful for a given Kind.
type Value struct {
	Kind Kind

	Int int64
	Flt float64
	Str string // Error message, Symbol text, or String contents

	Items []*Value // Expression or List children, in source order

	Fn *Function
}

// ---------- Constructors ----------

func NewInteger(n int64) *Value { return &Value{Kind: KindInteger, Int: n} }
func NewFloat(f float64) *Value { return &Value{Kind: KindFloat, Flt: f} }

func NewError(format string, args ...interface{}) *Value {
	return &Value{Kind: KindError, Str: fmt.Sprintf(format, args...)}
}

func NewSymbol(s string) *Value { return &Value{Kind: KindSymbol, Str: s} }
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

func NewExpression(items ...*Value) *Value {
	return &Value{Kind: KindExpression, Items: items}
}

func NewList(items ...*Value) *Value {
	return &Value{Kind: KindList, Items: items}
}

func NewBuiltinFunction(name string, fn Builtin) *Value {
	return &Value{Kind: KindFunction, Fn: &Function{BuiltinFn: fn, BuiltinName: name}}
}

func NewUserFunction(header, body *Value, env *Environment) *Value {
	return &Value{Kind: KindFunction, Fn: &Function{Header: header, Body: body, Env: env}}
}

// ---------- Expression/List manipulation ----------
//
// These mirror the ownership-transfer primitives of the original C sources
// (exp_add/exp_pop/exp_take/exp_join); Go's garbage collector makes the
// "ownership" purely a documentation concern, but keeping the same names
// and shapes keeps the caller and evaluator code readable against the
// source they're grounded on.

// Add appends child to v's children and returns v.
func (v *Value) Add(child *Value) *Value {
	v.Items = append(v.Items, child)
	return v
}

// Pop removes and returns the child at index i.
func (v *Value) Pop(i int) *Value {
	x := v.Items[i]
	v.Items = append(v.Items[:i], v.Items[i+1:]...)
	return x
}

// Join appends all of y's children onto x and returns x.
func (x *Value) Join(y *Value) *Value {
	x.Items = append(x.Items, y.Items...)
	return x
}

// Len reports the number of children of an Expression or List.
func (v *Value) Len() int { return len(v.Items) }

// ---------- Copy ----------

// Copy produces a fully disjoint duplicate of the value graph. Copying a
// user Function copies its header, body and environment.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	c := &Value{Kind: v.Kind, Int: v.Int, Flt: v.Flt, Str: v.Str}
	switch v.Kind {
	case KindExpression, KindList:
		if v.Items != nil {
			c.Items = make([]*Value, len(v.Items))
			for i, child := range v.Items {
				c.Items[i] = child.Copy()
			}
		}
	case KindFunction:
		if v.Fn.BuiltinFn != nil {
			c.Fn = &Function{BuiltinFn: v.Fn.BuiltinFn, BuiltinName: v.Fn.BuiltinName}
		} else {
			c.Fn = &Function{
				Header: v.Fn.Header.Copy(),
				Body:   v.Fn.Body.Copy(),
				Env:    v.Fn.Env.Copy(),
			}
		}
	}
	return c
}

// ---------- Structural equality ----------

// Equal implements the structural equality of §4.1: the same variant is
// required; Function equality treats a builtin on either side as identity
// comparison, and otherwise compares header and body structurally while
// ignoring the captured environment.
func Equal(a, b *Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindInteger:
		return a.Int == b.Int
	case KindFloat:
		return a.Flt == b.Flt
	case KindError, KindSymbol, KindString:
		return a.Str == b.Str
	case KindExpression, KindList:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindFunction:
		if a.Fn.BuiltinFn != nil || b.Fn.BuiltinFn != nil {
			return fmt.Sprintf("%p", a.Fn.BuiltinFn) == fmt.Sprintf("%p", b.Fn.BuiltinFn) &&
				a.Fn.BuiltinFn != nil && b.Fn.BuiltinFn != nil
		}
		return Equal(a.Fn.Header, b.Fn.Header) && Equal(a.Fn.Body, b.Fn.Body)
	}
	return false
}

// IsNumeric reports whether v is Integer or Float.
func (v *Value) IsNumeric() bool { return v.Kind == KindInteger || v.Kind == KindFloat }

// AsFloat returns v's numeric value widened to float64. Callers must check
// IsNumeric first.
func (v *Value) AsFloat() float64 {
	if v.Kind == KindInteger {
		return float64(v.Int)
	}
	return v.Flt
}

// ---------- Display ----------

var stringEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\t", "\\t",
)

// Display renders v in the concrete syntax described by §4.1/§4.3. For
// Integer, Float, String, Symbol, List and Expression the result round-trips
// through the parser.
func Display(v *Value) string {
	var b strings.Builder
	display(&b, v)
	return b.String()
}

func display(b *strings.Builder, v *Value) {
	switch v.Kind {
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		b.WriteString(formatFloat(v.Flt))
	case KindError:
		b.WriteString("Error: ")
		b.WriteString(v.Str)
	case KindSymbol:
		b.WriteString(v.Str)
	case KindString:
		b.WriteByte('"')
		b.WriteString(stringEscaper.Replace(v.Str))
		b.WriteByte('"')
	case KindExpression:
		displayItems(b, v, '(', ')')
	case KindList:
		displayItems(b, v, '{', '}')
	case KindFunction:
		if v.Fn.BuiltinFn != nil {
			b.WriteString("<builtin_")
			b.WriteString(v.Fn.BuiltinName)
			b.WriteByte('>')
		} else {
			b.WriteString("(fun ")
			display(b, v.Fn.Header)
			b.WriteByte(' ')
			display(b, v.Fn.Body)
			b.WriteByte(')')
		}
	}
}

func displayItems(b *strings.Builder, v *Value, open, close byte) {
	b.WriteByte(open)
	for i, child := range v.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		display(b, child)
	}
	b.WriteByte(close)
}

// formatFloat renders a float64 so that it always contains a decimal point
// (so re-parsing recognises it as Float, not Integer) and round-trips.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// TypeName returns one of the strings named in §4.1.
func TypeName(v *Value) string { return v.Kind.String() }
