package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// evalSrc parses source as a sequence of top-level forms and evaluates each
// in order against a fresh global environment, returning the result of the
// last form.
func evalSrc(t *testing.T, src string) *Value {
	t.Helper()
	top, err := Parse(src)
	require.NoError(t, err)
	env := NewGlobalEnvironment()
	var last *Value = NewExpression()
	for top.Len() > 0 {
		form := top.Pop(0)
		last = Eval(env, form)
	}
	return last
}

func TestEvalLiteralsAreIdempotent(t *testing.T) {
	for _, src := range []string{"42", "3.5", `"hi"`, "{1 2}"} {
		v := evalSrc(t, src)
		require.Equal(t, v.Kind, Eval(NewGlobalEnvironment(), v).Kind)
	}
}

func TestEvalEmptyExpression(t *testing.T) {
	v := evalSrc(t, "()")
	require.Equal(t, KindExpression, v.Kind)
	require.Equal(t, 0, v.Len())
}

func TestEvalSymbolResolutionAfterDef(t *testing.T) {
	v := evalSrc(t, "(def {x} 10) x")
	require.Equal(t, int64(10), v.Int)
}

func TestEvalErrorAbsorptionInExpression(t *testing.T) {
	v := evalSrc(t, "(+ 1 (error \"boom\"))")
	require.Equal(t, KindError, v.Kind)
	require.Equal(t, "boom", v.Str)
}

func TestEvalExpressionMustStartWithFunction(t *testing.T) {
	v := evalSrc(t, "(1 2 3)")
	require.Equal(t, KindError, v.Kind)
	require.Contains(t, v.Str, "Expression must start with a Function")
}

func TestEvalArithmeticWidening(t *testing.T) {
	sum := evalSrc(t, "(+ 1 2)")
	require.Equal(t, KindInteger, sum.Kind)
	require.Equal(t, int64(3), sum.Int)

	widened := evalSrc(t, "(+ 1 2.0)")
	require.Equal(t, KindFloat, widened.Kind)
	require.Equal(t, 3.0, widened.Flt)
}

func TestEvalPlusHeadTail(t *testing.T) {
	require.Equal(t, int64(6), evalSrc(t, "(+ 1 2 3)").Int)

	head := evalSrc(t, "(head {1 2 3})")
	require.Equal(t, int64(1), head.Int)

	tail := evalSrc(t, "(tail {1 2 3})")
	require.Equal(t, KindList, tail.Kind)
	require.Equal(t, []int64{2, 3}, ints(tail))
}

func TestEvalIfBranches(t *testing.T) {
	v := evalSrc(t, "(if (> 3 2) {+ 10 1} {+ 10 2})")
	require.Equal(t, int64(11), v.Int)
}

func TestEvalDefFunCall(t *testing.T) {
	v := evalSrc(t, "(def {sq} (fun {x} {* x x})) (sq 5)")
	require.Equal(t, KindInteger, v.Kind)
	require.Equal(t, int64(25), v.Int)
}

func TestEvalEvalOnQuotedExpression(t *testing.T) {
	v := evalSrc(t, "(eval (head {{+ 1 2} {+ 3 4}}))")
	require.Equal(t, int64(3), v.Int)
}

func TestEvalDivisionByZero(t *testing.T) {
	v := evalSrc(t, "(/ 1 0)")
	require.Equal(t, KindError, v.Kind)
	require.Equal(t, "Division By Zero.", v.Str)
}

func TestEvalVariadicBinding(t *testing.T) {
	zero := evalSrc(t, "(def {pack} (fun {& xs} {xs})) (pack)")
	require.Equal(t, KindList, zero.Kind)
	require.Equal(t, 0, zero.Len())

	three := evalSrc(t, "(def {pack} (fun {& xs} {xs})) (pack 1 2 3)")
	require.Equal(t, KindList, three.Kind)
	require.Equal(t, []int64{1, 2, 3}, ints(three))
}

func TestEvalPartialApplication(t *testing.T) {
	v := evalSrc(t, "(def {add} (fun {a b} {+ a b})) ((add 2) 3)")
	require.Equal(t, int64(5), v.Int)
}

func TestEvalPartialApplicationIsAFunction(t *testing.T) {
	v := evalSrc(t, "(def {add} (fun {a b} {+ a b})) (add 2)")
	require.Equal(t, KindFunction, v.Kind)
}

func TestEvalReservedNameProtection(t *testing.T) {
	v := evalSrc(t, "(def {+} 1)")
	require.Equal(t, KindError, v.Kind)

	stillWorks := evalSrc(t, "(+ 1 1)")
	require.Equal(t, int64(2), stillWorks.Int)
}

func TestEvalShadowingViaLocalFunctionBinding(t *testing.T) {
	v := evalSrc(t, "(def {x} 1) (def {f} (fun {x} {x})) (list (f 2) x)")
	require.Equal(t, KindList, v.Kind)
	require.Equal(t, []int64{2, 1}, ints(v))
}

func ints(v *Value) []int64 {
	out := make([]int64, len(v.Items))
	for i, item := range v.Items {
		out[i] = item.Int
	}
	return out
}
