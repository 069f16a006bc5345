package calcpro_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/calcpro"
	"github.com/zephyrtronium/calcpro/stdlib"
)

// near reports whether x is within a few ulps of want.
func near(x, want float64) bool {
	if x == want {
		return true
	}
	return math.Abs(x-want) <= 1e-12*math.Max(1, math.Abs(want))
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"add", "1+1", 2},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"altmul", "2x3", 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"divfrac", "10/4", 2.5},
		{"pow", "2^3^2", 512},
		{"altpow", "2**10", 1024},
		{"negpow", "-2^2", -4},
		{"powneg", "2^-1", 0.5},
		{"paren", "(1+2)*3", 9},
		{"plus", "+3", 3},
		{"negneg", "--3", 3},
		{"floordiv", "7//2", 3},
		{"floordivneg", "-7//2", -4},
		{"floordivfrac", "7.5//2", 3},
		{"floordivsmall", "-0.5//1", -1},
		{"mod", "7%3", 1},
		{"modneg", "-7%3", 2},
		{"modnegdiv", "7%-3", -2},
		{"modfrac", "5.5%2", 1.5},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"sqrt", "sqrt(16)", 4},
		{"cbrt", "cbrt(-8)", -2},
		{"abs", "abs(-3)", 3},
		{"ceil", "ceil(1.2)", 2},
		{"floor", "floor(-1.2)", -2},
		{"roundeven", "round(2.5)", 2},
		{"roundodd", "round(3.5)", 4},
		{"roundneg", "round(-2.5)", -2},
		{"powfn", "pow(2, 10)", 1024},
		{"factorial", "factorial(5)", 120},
		{"factorial0", "factorial(0)", 1},
		{"factorial20", "factorial(20)", 2432902008176640000},
		{"log", "log(e)", 1},
		{"log10", "log10(1000)", 3},
		{"log2", "log2(8)", 3},
		{"exp", "exp(0)", 1},
		{"exp1", "exp(1)", math.E},
		{"sin", "sin(0)", 0},
		{"cos", "cos(0)", 1},
		{"atan", "atan(1)", math.Pi / 4},
		{"sinh", "sinh(0)", 0},
		{"cosh", "cosh(0)", 1},
		{"tanh", "tanh(0)", 0},
		{"demo", "sin(pi/2) + cos(0)", 2},
		{"nested", "sqrt(pow(3, 2) + pow(4, 2))", 5},
		{"underflow", "10^-400", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcpro.Evaluate(c.src, stdlib.Scientific())
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if !near(r, c.r) {
				t.Errorf("%q: want %v, got %v", c.src, c.r, r)
			}
		})
	}
}

func TestEvalAngles(t *testing.T) {
	cases := []struct {
		src string
		deg float64
		rad float64
	}{
		{"sin(90)", 1, math.Sin(90)},
		{"cos(180)", -1, math.Cos(180)},
		{"tan(45)", 1, math.Tan(45)},
		{"asin(1)", 90, math.Pi / 2},
		{"acos(0)", 90, math.Pi / 2},
		{"atan(1)", 45, math.Pi / 4},
		{"sinh(1)", math.Sinh(1), math.Sinh(1)},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := calcpro.Evaluate(c.src, stdlib.Scientific(), calcpro.Angle(calcpro.Degrees))
			if err != nil {
				t.Fatalf("%q in degrees failed: %v", c.src, err)
			}
			if !near(r, c.deg) {
				t.Errorf("%q in degrees: want %v, got %v", c.src, c.deg, r)
			}
			r, err = calcpro.Evaluate(c.src, stdlib.Scientific(), calcpro.Angle(calcpro.Radians))
			if err != nil {
				t.Fatalf("%q in radians failed: %v", c.src, err)
			}
			if !near(r, c.rad) {
				t.Errorf("%q in radians: want %v, got %v", c.src, c.rad, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind calcpro.Kind
	}{
		{"char", "2 $ 3", calcpro.InvalidCharacter},
		{"python", "__import__('os')", calcpro.InvalidCharacter},
		{"attr", "pi.real", calcpro.Syntax},
		{"open", "(1", calcpro.UnbalancedParentheses},
		{"close", "1)", calcpro.UnbalancedParentheses},
		{"syntax", "1 +", calcpro.Syntax},
		{"juxt", "2 pi", calcpro.Syntax},
		{"symbol", "foo", calcpro.UnknownSymbol},
		{"funcname", "sqrt", calcpro.UnknownSymbol},
		{"func", "unknownfn(1)", calcpro.UnknownFunction},
		{"exit", "exit()", calcpro.UnknownFunction},
		{"constcall", "pi(1)", calcpro.UnknownFunction},
		{"arity2", "sqrt(1, 2)", calcpro.ArityMismatch},
		{"arity0", "sqrt()", calcpro.ArityMismatch},
		{"arity1", "pow(2)", calcpro.ArityMismatch},
		{"div", "10/0", calcpro.DivisionByZero},
		{"mod", "1%0", calcpro.DivisionByZero},
		{"floordiv", "1//0", calcpro.DivisionByZero},
		{"zeropow", "0^-1", calcpro.DivisionByZero},
		{"zeropowfn", "pow(0, -1)", calcpro.DivisionByZero},
		{"sqrt", "sqrt(-1)", calcpro.Domain},
		{"log0", "log(0)", calcpro.Domain},
		{"logneg", "log10(-1)", calcpro.Domain},
		{"asin", "asin(2)", calcpro.Domain},
		{"factorialneg", "factorial(-1)", calcpro.Domain},
		{"factorialfrac", "factorial(2.5)", calcpro.Domain},
		{"factorialbig", "factorial(171)", calcpro.Domain},
		{"rootneg", "(-8)^(1/3)", calcpro.Domain},
		{"powbig", "10^400", calcpro.Domain},
		{"expbig", "exp(1000)", calcpro.Domain},
		{"parens", strings.Repeat("(", 150) + "1" + strings.Repeat(")", 150), calcpro.TooComplex},
		{"chain", strings.Repeat("1+", 500) + "1", calcpro.TooComplex},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calcpro.Evaluate(c.src, stdlib.Scientific())
			if err == nil {
				t.Fatalf("%q evaluated to %v, want %v error", c.src, r, c.kind)
			}
			if k := calcpro.KindOf(err); k != c.kind {
				t.Errorf("%q: want %v error, got %v: %v", c.src, c.kind, k, err)
			}
		})
	}
}

func TestEvalErrorDetails(t *testing.T) {
	cases := []struct {
		src string
		err error
	}{
		{"foo", &calcpro.NameError{Name: "foo"}},
		{"sqrt + 1", &calcpro.NameError{Name: "sqrt", Func: true}},
		{"nope(1)", &calcpro.FuncError{Name: "nope"}},
		{"e(1)", &calcpro.FuncError{Name: "e", Const: true}},
		{"sqrt(1, 2)", &calcpro.CallError{Func: "sqrt", Want: 1, Got: 2}},
		{"pow(1)", &calcpro.CallError{Func: "pow", Want: 2, Got: 1}},
		{"1/0", &calcpro.DivisionError{Op: "/"}},
		{"1%0", &calcpro.DivisionError{Op: "%"}},
		{"1//0", &calcpro.DivisionError{Op: "//"}},
		{"0^-2", &calcpro.DivisionError{Op: "^"}},
		{"pow(0, -2)", &calcpro.DivisionError{Op: "pow"}},
		{"sqrt(-4)", &calcpro.DomainError{X: -4, Arg: 1, Func: "sqrt"}},
		{"(-8)^0.5", &calcpro.DomainError{X: -8, Arg: 1, Func: "^", Detail: "negative base with fractional exponent"}},
		{"pow(-8, 0.5)", &calcpro.DomainError{X: -8, Arg: 1, Func: "pow", Detail: "negative base with fractional exponent"}},
		{"2^2000", &calcpro.DomainError{X: 2000, Arg: 2, Func: "^", Detail: "result out of range"}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := calcpro.Evaluate(c.src, stdlib.Scientific())
			if !reflect.DeepEqual(err, c.err) {
				t.Errorf("%q: want %#v, got %#v", c.src, c.err, err)
			}
		})
	}
}

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"foo", `unknown symbol "foo"`},
		{"sqrt + 1", `"sqrt" is a function, not a constant`},
		{"nope(1)", `unknown function "nope"`},
		{"e(1)", `"e" is a constant, not a function`},
		{"sqrt(1, 2)", "sqrt takes 1 argument but was called with 2"},
		{"pow(1)", "pow takes 2 arguments but was called with 1"},
		{"1/0", "division by zero in /"},
		{"sqrt(-4)", "-4 outside domain of sqrt (argument 1)"},
	}
	for _, c := range cases {
		_, err := calcpro.Evaluate(c.src, stdlib.Scientific())
		if err == nil || err.Error() != c.msg {
			t.Errorf("%q: want error %q, got %v", c.src, c.msg, err)
		}
	}
}

// spy is a function that counts its calls.
type spy struct {
	mu    sync.Mutex
	calls int
}

func (s *spy) Call(env calcpro.Env, args []float64) (float64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return args[0], nil
}

func (s *spy) Arity() int {
	return 1
}

func TestValidateBeforeCall(t *testing.T) {
	s := new(spy)
	tab := calcpro.NewTable(map[string]float64{"one": 1}, map[string]calcpro.Func{"spy": s})
	cases := []struct {
		src  string
		kind calcpro.Kind
	}{
		{"spy(1) + nope", calcpro.UnknownSymbol},
		{"spy(1) + nope(1)", calcpro.UnknownFunction},
		{"spy(spy(1), 2)", calcpro.ArityMismatch},
		{"spy(1) + one(1)", calcpro.UnknownFunction},
	}
	for _, c := range cases {
		e, err := calcpro.Parse(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if err := calcpro.Validate(e, tab); calcpro.KindOf(err) != c.kind {
			t.Errorf("validating %q: want %v, got %v", c.src, c.kind, err)
		}
		if _, err := e.Eval(tab); calcpro.KindOf(err) != c.kind {
			t.Errorf("evaluating %q: want %v, got %v", c.src, c.kind, err)
		}
	}
	if s.calls != 0 {
		t.Errorf("function called %d times by invalid expressions", s.calls)
	}
	e, err := calcpro.Parse("spy(spy(one)) + spy(2)")
	if err != nil {
		t.Fatal(err)
	}
	if err := calcpro.Validate(e, tab); err != nil {
		t.Errorf("valid expression failed validation: %v", err)
	}
	if s.calls != 0 {
		t.Errorf("validation called functions %d times", s.calls)
	}
	if r, err := e.Eval(tab); err != nil || r != 3 {
		t.Errorf("want 3, got %v, %v", r, err)
	}
	if s.calls != 3 {
		t.Errorf("want 3 calls, got %d", s.calls)
	}
}

func TestValidateDepth(t *testing.T) {
	src := strings.Repeat("1+", 500) + "1"
	e, err := calcpro.Parse(src)
	if err != nil {
		t.Fatalf("long sum failed to parse: %v", err)
	}
	err = calcpro.Validate(e, stdlib.Basic())
	var d *calcpro.DepthError
	if !errors.As(err, &d) {
		t.Fatalf("want *DepthError, got %#v", err)
	}
	if d.Col != 0 || d.Limit != calcpro.DefaultMaxDepth {
		t.Errorf("wrong error details: %#v", d)
	}
	r, err := e.Eval(stdlib.Basic(), calcpro.MaxDepth(1000))
	if err != nil || r != 501 {
		t.Errorf("with larger limit: want 501, got %v, %v", r, err)
	}
}

func TestExprTables(t *testing.T) {
	e, err := calcpro.Parse("sin(0) + sqrt(4)")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Eval(stdlib.Basic()); calcpro.KindOf(err) != calcpro.UnknownFunction {
		t.Errorf("basic table: want UnknownFunction, got %v", err)
	}
	if r, err := e.Eval(stdlib.Scientific()); err != nil || r != 2 {
		t.Errorf("scientific table: want 2, got %v, %v", r, err)
	}
}

func TestEvalDeterministic(t *testing.T) {
	srcs := []string{"0.1+0.2", "sin(1)^2 + cos(1)^2", "factorial(17) / 3", "log(10) * exp(-3)", "-7.25 // 0.5 % 3"}
	for _, src := range srcs {
		a, errA := calcpro.Evaluate(src, stdlib.Scientific())
		b, errB := calcpro.Evaluate(src, stdlib.Scientific())
		if math.Float64bits(a) != math.Float64bits(b) || errA != nil || errB != nil {
			t.Errorf("%q evaluated to %v (%v) then %v (%v)", src, a, errA, b, errB)
		}
	}
}

func TestEvalCanonical(t *testing.T) {
	srcs := []string{
		strings.Repeat("-", 60) + "1",
		strings.Repeat("1^", 60) + "1",
		strings.Repeat("sqrt(", 99) + "1" + strings.Repeat(")", 99),
		"-2^2 + 7 // 2 x 3 - sin(pi/2) % 0.3",
	}
	for _, src := range srcs {
		e, err := calcpro.Parse(src)
		if err != nil {
			t.Errorf("%.20q... failed to parse: %v", src, err)
			continue
		}
		want, err := e.Eval(stdlib.Scientific())
		if err != nil {
			t.Errorf("%.20q... failed to evaluate: %v", src, err)
			continue
		}
		got, err := calcpro.Evaluate(e.String(), stdlib.Scientific())
		if err != nil || got != want {
			t.Errorf("canonical text of %.20q...: want %v, got %v, %v", src, want, got, err)
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	e, err := calcpro.Parse("pow(sin(theta), 2) + pow(cos(theta), 2) + factorial(5) / log10(1000)")
	if err != nil {
		t.Fatal(err)
	}
	tab := calcpro.NewTable(
		map[string]float64{"theta": 0.5},
		map[string]calcpro.Func{
			"sin":       calcpro.Monadic(math.Sin),
			"cos":       calcpro.Monadic(math.Cos),
			"pow":       calcpro.Dyadic(math.Pow),
			"log10":     calcpro.Monadic(math.Log10),
			"factorial": calcpro.Monadic(func(x float64) float64 { return math.Gamma(x + 1) }),
		},
	)
	want, err := e.Eval(tab)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r, err := e.Eval(tab)
				if err != nil {
					errs <- err
					return
				}
				if r != want {
					errs <- fmt.Errorf("want %v, got %v", want, r)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind calcpro.Kind
	}{
		{nil, calcpro.KindNone},
		{errors.New("other"), calcpro.KindNone},
		{&calcpro.CharError{Col: 1, Char: '$'}, calcpro.InvalidCharacter},
		{&calcpro.BracketError{Col: 1}, calcpro.UnbalancedParentheses},
		{&calcpro.SyntaxError{Col: 1}, calcpro.Syntax},
		{&calcpro.NameError{Name: "a"}, calcpro.UnknownSymbol},
		{&calcpro.FuncError{Name: "a"}, calcpro.UnknownFunction},
		{&calcpro.CallError{Func: "a"}, calcpro.ArityMismatch},
		{&calcpro.DepthError{Limit: 1}, calcpro.TooComplex},
		{&calcpro.DivisionError{}, calcpro.DivisionByZero},
		{&calcpro.DomainError{}, calcpro.Domain},
		{fmt.Errorf("wrapped: %w", &calcpro.DivisionError{}), calcpro.DivisionByZero},
	}
	for _, c := range cases {
		if k := calcpro.KindOf(c.err); k != c.kind {
			t.Errorf("KindOf(%#v): want %v, got %v", c.err, c.kind, k)
		}
	}
	if s := calcpro.DivisionByZero.String(); s != "DivisionByZero" {
		t.Errorf("wrong kind name %q", s)
	}
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"arith", "1 + 2 * 3 - 4 / 5"},
		{"pow", "2^3^2"},
		{"calls", "sqrt(16) + pow(2, 3) + abs(-1)"},
		{"trig", "sin(pi/2) + cos(0)"},
		{"log", "log10(100) + log(e)"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			e, err := calcpro.Parse(c.src)
			if err != nil {
				b.Fatal(err)
			}
			tab := stdlib.Scientific()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				e.Eval(tab)
			}
		})
	}
}
