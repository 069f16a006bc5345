package calcpro

import (
	"math"
	"strconv"
)

// Validate checks that every name in e refers to a constant or a function of
// the right arity in t and that e is nested no more deeply than the MaxDepth
// option allows. Validate never calls any function in t.
func Validate(e *Expr, t *Table, opts ...Option) error {
	cfg := newConfig(opts)
	return validate(e.n, t, 1, cfg.maxDepth)
}

func validate(n Node, t *Table, d, max int) error {
	if d > max {
		return &DepthError{Limit: max}
	}
	switch n := n.(type) {
	case *Num:
		return nil
	case *Ident:
		if _, ok := t.Const(n.Name); !ok {
			_, isfn := t.Func(n.Name)
			return &NameError{Name: n.Name, Func: isfn}
		}
		return nil
	case *Unary:
		return validate(n.X, t, d+1, max)
	case *Binary:
		if err := validate(n.L, t, d+1, max); err != nil {
			return err
		}
		return validate(n.R, t, d+1, max)
	case *Call:
		f, ok := t.Func(n.Name)
		if !ok {
			_, isconst := t.Const(n.Name)
			return &FuncError{Name: n.Name, Const: isconst}
		}
		if f.Arity() != len(n.Args) {
			return &CallError{Func: n.Name, Want: f.Arity(), Got: len(n.Args)}
		}
		for _, arg := range n.Args {
			if err := validate(arg, t, d+1, max); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("calcpro: invalid node type")
	}
}

// Eval validates the expression against t and, if it is valid, evaluates it.
// Relevant options are MaxDepth and Angle.
func (e *Expr) Eval(t *Table, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	if err := validate(e.n, t, 1, cfg.maxDepth); err != nil {
		return 0, err
	}
	ev := evaluator{table: t, env: cfg.env}
	return ev.eval(e.n)
}

// Evaluate parses, validates, and evaluates an expression.
func Evaluate(src string, t *Table, opts ...Option) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval(t, opts...)
}

// evaluator holds the state of a single evaluation.
type evaluator struct {
	table *Table
	env   Env
	// stack holds evaluated function arguments.
	stack []float64
}

// eval reduces a validated node to its value.
func (ev *evaluator) eval(n Node) (float64, error) {
	switch n := n.(type) {
	case *Num:
		return n.Value, nil
	case *Ident:
		v, _ := ev.table.Const(n.Name)
		return v, nil
	case *Unary:
		x, err := ev.eval(n.X)
		if err != nil {
			return 0, err
		}
		if n.Op == Neg {
			return -x, nil
		}
		return x, nil
	case *Binary:
		l, err := ev.eval(n.L)
		if err != nil {
			return 0, err
		}
		r, err := ev.eval(n.R)
		if err != nil {
			return 0, err
		}
		return Apply(n.Op, l, r)
	case *Call:
		f, _ := ev.table.Func(n.Name)
		k := len(ev.stack)
		for _, arg := range n.Args {
			v, err := ev.eval(arg)
			if err != nil {
				return 0, err
			}
			ev.stack = append(ev.stack, v)
		}
		invoc := ev.stack[k:len(ev.stack):len(ev.stack)]
		r, err := f.Call(ev.env, invoc)
		ev.stack = ev.stack[:k]
		if err != nil {
			return 0, callerr(n.Name, err)
		}
		return r, nil
	default:
		panic("calcpro: invalid node type")
	}
}

// callerr attributes an error returned by a function to that function.
func callerr(name string, err error) error {
	switch e := err.(type) {
	case *DomainError:
		if e.Func == "" {
			c := *e
			c.Func = name
			return &c
		}
		return e
	case *DivisionError:
		if e.Op == "" {
			return &DivisionError{Op: name}
		}
		return e
	}
	if KindOf(err) != KindNone {
		return err
	}
	return &DomainError{X: math.NaN(), Func: name, Err: err}
}

// Apply applies a binary operator to two values with the same semantics as
// evaluation.
func Apply(op BinaryOp, l, r float64) (float64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, &DivisionError{Op: "/"}
		}
		return l / r, nil
	case Mod:
		if r == 0 {
			return 0, &DivisionError{Op: "%"}
		}
		_, m := divmod(l, r)
		return m, nil
	case FloorDiv:
		if r == 0 {
			return 0, &DivisionError{Op: "//"}
		}
		q, _ := divmod(l, r)
		return q, nil
	case Pow:
		return Power(l, r)
	default:
		panic("calcpro: invalid binary operator " + op.String())
	}
}

// divmod computes the floored quotient and the modulus of x and y, so that
// the modulus has the sign of y and q*y + m is approximately x. y must be
// nonzero.
func divmod(x, y float64) (q, m float64) {
	m = math.Mod(x, y)
	div := (x - m) / y
	if m != 0 {
		if (y < 0) != (m < 0) {
			m += y
			div--
		}
	} else {
		m = math.Copysign(0, y)
	}
	if div != 0 {
		q = math.Floor(div)
		if div-q > 0.5 {
			q++
		}
	} else {
		q = math.Copysign(0, x/y)
	}
	return q, m
}

// Power computes x^y over the reals. Zero to a negative power is a
// *DivisionError. A negative base with a non-integer exponent, or an infinite
// result from finite operands, is a *DomainError.
func Power(x, y float64) (float64, error) {
	if x == 0 && y < 0 {
		return 0, &DivisionError{Op: "^"}
	}
	if x < 0 && finite(y) && y != math.Trunc(y) {
		return 0, &DomainError{X: x, Arg: 1, Func: "^", Detail: "negative base with fractional exponent"}
	}
	r := math.Pow(x, y)
	if !finite(r) && finite(x) && finite(y) {
		return 0, &DomainError{X: y, Arg: 2, Func: "^", Detail: "result out of range"}
	}
	return r, nil
}

// NameError is an error from a reference to a name that is not a constant in
// the table.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Func is true if the name is a function in the table.
	Func bool
}

func (err *NameError) Error() string {
	if err.Func {
		return strconv.Quote(err.Name) + " is a function, not a constant"
	}
	return "unknown symbol " + strconv.Quote(err.Name)
}

func (err *NameError) Kind() Kind {
	return UnknownSymbol
}

// FuncError is an error from a call of a name that is not a function in the
// table.
type FuncError struct {
	// Name is the function name.
	Name string
	// Const is true if the name is a constant in the table.
	Const bool
}

func (err *FuncError) Error() string {
	if err.Const {
		return strconv.Quote(err.Name) + " is a constant, not a function"
	}
	return "unknown function " + strconv.Quote(err.Name)
}

func (err *FuncError) Kind() Kind {
	return UnknownFunction
}

// CallError is an error indicating a function call with the wrong number of
// arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Want is the arity of the function.
	Want int
	// Got is the number of arguments in the call.
	Got int
}

func (err *CallError) Error() string {
	return err.Func + " takes " + strconv.Itoa(err.Want) + " argument" + plural(err.Want) +
		" but was called with " + strconv.Itoa(err.Got)
}

func (err *CallError) Kind() Kind {
	return ArityMismatch
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// DivisionError is an error indicating division by zero.
type DivisionError struct {
	// Op is the operator or function that divided.
	Op string
}

func (err *DivisionError) Error() string {
	if err.Op == "" {
		return "division by zero"
	}
	return "division by zero in " + err.Op
}

func (err *DivisionError) Kind() Kind {
	return DivisionByZero
}
