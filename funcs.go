package calcpro

import (
	"math"
	"sort"
	"strconv"
	"unicode"
)

// Env is the host state visible to functions during one evaluation.
type Env struct {
	// Angle is the unit in which trigonometric functions should interpret
	// angles.
	Angle AngleMode
}

// Func is a function from reals to reals. A Func is a capability granted to
// expressions by including it in a Table; expressions can call nothing else.
type Func interface {
	// Call evaluates the function. len(args) is always Arity(). Call must
	// not retain or modify args. It should return a *DomainError for
	// arguments outside the function's domain.
	Call(env Env, args []float64) (float64, error)

	// Arity returns the number of arguments the function takes, at least 1.
	Arity() int
}

type envfunc struct {
	n int
	f func(env Env, args []float64) (float64, error)
}

func (fn envfunc) Call(env Env, args []float64) (float64, error) {
	return fn.f(env, args)
}

func (fn envfunc) Arity() int {
	return fn.n
}

// NewFunc wraps a function of arity arguments which uses the evaluation
// environment into a Func. Panics if arity is less than 1.
func NewFunc(arity int, f func(env Env, args []float64) (float64, error)) Func {
	if arity < 1 {
		panic("calcpro: invalid arity " + strconv.Itoa(arity))
	}
	return envfunc{n: arity, f: f}
}

type monadic struct {
	f func(x float64) float64
}

func (m monadic) Call(env Env, args []float64) (float64, error) {
	x := args[0]
	r := m.f(x)
	if OutOfDomain(r, x) {
		return 0, &DomainError{X: x, Arg: 1}
	}
	return r, nil
}

func (m monadic) Arity() int {
	return 1
}

// Monadic wraps a function of one variable into a Func. If f's result is out
// of domain according to OutOfDomain, the call fails with a *DomainError.
func Monadic(f func(x float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(x, y float64) float64
}

func (d dyadic) Call(env Env, args []float64) (float64, error) {
	x, y := args[0], args[1]
	r := d.f(x, y)
	if OutOfDomain(r, x, y) {
		return 0, &DomainError{X: x}
	}
	return r, nil
}

func (d dyadic) Arity() int {
	return 2
}

// Dyadic wraps a function of two variables into a Func. If f's result is out
// of domain according to OutOfDomain, the call fails with a *DomainError.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic{f}
}

// OutOfDomain reports whether r, the result of a function applied to args,
// indicates that the arguments were outside the function's domain: r is NaN
// although no argument is, or r is infinite although every argument is
// finite.
func OutOfDomain(r float64, args ...float64) bool {
	switch {
	case math.IsNaN(r):
		for _, x := range args {
			if math.IsNaN(x) {
				return false
			}
		}
		return true
	case math.IsInf(r, 0):
		for _, x := range args {
			if !finite(x) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Table is the set of names an expression may use: constants and functions.
// A Table is immutable once created and is safe to share between goroutines.
type Table struct {
	consts map[string]float64
	funcs  map[string]Func
}

// NewTable creates a table from constants and functions. The maps are copied.
// Panics if a name is not a letter followed by letters and digits, if a name
// is both a constant and a function, or if a function is nil.
func NewTable(consts map[string]float64, funcs map[string]Func) *Table {
	t := Table{
		consts: make(map[string]float64, len(consts)),
		funcs:  make(map[string]Func, len(funcs)),
	}
	for k, v := range consts {
		checkname(k)
		t.consts[k] = v
	}
	for k, f := range funcs {
		checkname(k)
		if f == nil {
			panic("calcpro: nil function " + strconv.Quote(k))
		}
		if _, ok := t.consts[k]; ok {
			panic("calcpro: " + strconv.Quote(k) + " is both a constant and a function")
		}
		t.funcs[k] = f
	}
	return &t
}

func checkname(name string) {
	for i, r := range name {
		if unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		panic("calcpro: invalid name " + strconv.Quote(name))
	}
	if name == "" {
		panic("calcpro: empty name")
	}
}

// Const returns the value of a constant.
func (t *Table) Const(name string) (float64, bool) {
	v, ok := t.consts[name]
	return v, ok
}

// Func returns a function.
func (t *Table) Func(name string) (Func, bool) {
	f, ok := t.funcs[name]
	return f, ok
}

// Names returns the names of all constants and functions in sorted order.
func (t *Table) Names() []string {
	r := make([]string, 0, len(t.consts)+len(t.funcs))
	for k := range t.consts {
		r = append(r, k)
	}
	for k := range t.funcs {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its real-valued domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument, or 0 if unknown.
	Arg int
	// Func is a name identifying the function or operator.
	Func string
	// Detail optionally describes the problem.
	Detail string
	// Err is the underlying error, if the function returned an error from
	// outside this package.
	Err error
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	if err.Detail != "" {
		r += ": " + err.Detail
	}
	if err.Err != nil {
		r += ": " + err.Err.Error()
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

func (err *DomainError) Kind() Kind {
	return Domain
}
