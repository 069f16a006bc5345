// Package shell implements the interactive calculator.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calcpro"
	"github.com/zephyrtronium/calcpro/stdlib"
)

// LineReader reads a line of input after showing a prompt. *liner.State
// satisfies it. Prompt returns io.EOF at the end of input.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historian is implemented by line readers that keep their own line history.
type historian interface {
	AppendHistory(item string)
}

// NewTerminal opens a line editor on the terminal. Ctrl-C aborts the prompt,
// which ends the session. The caller must close it.
func NewTerminal() *liner.State {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return ln
}

// Shell is an interactive calculator session.
type Shell struct {
	cfg  Config
	in   LineReader
	out  io.Writer
	pal  palette
	hist History
}

// New creates a session reading commands from in and writing to out.
func New(cfg Config, in LineReader, out io.Writer) *Shell {
	return &Shell{
		cfg: cfg,
		in:  in,
		out: out,
		pal: newPalette(cfg.Color, out),
	}
}

// Config returns the session's current settings.
func (s *Shell) Config() Config {
	return s.cfg
}

// History returns the session's calculation history, oldest first.
func (s *Shell) History() []string {
	return s.hist.Entries()
}

// Run shows the menu and handles commands until the user exits or input
// ends. The end of input and an aborted prompt end the session normally.
func (s *Shell) Run() error {
	s.banner()
	s.println(s.pal.green("# Calculator started successfully! All features available."))
	s.println(s.pal.yellow(fmt.Sprintf("# Current settings: Angle mode = %v, Scientific notation = %s", s.cfg.Angle, onoff(s.cfg.Scientific))))
	s.println("")
	for {
		line, err := s.prompt("Calculator> ")
		if err != nil {
			return s.stop(err)
		}
		if line == "" {
			continue
		}
		more, err := s.Handle(line)
		if err != nil {
			return s.stop(err)
		}
		if !more {
			return nil
		}
	}
}

// stop ends the session on a read error.
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		s.println("")
		s.println(s.pal.cyan("# Exiting Calculator. Goodbye! :)"))
		return nil
	}
	return err
}

var basicOps = map[string]calcpro.BinaryOp{
	"1": calcpro.Add,
	"2": calcpro.Sub,
	"3": calcpro.Mul,
	"4": calcpro.Div,
	"5": calcpro.Pow,
}

// Handle runs one menu command. Anything that is not a command is evaluated
// as an expression with the scientific table. The result is false if the
// command ends the session. Errors are only from reading input.
func (s *Shell) Handle(cmd string) (bool, error) {
	log.WithField("command", cmd).Trace("handling command")
	if op, ok := basicOps[cmd]; ok {
		return true, s.basic(op)
	}
	switch cmd {
	case "6":
		return true, s.basicMode()
	case "7":
		return true, s.exprMode()
	case "8":
		return true, s.sciMode()
	case "h":
		s.showHistory()
	case "c":
		s.hist.Clear()
		s.println(s.pal.green("# History cleared."))
	case "cl":
		s.print(ansiClear)
		s.banner()
	case "?":
		s.println(s.pal.green("=== AVAILABLE FUNCTIONS ==="))
		s.help(stdlib.Scientific())
	case "m":
		if s.cfg.Angle == calcpro.Radians {
			s.cfg.Angle = calcpro.Degrees
		} else {
			s.cfg.Angle = calcpro.Radians
		}
		s.println(s.pal.green("# Angle mode set to: ") + s.pal.yellow(s.cfg.Angle.String()))
	case "s":
		s.cfg.Scientific = !s.cfg.Scientific
		s.println(s.pal.green("# Scientific notation: ") + s.pal.yellow(onoff(s.cfg.Scientific)))
	case "demo":
		s.demo()
	case "x":
		s.println(s.pal.cyan("# Exiting Calculator. See you next time. Goodbye! :)"))
		return false, nil
	default:
		s.Evaluate(cmd, stdlib.Scientific())
	}
	return true, nil
}

// Evaluate evaluates an expression against t, prints the result or the error,
// and records successful calculations in the history.
func (s *Shell) Evaluate(src string, t *calcpro.Table) bool {
	r := Calculate(s.cfg, t, src)
	if r.Err != nil {
		s.fail(Message(r.Err))
		return false
	}
	s.println(s.pal.green("# Result: " + r.Display))
	s.hist.Add(r.Expr, r.Display)
	return true
}

// basic applies op to two numbers read from the user.
func (s *Shell) basic(op calcpro.BinaryOp) error {
	a, b, ok, err := s.operands()
	if err != nil {
		return err
	}
	if !ok {
		s.fail("Invalid input. Please enter numeric values!")
		return nil
	}
	expr := Format(a, false) + " " + op.String() + " " + Format(b, false)
	v, err := calcpro.Apply(op, a, b)
	if err != nil {
		log.WithFields(log.Fields{
			"expr":  expr,
			"error": err,
			"kind":  calcpro.KindOf(err),
		}).Debug("evaluation failed")
		s.fail(Message(err))
		return nil
	}
	log.WithFields(log.Fields{"expr": expr, "result": v}).Debug("evaluated")
	d := Format(v, s.cfg.Scientific)
	s.println(s.pal.green("# Result: " + expr + " = " + d))
	s.hist.Add(expr, d)
	return nil
}

// operands reads two numbers. ok is false if either is not a number.
func (s *Shell) operands() (a, b float64, ok bool, err error) {
	x, err := s.prompt("# Enter First Number: ")
	if err != nil {
		return 0, 0, false, err
	}
	y, err := s.prompt("# Enter Second Number: ")
	if err != nil {
		return 0, 0, false, err
	}
	a, erra := strconv.ParseFloat(x, 64)
	b, errb := strconv.ParseFloat(y, 64)
	if erra != nil || errb != nil {
		return 0, 0, false, nil
	}
	return a, b, true, nil
}

func (s *Shell) basicMode() error {
	s.println(s.pal.cyan("=== BASIC CALCULATOR MODE ==="))
	s.println("# Select operation: [1]+ [2]- [3]* [4]/ [5]^ [back] Return :")
	for {
		cmd, err := s.prompt("# Basic: ")
		if err != nil {
			return err
		}
		if cmd == "back" {
			return nil
		}
		op, ok := basicOps[cmd]
		if !ok {
			s.fail("Invalid option. Use 1-5 or 'back'")
			continue
		}
		if err := s.basic(op); err != nil {
			return err
		}
	}
}

func (s *Shell) exprMode() error {
	s.println(s.pal.cyan("=== EXPRESSION CALCULATOR MODE ==="))
	s.println("# Enter mathematical expressions (type 'back' to return):")
	for {
		expr, err := s.prompt("Expression>> ")
		if err != nil {
			return err
		}
		if strings.EqualFold(expr, "back") {
			return nil
		}
		s.Evaluate(expr, stdlib.Basic())
	}
}

func (s *Shell) sciMode() error {
	s.println(s.pal.cyan("=== SCIENTIFIC CALCULATOR MODE ==="))
	s.println("# Advanced functions available. Type '?' for help or 'back' to return:")
	for {
		expr, err := s.prompt("Scientific>>> ")
		if err != nil {
			return err
		}
		switch {
		case strings.EqualFold(expr, "back"):
			return nil
		case expr == "?":
			s.println(s.pal.green("# Scientific Functions:"))
			s.help(stdlib.Scientific())
		default:
			s.Evaluate(expr, stdlib.Scientific())
		}
	}
}

func (s *Shell) showHistory() {
	h := s.hist.Entries()
	if len(h) == 0 {
		s.println(s.pal.yellow("# No calculation history yet."))
		return
	}
	s.println(s.pal.green("=== CALCULATION HISTORY ==="))
	for i, e := range h {
		s.println(s.pal.cyan(fmt.Sprintf("%2d. %s", i+1, e)))
	}
}

// help lists the symbols of t and the operators.
func (s *Shell) help(t *calcpro.Table) {
	for _, name := range t.Names() {
		if d := stdlib.Describe(name); d != "" {
			s.println(s.pal.cyan("- " + d))
		}
	}
	for _, op := range stdlib.Operators {
		s.println(s.pal.cyan("- " + op))
	}
}

func (s *Shell) demo() {
	trig := "sin(pi/2) + cos(0)"
	if s.cfg.Angle == calcpro.Degrees {
		trig = "sin(90) + cos(0)"
	}
	exprs := []string{
		"2 + 3 * 4",
		"sqrt(16) + 2^3",
		trig,
		"log10(100) + log(e)",
		"factorial(5) / 10",
		"pi * 2",
	}
	s.println(s.pal.cyan("=== CALCULATOR DEMO MODE ==="))
	for _, expr := range exprs {
		s.println(s.pal.yellow("# Demo: " + expr))
		s.Evaluate(expr, stdlib.Scientific())
		s.println("")
	}
}

func (s *Shell) banner() {
	s.println(s.pal.cyan("=== CALCPRO ==="))
	s.println(s.pal.blue("# OPERATION MODES:"))
	s.println(s.pal.cyan("[1] Addition [2] Subtraction [3] Multiplication [4] Division [5] Exponentiation"))
	s.println(s.pal.cyan("[6] Basic Mode [7] Expression Mode [8] Scientific Mode"))
	s.println(s.pal.blue("# ADVANCED OPTIONS:"))
	s.println(s.pal.cyan("[h] History [c] Clear History [?] Help/Functions [m] Toggle Deg/Rad [s] Sci-Notation"))
	s.println(s.pal.cyan("[cl] Clear Screen [demo] Demo Mode [x] Exit"))
	s.println(s.pal.green("# Expression Examples:") + " 3+5*2, 2^3, sqrt(16), sin(90), log(100), pi*2")
	s.println(s.pal.green("Enter expressions directly or use numbered options above"))
}

// prompt reads one line of input without surrounding space and adds nonempty
// lines to the reader's line history.
func (s *Shell) prompt(p string) (string, error) {
	line, err := s.in.Prompt(p)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if h, ok := s.in.(historian); ok && line != "" {
		h.AppendHistory(line)
	}
	return line, nil
}

func (s *Shell) fail(msg string) {
	s.println(s.pal.red("# Error: " + msg))
}

func (s *Shell) print(text string) {
	io.WriteString(s.out, text)
}

func (s *Shell) println(text string) {
	io.WriteString(s.out, text+"\n")
}

func onoff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
