package shell

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calcpro"
)

// Result is the outcome of evaluating one expression.
type Result struct {
	// Expr is the expression as entered, without surrounding space.
	Expr string
	// Canonical is the fully parenthesized form of the parsed expression. It
	// is empty if parsing failed.
	Canonical string
	// Value is the result of evaluation.
	Value float64
	// Display is Value formatted for the configuration.
	Display string
	// Err is the parse, validation, or evaluation error, if any.
	Err error
}

// Calculate parses and evaluates src against t with the settings in cfg.
func Calculate(cfg Config, t *calcpro.Table, src string) Result {
	r := Result{Expr: strings.TrimSpace(src)}
	opts := cfg.Options()
	e, err := calcpro.Parse(r.Expr, opts...)
	if err != nil {
		r.Err = err
		logResult(r)
		return r
	}
	r.Canonical = e.String()
	r.Value, r.Err = e.Eval(t, opts...)
	if r.Err == nil {
		r.Display = Format(r.Value, cfg.Scientific)
	}
	logResult(r)
	return r
}

func logResult(r Result) {
	if r.Err != nil {
		log.WithFields(log.Fields{
			"expr":  r.Expr,
			"error": r.Err,
			"kind":  calcpro.KindOf(r.Err),
		}).Debug("evaluation failed")
		return
	}
	log.WithFields(log.Fields{
		"expr":      r.Expr,
		"canonical": r.Canonical,
		"result":    r.Value,
	}).Debug("evaluated")
}
