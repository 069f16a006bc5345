package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calcpro"
	"github.com/zephyrtronium/calcpro/internal/shell"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression...]",
	Short: "evaluate expressions and print their results.",
	Long: `Evaluate each argument as an expression and print its result. With --in,
expressions are also read one per line from a file, or from stdin for "-".
Stdin is read when there are no arguments. The command fails if any
expression fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		srcs, err := evalInputs(getString(cmd, "in"), args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if len(srcs) == 0 {
			return errors.New("no expressions to evaluate")
		}
		f := evalFormat{json: getFlag(cmd, "json"), echo: getFlag(cmd, "echo")}
		failed, err := evalAll(cmd.OutOrStdout(), cfg, srcs, f)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().String("in", "", `file of expressions, one per line ("-" for stdin)`)
	evalCmd.Flags().Bool("json", false, "print one JSON object per expression")
	evalCmd.Flags().Bool("echo", false, "print the parsed form of each expression")
	rootCmd.AddCommand(evalCmd)
}

// evalFormat selects the output of evalAll.
type evalFormat struct {
	json bool
	echo bool
}

// evalRecord is the JSON form of one evaluation.
type evalRecord struct {
	Expr      string   `json:"expr"`
	Canonical string   `json:"canonical,omitempty"`
	Result    *float64 `json:"result,omitempty"`
	Display   string   `json:"display,omitempty"`
	Error     string   `json:"error,omitempty"`
	Kind      string   `json:"kind,omitempty"`
}

// evalAll evaluates each expression with the table of cfg and writes the
// results to w. It returns the number of expressions that failed. Errors are
// only from writing.
func evalAll(w io.Writer, cfg shell.Config, srcs []string, f evalFormat) (int, error) {
	t := cfg.Table()
	enc := json.NewEncoder(w)
	failed := 0
	for _, src := range srcs {
		r := shell.Calculate(cfg, t, src)
		if r.Err != nil {
			failed++
		}
		var err error
		switch {
		case f.json:
			err = enc.Encode(record(r))
		case r.Err != nil:
			_, err = fmt.Fprintf(w, "%s: error: %s\n", r.Expr, shell.Message(r.Err))
		case f.echo:
			_, err = fmt.Fprintf(w, "%s : %s\n", r.Canonical, r.Display)
		default:
			_, err = fmt.Fprintln(w, r.Display)
		}
		if err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func record(r shell.Result) evalRecord {
	rec := evalRecord{Expr: r.Expr, Canonical: r.Canonical}
	if r.Err != nil {
		rec.Error = r.Err.Error()
		rec.Kind = calcpro.KindOf(r.Err).String()
		return rec
	}
	rec.Display = r.Display
	if !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
		v := r.Value
		rec.Result = &v
	}
	return rec
}

// evalInputs collects the expressions to evaluate. Blank lines in the input
// file are skipped.
func evalInputs(inname string, args []string, stdin io.Reader) ([]string, error) {
	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	case inname == "-", len(args) == 0:
		in = stdin
	}
	var srcs []string
	if in != nil {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				srcs = append(srcs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	return append(srcs, args...), nil
}
