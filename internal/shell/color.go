package shell

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiGreen  = "\033[92m"
	ansiRed    = "\033[91m"
	ansiBlue   = "\033[94m"
	ansiYellow = "\033[93m"
	ansiCyan   = "\033[96m"
	ansiReset  = "\033[0m"
	ansiClear  = "\033[H\033[2J"
)

// palette colors output text when enabled.
type palette struct {
	on bool
}

// newPalette decides whether to color output written to out.
func newPalette(mode string, out io.Writer) palette {
	switch mode {
	case ColorAlways:
		return palette{on: true}
	case ColorNever:
		return palette{}
	}
	f, ok := out.(*os.File)
	return palette{on: ok && term.IsTerminal(int(f.Fd()))}
}

func (p palette) wrap(code, s string) string {
	if !p.on {
		return s
	}
	return code + s + ansiReset
}

func (p palette) green(s string) string  { return p.wrap(ansiGreen, s) }
func (p palette) red(s string) string    { return p.wrap(ansiRed, s) }
func (p palette) blue(s string) string   { return p.wrap(ansiBlue, s) }
func (p palette) yellow(s string) string { return p.wrap(ansiYellow, s) }
func (p palette) cyan(s string) string   { return p.wrap(ansiCyan, s) }
