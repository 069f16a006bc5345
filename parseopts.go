package calcpro

import "strconv"

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 100

// AngleMode selects the unit of angles for trigonometric functions.
type AngleMode int8

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	switch m {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Option is an option for parsing, validation, or evaluation. Each stage
// ignores options that do not concern it, so the same options may be passed
// to all of them.
type Option interface {
	option(*config)
}

// config holds the settings for a single parse or evaluation.
type config struct {
	// maxDepth is the nesting limit for parsing and validation.
	maxDepth int
	// env is passed to every function call.
	env Env
}

func newConfig(opts []Option) config {
	c := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&c)
	}
	return c
}

type (
	depthopt int
	angleopt AngleMode
)

// MaxDepth sets the nesting limit. Parsing and validation fail with a
// *DepthError for expressions nested more deeply. Panics if n is not
// positive.
func MaxDepth(n int) Option {
	if n <= 0 {
		panic("calcpro: MaxDepth " + strconv.Itoa(n) + " is not positive")
	}
	return depthopt(n)
}

func (o depthopt) option(c *config) {
	c.maxDepth = int(o)
}

// Angle sets the angle mode reported to functions.
func Angle(mode AngleMode) Option {
	return angleopt(mode)
}

func (o angleopt) option(c *config) {
	c.env.Angle = AngleMode(o)
}
