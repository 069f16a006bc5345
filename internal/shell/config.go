package shell

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/zephyrtronium/calcpro"
	"github.com/zephyrtronium/calcpro/stdlib"
)

// Configuration keys.
const (
	KeyAngle      = "angle"
	KeyScientific = "scientific"
	KeyMaxDepth   = "maxdepth"
	KeyColor      = "color"
	KeyMode       = "mode"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Table modes.
const (
	ModeScientific = "scientific"
	ModeBasic      = "basic"
)

// Config holds the settings of the calculator.
type Config struct {
	// Angle is the unit for trigonometric functions.
	Angle calcpro.AngleMode
	// Scientific selects scientific notation for results.
	Scientific bool
	// MaxDepth is the nesting limit for expressions.
	MaxDepth int
	// Color is one of ColorAuto, ColorAlways, or ColorNever.
	Color string
	// Mode is the table for one-shot evaluation, ModeScientific or ModeBasic.
	Mode string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Angle:    calcpro.Radians,
		MaxDepth: calcpro.DefaultMaxDepth,
		Color:    ColorAuto,
		Mode:     ModeScientific,
	}
}

// SetDefaults registers the default configuration with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyAngle, d.Angle.String())
	v.SetDefault(KeyScientific, d.Scientific)
	v.SetDefault(KeyMaxDepth, d.MaxDepth)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyMode, d.Mode)
}

// LoadConfig reads the configuration from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	c := Config{
		Scientific: v.GetBool(KeyScientific),
		MaxDepth:   v.GetInt(KeyMaxDepth),
		Color:      strings.ToLower(v.GetString(KeyColor)),
		Mode:       strings.ToLower(v.GetString(KeyMode)),
	}
	switch a := strings.ToLower(v.GetString(KeyAngle)); a {
	case "radians", "rad":
		c.Angle = calcpro.Radians
	case "degrees", "deg":
		c.Angle = calcpro.Degrees
	default:
		return Config{}, fmt.Errorf("invalid %s %q (want radians or degrees)", KeyAngle, a)
	}
	if c.MaxDepth <= 0 {
		return Config{}, fmt.Errorf("invalid %s %d (must be positive)", KeyMaxDepth, c.MaxDepth)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("invalid %s %q (want auto, always, or never)", KeyColor, c.Color)
	}
	switch c.Mode {
	case ModeScientific, ModeBasic:
	default:
		return Config{}, fmt.Errorf("invalid %s %q (want scientific or basic)", KeyMode, c.Mode)
	}
	return c, nil
}

// Options returns the evaluation options for the configuration. A MaxDepth
// that is not positive means calcpro.DefaultMaxDepth.
func (c Config) Options() []calcpro.Option {
	depth := c.MaxDepth
	if depth <= 0 {
		depth = calcpro.DefaultMaxDepth
	}
	return []calcpro.Option{calcpro.MaxDepth(depth), calcpro.Angle(c.Angle)}
}

// Table returns the symbol table selected by the configuration's mode.
func (c Config) Table() *calcpro.Table {
	if c.Mode == ModeBasic {
		return stdlib.Basic()
	}
	return stdlib.Scientific()
}
