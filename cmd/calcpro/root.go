package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/calcpro"
	"github.com/zephyrtronium/calcpro/internal/shell"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calcpro",
	Short: "A calculator for arithmetic expressions.",
	Long: `A calculator for arithmetic expressions with an interactive shell.
Expressions may use numbers, the operators + - * x / // % ^ **, parentheses,
and the constants and functions listed by "calcpro functions". Nothing else
is ever evaluated.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		readConfig()
		return nil
	},
	RunE:         runRepl,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.calcpro.yaml)")
	pf.BoolP("verbose", "v", false, "increase logging verbosity")
	pf.String("angle", "radians", "angle unit of trigonometric functions, radians or degrees")
	pf.Bool("sci", false, "show results in scientific notation")
	pf.Int("max-depth", calcpro.DefaultMaxDepth, "maximum nesting depth of expressions")
	pf.String("color", shell.ColorAuto, "color output: auto, always, or never")
	pf.String("mode", shell.ModeScientific, "function table for eval, scientific or basic")
	bind(shell.KeyAngle, "angle")
	bind(shell.KeyScientific, "sci")
	bind(shell.KeyMaxDepth, "max-depth")
	bind(shell.KeyColor, "color")
	bind(shell.KeyMode, "mode")
}

func bind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// readConfig loads the config file and environment into viper. A missing
// default config file is not an error.
func readConfig() {
	viper.SetEnvPrefix("calcpro")
	viper.AutomaticEnv()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".calcpro")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.WithError(err).Warn("reading config")
		}
		return
	}
	log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
}

// loadConfig resolves the settings from flags, environment, and config file.
func loadConfig() (shell.Config, error) {
	cfg, err := shell.LoadConfig(viper.GetViper())
	if err != nil {
		return shell.Config{}, fmt.Errorf("configuration: %w", err)
	}
	log.WithFields(log.Fields{
		"angle":      cfg.Angle,
		"scientific": cfg.Scientific,
		"maxdepth":   cfg.MaxDepth,
		"mode":       cfg.Mode,
	}).Debug("loaded configuration")
	return cfg, nil
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}
