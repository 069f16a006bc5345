package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calcpro/stdlib"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "list the constants, functions, and operators available to expressions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, name := range cfg.Table().Names() {
			fmt.Fprintln(w, "- "+stdlib.Describe(name))
		}
		for _, op := range stdlib.Operators {
			fmt.Fprintln(w, "- "+op)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
