package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calcpro/internal/shell"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start the interactive calculator.",
	Long: `Start the interactive calculator. Line history is kept for the session
only and is never written to disk.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ln := shell.NewTerminal()
	defer ln.Close()
	return shell.New(cfg, ln, os.Stdout).Run()
}

func init() {
	rootCmd.AddCommand(replCmd)
}
