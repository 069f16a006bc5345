package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at link time for release builds.
var Version string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "report the version of this executable.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprint(w, "calcpro ")
		if Version != "" {
			fmt.Fprint(w, Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Fprint(w, info.Main.Version)
		} else {
			fmt.Fprint(w, "(unknown version)")
		}
		fmt.Fprintln(w)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
