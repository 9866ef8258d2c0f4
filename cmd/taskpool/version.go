package main

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "v0.0.0"
	commit  = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bold := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			bold.Fprint(out, "taskpool ")
			color.New(color.FgGreen).Fprintln(out, version)
			color.New(color.Faint).Fprintf(out, "commit: %s, go: %s\n", commit, runtime.Version())
		},
	}
}
