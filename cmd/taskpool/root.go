package main

import (
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
)

const envPrefix = "TASKPOOL"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskpool",
		Short:         "HTTP server executing every request on a fixed size worker pool",
		SilenceUsage:  true,
		SilenceErrors: false,
		// flags can be set with TASKPOOL_<FLAG> env variables, e.g. TASKPOOL_POOL_SIZE=4
		PersistentPreRunE: cobrautil.SyncViperPreRunE(envPrefix),
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newVersionCommand())

	return root
}
