// Command dayflow runs the dayflow API server and its maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "dayflow:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "dayflow",
		Short:         "Tasks, habits, events and finances backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to config.yaml (default $CONFIG_PATH, then ./config.yaml)")

	resolve := func() string {
		if configPath != "" {
			return configPath
		}
		return os.Getenv("CONFIG_PATH")
	}

	root.AddCommand(
		newServeCmd(resolve),
		newMigrateCmd(resolve),
		newTokenCmd(resolve),
	)
	return root
}
