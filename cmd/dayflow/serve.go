package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/dayflow-backend/internal/app"
)

func newServeCmd(configPath func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), configPath())
		},
	}
}
