package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FrogSnot/HardBore/internal/portal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Register the XDG Desktop Portal file-chooser service and block",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return portal.Serve(ctx)
	},
}
