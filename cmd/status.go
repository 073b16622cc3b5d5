package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check Overpass endpoint availability",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := newOverpassClient(cfg.Overpass)
		if !client.IsAvailable(ctx) {
			return eris.Errorf("endpoint %s is not available", cfg.Overpass.URL)
		}

		fmt.Printf("endpoint %s is available\n", cfg.Overpass.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
