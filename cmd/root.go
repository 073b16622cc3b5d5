package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mapgrove/osmpoly/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "osmpoly",
	Short: "Fetch and analyze OSM polygon data",
	Long:  "Queries an Overpass API endpoint for building footprints, land-use zones and other polygon features, with filtering, statistics and GeoJSON/shapefile export.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
