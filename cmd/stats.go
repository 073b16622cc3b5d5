package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mapgrove/osmpoly/internal/service"
)

var (
	statsBBox    string
	statsTags    []string
	statsMinArea float64
	statsMaxArea float64
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Area statistics for polygons inside a bounding box",
	Long:  "Fetch polygons matching a tag filter, optionally filter by planar area, and print count/avg/min/max/total area as JSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		bbox, err := parseBBox(statsBBox)
		if err != nil {
			return err
		}
		tags, err := parseTags(statsTags)
		if err != nil {
			return err
		}

		svc := newService(cfg.Overpass)
		polygons, err := svc.PolygonsByTags(ctx, bbox, tags)
		if err != nil {
			return err
		}

		var maxArea *float64
		if cmd.Flags().Changed("max-area") {
			maxArea = &statsMaxArea
		}
		polygons = service.FilterByArea(polygons, statsMinArea, maxArea)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(service.Statistics(polygons))
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsBBox, "bbox", "", "bounding box as lat_min,lon_min,lat_max,lon_max (required)")
	statsCmd.Flags().StringArrayVar(&statsTags, "tag", nil, "tag filter as key=value (repeatable)")
	statsCmd.Flags().Float64Var(&statsMinArea, "min-area", 0, "keep polygons with area >= this (square degrees)")
	statsCmd.Flags().Float64Var(&statsMaxArea, "max-area", 0, "keep polygons with area <= this (square degrees)")
	_ = statsCmd.MarkFlagRequired("bbox")

	rootCmd.AddCommand(statsCmd)
}
