package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mapgrove/osmpoly/internal/service"
)

var (
	fetchBBox    string
	fetchTags    []string
	fetchGeoJSON bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch polygons inside a bounding box",
	Long:  "Fetch way polygons matching a tag filter (default building=yes) and print a summary or the full GeoJSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		bbox, err := parseBBox(fetchBBox)
		if err != nil {
			return err
		}
		tags, err := parseTags(fetchTags)
		if err != nil {
			return err
		}

		svc := newService(cfg.Overpass)
		polygons, err := svc.PolygonsByTags(ctx, bbox, tags)
		if err != nil {
			return err
		}

		if fetchGeoJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(service.ToGeoJSON(polygons))
		}

		fmt.Printf("%d polygons in %s\n", len(polygons), bbox)
		for _, p := range polygons {
			fmt.Printf("  %s/%d  points=%d  area=%.9f\n", p.Kind, p.OSMID, len(p.Coordinates), p.Area())
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchBBox, "bbox", "", "bounding box as lat_min,lon_min,lat_max,lon_max (required)")
	fetchCmd.Flags().StringArrayVar(&fetchTags, "tag", nil, "tag filter as key=value (repeatable)")
	fetchCmd.Flags().BoolVar(&fetchGeoJSON, "geojson", false, "print the full GeoJSON feature collection")
	_ = fetchCmd.MarkFlagRequired("bbox")

	rootCmd.AddCommand(fetchCmd)
}
