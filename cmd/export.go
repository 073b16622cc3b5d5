package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/mapgrove/osmpoly/internal/export"
	"github.com/mapgrove/osmpoly/internal/service"
)

var (
	exportBBox   string
	exportTags   []string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export polygons to GeoJSON or shapefile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		bbox, err := parseBBox(exportBBox)
		if err != nil {
			return err
		}
		tags, err := parseTags(exportTags)
		if err != nil {
			return err
		}

		svc := newService(cfg.Overpass)
		polygons, err := svc.PolygonsByTags(ctx, bbox, tags)
		if err != nil {
			return err
		}

		switch exportFormat {
		case "geojson":
			err = export.WriteGeoJSON(exportOut, service.ToGeoJSON(polygons))
		case "shp":
			err = export.WriteShapefile(exportOut, polygons)
		default:
			return eris.Errorf("unknown format %q: want geojson or shp", exportFormat)
		}
		if err != nil {
			return err
		}

		fmt.Printf("wrote %d polygons to %s\n", len(polygons), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportBBox, "bbox", "", "bounding box as lat_min,lon_min,lat_max,lon_max (required)")
	exportCmd.Flags().StringArrayVar(&exportTags, "tag", nil, "tag filter as key=value (repeatable)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "geojson", "output format: geojson or shp")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (required)")
	_ = exportCmd.MarkFlagRequired("bbox")
	_ = exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}
