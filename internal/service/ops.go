package service

import (
	"math"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/mapgrove/osmpoly/internal/model"
)

// FilterByArea keeps polygons whose planar area is at least minArea and,
// when maxArea is non-nil, at most *maxArea.
func FilterByArea(polygons []*model.Polygon, minArea float64, maxArea *float64) []*model.Polygon {
	filtered := make([]*model.Polygon, 0, len(polygons))
	for _, p := range polygons {
		a := p.Area()
		if a < minArea {
			continue
		}
		if maxArea != nil && a > *maxArea {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FilterByTagValue keeps polygons carrying the given tag with exactly the
// given value. Polygons missing the key are excluded.
func FilterByTagValue(polygons []*model.Polygon, key, value string) []*model.Polygon {
	filtered := make([]*model.Polygon, 0, len(polygons))
	for _, p := range polygons {
		if v, ok := p.Tags[key]; ok && v == value {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ToGeoJSON converts polygons into a GeoJSON feature collection, one
// feature per polygon.
func ToGeoJSON(polygons []*model.Polygon) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, len(polygons))
	for _, p := range polygons {
		features = append(features, p.Feature())
	}
	return &geojson.FeatureCollection{Features: features}
}

// Stats aggregates polygon areas in square degrees.
type Stats struct {
	Count     int     `json:"count"`
	AvgArea   float64 `json:"avg_area"`
	MinArea   float64 `json:"min_area"`
	MaxArea   float64 `json:"max_area"`
	TotalArea float64 `json:"total_area"`
}

// Statistics computes area aggregates over polygons. Every field is zero
// for an empty input.
func Statistics(polygons []*model.Polygon) Stats {
	if len(polygons) == 0 {
		return Stats{}
	}

	st := Stats{
		Count:   len(polygons),
		MinArea: math.Inf(1),
		MaxArea: math.Inf(-1),
	}
	for _, p := range polygons {
		a := p.Area()
		st.TotalArea += a
		if a < st.MinArea {
			st.MinArea = a
		}
		if a > st.MaxArea {
			st.MaxArea = a
		}
	}
	st.AvgArea = st.TotalArea / float64(st.Count)
	return st
}
