package main

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/mapgrove/osmpoly/internal/config"
	"github.com/mapgrove/osmpoly/internal/model"
	"github.com/mapgrove/osmpoly/internal/service"
	"github.com/mapgrove/osmpoly/internal/store"
	"github.com/mapgrove/osmpoly/pkg/overpass"
)

// parseBBox parses "lat_min,lon_min,lat_max,lon_max" into a bounding box.
func parseBBox(s string) (model.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.BoundingBox{}, eris.Errorf("bbox %q: want lat_min,lon_min,lat_max,lon_max", s)
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model.BoundingBox{}, eris.Wrapf(err, "bbox %q: coordinate %d", s, i+1)
		}
		vals[i] = v
	}

	return model.BoundingBox{
		LatMin: vals[0],
		LonMin: vals[1],
		LatMax: vals[2],
		LonMax: vals[3],
	}, nil
}

// parseTags parses repeated "key=value" flags into a tag filter. An empty
// input returns nil so downstream defaults apply.
func parseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, eris.Errorf("tag %q: want key=value", pair)
		}
		tags[k] = v
	}
	return tags, nil
}

func newOverpassClient(c config.OverpassConfig) *overpass.Client {
	return overpass.New(overpass.Config{
		Endpoint:   c.URL,
		Timeout:    c.Timeout(),
		MaxRetries: c.MaxRetries,
		RetryDelay: c.RetryDelay(),
	},
		overpass.WithRateLimit(c.RateLimitRPS),
		overpass.WithUserAgent(c.UserAgent),
	)
}

func newService(c config.OverpassConfig) *service.PolygonService {
	return service.New(store.New(newOverpassClient(c)))
}
