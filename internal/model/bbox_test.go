package model

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox_Overpass(t *testing.T) {
	b := BoundingBox{LatMin: 48.81, LonMin: 2.22, LatMax: 48.9, LonMax: 2.47}
	assert.Equal(t, "(48.81,2.22,48.9,2.47)", b.Overpass())
	assert.Equal(t, b.Overpass(), b.String())
}

func TestBoundingBox_OverpassRoundTrip(t *testing.T) {
	boxes := []BoundingBox{
		{LatMin: 48.81, LonMin: 2.22, LatMax: 48.9, LonMax: 2.47},
		{LatMin: -90, LonMin: -180, LatMax: 90, LonMax: 180},
		{LatMin: 0.123456789012345, LonMin: -0.1, LatMax: 33.333333333333336, LonMax: 0.1},
	}

	for _, b := range boxes {
		s := strings.Trim(b.Overpass(), "()")
		parts := strings.Split(s, ",")
		require.Len(t, parts, 4)

		parsed := make([]float64, 4)
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			require.NoError(t, err)
			parsed[i] = v
		}

		assert.Equal(t, b.LatMin, parsed[0])
		assert.Equal(t, b.LonMin, parsed[1])
		assert.Equal(t, b.LatMax, parsed[2])
		assert.Equal(t, b.LonMax, parsed[3])
	}
}

func TestBoundingBox_Valid(t *testing.T) {
	tests := []struct {
		name string
		bbox BoundingBox
		want bool
	}{
		{"paris", BoundingBox{48.81, 2.22, 48.9, 2.47}, true},
		{"full extent", BoundingBox{-90, -180, 90, 180}, true},
		{"lat min equals max", BoundingBox{48.9, 2.22, 48.9, 2.47}, false},
		{"lat min above max", BoundingBox{49.0, 2.22, 48.9, 2.47}, false},
		{"lon min equals max", BoundingBox{48.81, 2.47, 48.9, 2.47}, false},
		{"lon min above max", BoundingBox{48.81, 2.5, 48.9, 2.47}, false},
		{"lat min below range", BoundingBox{-90.1, 2.22, 48.9, 2.47}, false},
		{"lat max above range", BoundingBox{48.81, 2.22, 90.1, 2.47}, false},
		{"lon min below range", BoundingBox{48.81, -180.1, 48.9, 2.47}, false},
		{"lon max above range", BoundingBox{48.81, 2.22, 48.9, 180.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bbox.Valid())
		})
	}
}
