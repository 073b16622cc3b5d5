package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/mapgrove/osmpoly/internal/model"
)

// square returns a closed way polygon with the given side length anchored
// at the origin.
func square(id int64, side float64, tags map[string]string) *model.Polygon {
	return &model.Polygon{
		OSMID: id,
		Kind:  model.KindWay,
		Coordinates: []geom.Coord{
			{0, 0}, {side, 0}, {side, side}, {0, side}, {0, 0},
		},
		Tags: tags,
	}
}

func TestFilterByArea(t *testing.T) {
	polygons := []*model.Polygon{
		square(1, 1, nil), // area 1
		square(2, 2, nil), // area 4
		square(3, 3, nil), // area 9
	}

	assert.Len(t, FilterByArea(polygons, 0, nil), 3)
	assert.Len(t, FilterByArea(polygons, 2, nil), 2)

	maxArea := 5.0
	kept := FilterByArea(polygons, 2, &maxArea)
	require.Len(t, kept, 1)
	assert.Equal(t, int64(2), kept[0].OSMID)

	assert.Empty(t, FilterByArea(polygons, 100, nil))
}

func TestFilterByTagValue(t *testing.T) {
	polygons := []*model.Polygon{
		square(1, 1, map[string]string{"building": "yes"}),
		square(2, 1, map[string]string{"building": "industrial"}),
		square(3, 1, map[string]string{"landuse": "industrial"}),
	}

	kept := FilterByTagValue(polygons, "building", "yes")
	require.Len(t, kept, 1)
	assert.Equal(t, int64(1), kept[0].OSMID)

	// Missing key excludes the polygon, even for an empty wanted value.
	assert.Empty(t, FilterByTagValue(polygons, "natural", ""))
}

func TestStatistics(t *testing.T) {
	assert.Equal(t, Stats{}, Statistics(nil))

	polygons := []*model.Polygon{
		square(1, 1, nil), // area 1
		square(2, 1, nil), // area 1
		square(3, 2, nil), // area 4
	}

	st := Statistics(polygons)
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 6.0, st.TotalArea)
	assert.Equal(t, 2.0, st.AvgArea)
	assert.Equal(t, 1.0, st.MinArea)
	assert.Equal(t, 4.0, st.MaxArea)
}

func TestToGeoJSON(t *testing.T) {
	polygons := []*model.Polygon{
		square(1, 1, map[string]string{"building": "yes"}),
		square(2, 2, map[string]string{"building": "yes"}),
	}

	fc := ToGeoJSON(polygons)
	require.Len(t, fc.Features, 2)

	data, err := json.Marshal(fc)
	require.NoError(t, err)

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Type     string `json:"type"`
			Geometry struct {
				Type        string        `json:"type"`
				Coordinates [][][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "FeatureCollection", decoded.Type)
	require.Len(t, decoded.Features, 2)

	f := decoded.Features[0]
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Polygon", f.Geometry.Type)
	require.Len(t, f.Geometry.Coordinates, 1, "a single ring per polygon")
	assert.Len(t, f.Geometry.Coordinates[0], 5)
	assert.Equal(t, float64(1), f.Properties["osm_id"])
	assert.Equal(t, "way", f.Properties["type"])
	assert.Equal(t, "yes", f.Properties["building"])
}

func TestToGeoJSON_Empty(t *testing.T) {
	fc := ToGeoJSON(nil)
	assert.Empty(t, fc.Features)
}
