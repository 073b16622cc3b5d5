package store

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/mapgrove/osmpoly/internal/model"
	"github.com/mapgrove/osmpoly/pkg/overpass"
)

// parseElement promotes one raw element to a polygon. Geometry vertices
// arrive as {lat,lon} objects and are projected to (lon,lat) coordinate
// order. Way polygons are closed before being returned; relations are
// left as delivered. An element without geometry fails the parse.
func parseElement(el overpass.Element, kind model.Kind) (*model.Polygon, error) {
	if len(el.Geometry) == 0 {
		return nil, eris.Errorf("store: element %d has no geometry", el.ID)
	}

	coords := make([]geom.Coord, 0, len(el.Geometry))
	for _, pt := range el.Geometry {
		coords = append(coords, geom.Coord{pt.Lon, pt.Lat})
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	p := &model.Polygon{
		OSMID:       el.ID,
		Kind:        kind,
		Coordinates: coords,
		Tags:        tags,
		Properties:  map[string]any{},
	}
	if kind == model.KindWay {
		p.Close()
	}
	return p, nil
}
