// Package model holds the geographic domain types: bounding boxes and the
// polygons extracted from OSM elements.
package model

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Polygon is one OSM element promoted to a ring of (lon,lat) coordinate
// pairs. Coordinates are mutable: Close appends a point in place. A
// polygon is considered valid once it has at least three points and its
// first and last points are exactly equal.
type Polygon struct {
	OSMID       int64
	Kind        Kind
	Coordinates []geom.Coord
	Tags        map[string]string
	Properties  map[string]any
}

// Closed reports whether the first and last coordinates are identical.
// Comparison is exact float equality, no epsilon.
func (p *Polygon) Closed() bool {
	if len(p.Coordinates) < 3 {
		return false
	}
	first := p.Coordinates[0]
	last := p.Coordinates[len(p.Coordinates)-1]
	return first[0] == last[0] && first[1] == last[1]
}

// Close appends the first coordinate when the ring is open. Closing an
// already closed polygon changes nothing.
func (p *Polygon) Close() {
	if len(p.Coordinates) == 0 || p.Closed() {
		return
	}
	p.Coordinates = append(p.Coordinates, p.Coordinates[0])
}

// Valid reports a ring of at least three points that is exactly closed.
func (p *Polygon) Valid() bool {
	return len(p.Coordinates) >= 3 && p.Closed()
}

// Area computes the planar shoelace area over (lon,lat) pairs treated as
// Cartesian coordinates, in square degrees. No geodesic correction is
// applied. Open or degenerate rings have zero area.
func (p *Polygon) Area() float64 {
	if !p.Valid() {
		return 0.0
	}
	area := 0.0
	for i := 0; i < len(p.Coordinates)-1; i++ {
		x1, y1 := p.Coordinates[i][0], p.Coordinates[i][1]
		x2, y2 := p.Coordinates[i+1][0], p.Coordinates[i+1][1]
		area += x1*y2 - x2*y1
	}
	return math.Abs(area) / 2.0
}

// Feature converts the polygon to a GeoJSON feature with a single ring.
// Properties start from osm_id and the lowercase kind, then layer the
// element's tags, then any caller-supplied properties; later keys win on
// collision.
func (p *Polygon) Feature() *geojson.Feature {
	props := make(map[string]any, len(p.Tags)+len(p.Properties)+2)
	props["osm_id"] = p.OSMID
	props["type"] = p.Kind.String()
	for k, v := range p.Tags {
		props[k] = v
	}
	for k, v := range p.Properties {
		props[k] = v
	}

	ring := make([]geom.Coord, len(p.Coordinates))
	copy(ring, p.Coordinates)

	return &geojson.Feature{
		Geometry:   geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}),
		Properties: props,
	}
}
