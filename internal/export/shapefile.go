package export

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/mapgrove/osmpoly/internal/model"
)

// Attribute columns carried alongside each shape.
func shapeFields() []shp.Field {
	return []shp.Field{
		shp.NumberField("OSM_ID", 19),
		shp.StringField("KIND", 10),
		shp.FloatField("AREA", 19, 9),
	}
}

// WriteShapefile writes polygons to an ESRI shapefile at path, one ring
// per record, with OSM id, element kind, and planar area attributes.
func WriteShapefile(path string, polygons []*model.Polygon) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return eris.Wrap(err, "export: create shapefile")
	}
	defer w.Close() //nolint:errcheck

	if err := w.SetFields(shapeFields()); err != nil {
		return eris.Wrap(err, "export: set shapefile fields")
	}

	for _, p := range polygons {
		ring := make([]shp.Point, 0, len(p.Coordinates))
		for _, c := range p.Coordinates {
			ring = append(ring, shp.Point{X: c[0], Y: c[1]})
		}

		poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))
		row := int(w.Write(&poly))

		if err := w.WriteAttribute(row, 0, int(p.OSMID)); err != nil {
			return eris.Wrapf(err, "export: write osm_id for %d", p.OSMID)
		}
		if err := w.WriteAttribute(row, 1, p.Kind.String()); err != nil {
			return eris.Wrapf(err, "export: write kind for %d", p.OSMID)
		}
		if err := w.WriteAttribute(row, 2, p.Area()); err != nil {
			return eris.Wrapf(err, "export: write area for %d", p.OSMID)
		}
	}

	return nil
}
