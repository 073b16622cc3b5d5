package model

import "strconv"

// BoundingBox is a rectangular geographic extent in WGS84 degrees. The
// value is immutable once built; validity is checked on demand via Valid,
// never at construction time.
type BoundingBox struct {
	LatMin float64
	LonMin float64
	LatMax float64
	LonMax float64
}

// Overpass renders the extent as an Overpass QL global bbox clause:
// (lat_min,lon_min,lat_max,lon_max). Coordinates use their shortest
// round-trip decimal form, so parsing the clause back yields the exact
// same four values.
func (b BoundingBox) Overpass() string {
	return "(" + formatCoord(b.LatMin) +
		"," + formatCoord(b.LonMin) +
		"," + formatCoord(b.LatMax) +
		"," + formatCoord(b.LonMax) + ")"
}

func (b BoundingBox) String() string { return b.Overpass() }

// Valid reports whether the extent is well-formed: min strictly below max
// on both axes and each coordinate inside its legal range. Values exactly
// at ±90 / ±180 are valid.
func (b BoundingBox) Valid() bool {
	if b.LatMin >= b.LatMax {
		return false
	}
	if b.LonMin >= b.LonMax {
		return false
	}
	if b.LatMin < -90 || b.LatMin > 90 {
		return false
	}
	if b.LatMax < -90 || b.LatMax > 90 {
		return false
	}
	if b.LonMin < -180 || b.LonMin > 180 {
		return false
	}
	if b.LonMax < -180 || b.LonMax > 180 {
		return false
	}
	return true
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
