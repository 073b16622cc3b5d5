package overpass

import "encoding/json"

// Response is the decoded body of an interpreter call.
type Response struct {
	Version   float64   `json:"version,omitempty"`
	Generator string    `json:"generator,omitempty"`
	Elements  []Element `json:"elements"`
}

// Element is one raw OSM element. Nodes carry Lat/Lon directly; ways
// queried with "out geom" carry an ordered Geometry; relations carry
// Members, which this client does not resolve into geometry.
type Element struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Lat      float64           `json:"lat,omitempty"`
	Lon      float64           `json:"lon,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"`
	Geometry []LatLon          `json:"geometry,omitempty"`
	Nodes    []int64           `json:"nodes,omitempty"`
}

// LatLon is one vertex of a way geometry.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func decodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
