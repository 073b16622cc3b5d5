package model

// Kind identifies the OSM primitive a polygon was derived from. The string
// value matches the "type" field of Overpass elements.
type Kind string

const (
	KindWay      Kind = "way"
	KindRelation Kind = "relation"
	KindNode     Kind = "node"
)

func (k Kind) String() string { return string(k) }
