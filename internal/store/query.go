package store

import (
	"sort"
	"strings"

	"github.com/mapgrove/osmpoly/internal/model"
)

// Tag filters applied when the caller supplies none.
var (
	defaultWayTags      = map[string]string{"building": "yes"}
	defaultRelationTags = map[string]string{"boundary": "administrative"}
)

// tagConditions renders one ["key"="value"] clause per tag with no
// separator between clauses. Keys are emitted in sorted order so the query
// text is deterministic. Values are not escaped; callers are responsible
// for supplying safe tag keys and values.
func tagConditions(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(`["`)
		b.WriteString(k)
		b.WriteString(`"="`)
		b.WriteString(tags[k])
		b.WriteString(`"]`)
	}
	return b.String()
}

// wayQuery requests every way inside bbox matching all tags, geometry
// included.
func wayQuery(bbox model.BoundingBox, tags map[string]string) string {
	return "\n[bbox:" + bbox.Overpass() + "];\n(\n  way" + tagConditions(tags) + ";\n);\nout geom;\n"
}

// relationQuery requests a count only. Relation geometry is never
// extracted, so there is no point asking for it.
func relationQuery(bbox model.BoundingBox, tags map[string]string) string {
	return "\n[bbox:" + bbox.Overpass() + "];\n(\n  relation" + tagConditions(tags) + ";\n);\nout count;\n"
}
