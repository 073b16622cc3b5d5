// Package store fetches OSM elements through an Overpass client and keeps
// the parsed polygons in an in-memory cache keyed by OSM id.
package store

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/mapgrove/osmpoly/internal/model"
	"github.com/mapgrove/osmpoly/pkg/overpass"
)

var (
	// ErrInvalidBoundingBox rejects a malformed extent before any network
	// call is attempted.
	ErrInvalidBoundingBox = eris.New("store: invalid bounding box")

	// ErrUnsupported marks operations this store leaves unimplemented on
	// purpose: bulk enumeration without a bounding box is not a meaningful
	// question to ask Overpass.
	ErrUnsupported = eris.New("store: operation not supported")
)

// Querier is the slice of the Overpass client the store needs.
type Querier interface {
	Query(ctx context.Context, ql string) (*overpass.Response, error)
}

// Finder is the capability contract for bbox-scoped polygon stores.
// Bulk enumeration is deliberately absent from the contract; the concrete
// store keeps a FindAll method that always fails, so callers reaching for
// it get a distinct error instead of silent partial data.
type Finder interface {
	FindByID(id int64) (*model.Polygon, bool)
	Save(p *model.Polygon) *model.Polygon
	Delete(id int64) bool
}

// PolygonStore retrieves polygons from Overpass and caches every
// successfully parsed result.
type PolygonStore struct {
	client Querier
	cache  *polygonCache
}

var _ Finder = (*PolygonStore)(nil)

// New creates a store backed by the given Overpass querier.
func New(client Querier) *PolygonStore {
	return &PolygonStore{client: client, cache: newPolygonCache()}
}

// FindWays fetches way elements inside bbox matching tags (default
// {"building":"yes"} when tags is nil) and returns the parsed polygons in
// arrival order. Every parsed polygon is saved to the cache, replacing any
// prior entry with the same id. An invalid bbox is the only returned
// error; transport exhaustion and parse failures degrade to an empty or
// partial result.
func (s *PolygonStore) FindWays(ctx context.Context, bbox model.BoundingBox, tags map[string]string) ([]*model.Polygon, error) {
	if !bbox.Valid() {
		return nil, eris.Wrapf(ErrInvalidBoundingBox, "bbox %s", bbox)
	}
	if tags == nil {
		tags = defaultWayTags
	}
	return s.queryAndParse(ctx, wayQuery(bbox, tags), model.KindWay), nil
}

// FindRelations validates bbox and issues a count-only relation query
// (default tags {"boundary":"administrative"}). Relation geometry
// extraction (multipolygon assembly) is not implemented, so the result is
// always empty regardless of what the endpoint returns.
func (s *PolygonStore) FindRelations(ctx context.Context, bbox model.BoundingBox, tags map[string]string) ([]*model.Polygon, error) {
	if !bbox.Valid() {
		return nil, eris.Wrapf(ErrInvalidBoundingBox, "bbox %s", bbox)
	}
	if tags == nil {
		tags = defaultRelationTags
	}
	if _, err := s.client.Query(ctx, relationQuery(bbox, tags)); err != nil {
		zap.L().Warn("store: relation count query failed", zap.Error(err))
	}
	return []*model.Polygon{}, nil
}

// FindByTags is FindWays with a caller-chosen tag filter.
func (s *PolygonStore) FindByTags(ctx context.Context, bbox model.BoundingBox, tags map[string]string) ([]*model.Polygon, error) {
	return s.FindWays(ctx, bbox, tags)
}

func (s *PolygonStore) queryAndParse(ctx context.Context, ql string, kind model.Kind) []*model.Polygon {
	resp, err := s.client.Query(ctx, ql)
	if err != nil {
		zap.L().Warn("store: overpass query failed", zap.Error(err))
		return []*model.Polygon{}
	}

	polygons := make([]*model.Polygon, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		if el.Type != kind.String() {
			continue
		}
		p, err := parseElement(el, kind)
		if err != nil {
			zap.L().Warn("store: skipping element",
				zap.Int64("id", el.ID),
				zap.Error(err))
			continue
		}
		s.Save(p)
		polygons = append(polygons, p)
	}
	return polygons
}

// FindAll always fails: polygons only exist relative to a bounding box
// query. Use FindWays or FindByTags instead.
func (s *PolygonStore) FindAll() ([]*model.Polygon, error) {
	return nil, eris.Wrap(ErrUnsupported, "use FindWays with a bounding box")
}

// FindByID returns the cached polygon for an OSM id.
func (s *PolygonStore) FindByID(id int64) (*model.Polygon, bool) {
	return s.cache.get(id)
}

// Save upserts a polygon into the cache. The last write for an id wins;
// the polygon is returned for chaining.
func (s *PolygonStore) Save(p *model.Polygon) *model.Polygon {
	s.cache.put(p)
	return p
}

// Delete removes a cached polygon, reporting whether it was present.
func (s *PolygonStore) Delete(id int64) bool {
	return s.cache.remove(id)
}

// Clear empties the cache.
func (s *PolygonStore) Clear() {
	s.cache.clear()
}

// Size returns the number of cached polygons.
func (s *PolygonStore) Size() int {
	return s.cache.size()
}
