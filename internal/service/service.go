// Package service exposes the polygon lookups and pure collection
// operations built on top of the polygon store.
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mapgrove/osmpoly/internal/model"
)

// Repository is the store surface the service depends on.
type Repository interface {
	FindWays(ctx context.Context, bbox model.BoundingBox, tags map[string]string) ([]*model.Polygon, error)
	FindByTags(ctx context.Context, bbox model.BoundingBox, tags map[string]string) ([]*model.Polygon, error)
}

// PolygonService wraps a repository with common tag presets.
type PolygonService struct {
	repo Repository
}

// New creates a service over the given repository.
func New(repo Repository) *PolygonService {
	return &PolygonService{repo: repo}
}

// Buildings returns building footprints inside bbox.
func (s *PolygonService) Buildings(ctx context.Context, bbox model.BoundingBox) ([]*model.Polygon, error) {
	return s.repo.FindWays(ctx, bbox, map[string]string{"building": "yes"})
}

// IndustrialZones returns industrial land-use areas inside bbox.
func (s *PolygonService) IndustrialZones(ctx context.Context, bbox model.BoundingBox) ([]*model.Polygon, error) {
	return s.repo.FindWays(ctx, bbox, map[string]string{"landuse": "industrial"})
}

// WaterAreas returns water surfaces inside bbox.
func (s *PolygonService) WaterAreas(ctx context.Context, bbox model.BoundingBox) ([]*model.Polygon, error) {
	return s.repo.FindWays(ctx, bbox, map[string]string{"natural": "water"})
}

// Parks returns leisure parks inside bbox.
func (s *PolygonService) Parks(ctx context.Context, bbox model.BoundingBox) ([]*model.Polygon, error) {
	return s.repo.FindWays(ctx, bbox, map[string]string{"leisure": "park"})
}

// PolygonsByTags returns polygons matching a caller-supplied tag filter.
func (s *PolygonService) PolygonsByTags(ctx context.Context, bbox model.BoundingBox, tags map[string]string) ([]*model.Polygon, error) {
	return s.repo.FindByTags(ctx, bbox, tags)
}

// Category pairs a result label with an Overpass tag filter.
type Category struct {
	Name string
	Tags map[string]string
}

// Collect fetches several categories over one bbox concurrently. Each
// category request keeps its own sequential retry semantics; results are
// keyed by category name.
func (s *PolygonService) Collect(ctx context.Context, bbox model.BoundingBox, categories []Category) (map[string][]*model.Polygon, error) {
	results := make([][]*model.Polygon, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			polygons, err := s.repo.FindByTags(ctx, bbox, cat.Tags)
			if err != nil {
				return err
			}
			results[i] = polygons
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]*model.Polygon, len(categories))
	for i, cat := range categories {
		out[cat.Name] = results[i]
	}
	return out, nil
}
