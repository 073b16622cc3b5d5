package store

import (
	"strconv"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mapgrove/osmpoly/internal/model"
)

// polygonCache maps OSM ids to polygons. Entries never expire and the
// cache grows without bound; Clear is the only wholesale eviction.
type polygonCache struct {
	items *gocache.Cache
}

func newPolygonCache() *polygonCache {
	return &polygonCache{items: gocache.New(gocache.NoExpiration, 0)}
}

func cacheKey(id int64) string { return strconv.FormatInt(id, 10) }

func (c *polygonCache) get(id int64) (*model.Polygon, bool) {
	v, ok := c.items.Get(cacheKey(id))
	if !ok {
		return nil, false
	}
	return v.(*model.Polygon), true
}

func (c *polygonCache) put(p *model.Polygon) {
	c.items.Set(cacheKey(p.OSMID), p, gocache.NoExpiration)
}

func (c *polygonCache) remove(id int64) bool {
	key := cacheKey(id)
	if _, ok := c.items.Get(key); !ok {
		return false
	}
	c.items.Delete(key)
	return true
}

func (c *polygonCache) clear() { c.items.Flush() }

func (c *polygonCache) size() int { return c.items.ItemCount() }
