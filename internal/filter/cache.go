package filter

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/five82/glassy/internal/catalog"
)

// DefaultCacheSize bounds the number of remembered queries.
const DefaultCacheSize = 64

// Cache memoizes Apply results for one catalog, keyed by normalized query.
// A reloaded catalog gets a new Cache.
type Cache struct {
	cat     *catalog.Catalog
	entries []catalog.Descriptor
	results *lru.Cache[string, []catalog.Descriptor]
}

// NewCache builds a cache over cat holding at most size queries.
func NewCache(cat *catalog.Catalog, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	results, err := lru.New[string, []catalog.Descriptor](size)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &Cache{cat: cat, entries: cat.All(), results: results}
}

// Catalog returns the catalog the cache filters.
func (c *Cache) Catalog() *catalog.Catalog {
	return c.cat
}

// Filter returns Apply(catalog, query), reusing an earlier result for the
// same normalized query. The returned slice is the caller's to keep.
func (c *Cache) Filter(query string) []catalog.Descriptor {
	key := Normalize(query)
	if hit, ok := c.results.Get(key); ok {
		return clone(hit)
	}
	result := Apply(c.entries, key)
	c.results.Add(key, result)
	return clone(result)
}

// Suggest proxies to Suggest over the cached catalog.
func (c *Cache) Suggest(query string) (string, bool) {
	return Suggest(c.entries, query)
}

// Len reports how many queries are currently remembered.
func (c *Cache) Len() int {
	return c.results.Len()
}

func clone(in []catalog.Descriptor) []catalog.Descriptor {
	out := make([]catalog.Descriptor, len(in))
	copy(out, in)
	return out
}
