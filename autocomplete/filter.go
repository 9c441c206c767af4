package autocomplete

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// Filter returns the entries of catalog whose lowercase form starts with the
// lowercase query, in catalog order. An empty query returns the whole
// catalog. The result never aliases catalog.
func Filter(catalog []string, query string) []string {
	if query == "" {
		return cloneStrings(catalog)
	}
	q := strings.ToLower(query)
	out := make([]string, 0, len(catalog))
	for _, s := range catalog {
		if strings.HasPrefix(strings.ToLower(s), q) {
			out = append(out, s)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Catalog is an immutable, ordered suggestion list with memoized filtering.
// It is safe for concurrent use.
type Catalog struct {
	items []string
	memo  *gocache.Cache
}

// NewCatalog copies items into a new Catalog.
func NewCatalog(items []string) *Catalog {
	return &Catalog{
		items: cloneStrings(items),
		// No expiration and no janitor goroutine; entries live as long as
		// the catalog.
		memo: gocache.New(gocache.NoExpiration, 0),
	}
}

// Items returns a copy of the catalog entries.
func (c *Catalog) Items() []string {
	if c == nil {
		return []string{}
	}
	return cloneStrings(c.items)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Filter is Filter over the catalog entries. Results are cached per
// lowercase query.
func (c *Catalog) Filter(query string) []string {
	if c == nil {
		return []string{}
	}
	key := strings.ToLower(query)
	if v, found := c.memo.Get(key); found {
		if cached, ok := v.([]string); ok {
			return cloneStrings(cached)
		}
	}
	out := Filter(c.items, query)
	c.memo.Set(key, out, gocache.NoExpiration)
	return cloneStrings(out)
}
