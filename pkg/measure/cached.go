package measure

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/style"
)

// DefaultCacheSize is the number of measurements Cached keeps by default.
const DefaultCacheSize = 1024

type cacheKey struct {
	text  string
	font  style.Font
	bound geom.Size
}

// CachedMeasurer memoizes another Measurer. Measurements are pure functions
// of their inputs, so entries never go stale. It is safe for concurrent use.
type CachedMeasurer struct {
	inner Measurer
	cache *lru.Cache[cacheKey, geom.Size]
}

// Cached wraps m with an LRU of the given size (DefaultCacheSize if size <= 0).
func Cached(m Measurer, size int) *CachedMeasurer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, _ := lru.New[cacheKey, geom.Size](size)
	return &CachedMeasurer{inner: m, cache: c}
}

// SizeForText returns the memoized size, measuring on a miss.
func (c *CachedMeasurer) SizeForText(text string, font style.Font, bound geom.Size) geom.Size {
	k := cacheKey{text: text, font: font, bound: bound}
	if s, ok := c.cache.Get(k); ok {
		return s
	}
	s := c.inner.SizeForText(text, font, bound)
	c.cache.Add(k, s)
	return s
}

// Len returns the number of cached measurements.
func (c *CachedMeasurer) Len() int { return c.cache.Len() }
