package router

// Cache holds one instantiated view per visited page, in visit order.
//
// Views are indexed by visit order rather than by step, since a step merged
// with its predecessor shares the predecessor's slot. The cache only grows:
// an index, once handed out, stays valid for the life of the flow.
type Cache struct {
	views []View
}

// NewCache creates an empty view cache.
func NewCache() *Cache {
	return &Cache{
		views: make([]View, 0, 4),
	}
}

// Append adds a view after the last cached view and returns its index.
func (c *Cache) Append(v View) int {
	c.views = append(c.views, v)
	return len(c.views) - 1
}

// At returns the view at index i, or false if nothing is cached there.
func (c *Cache) At(i int) (View, bool) {
	if i < 0 || i >= len(c.views) {
		return nil, false
	}
	return c.views[i], true
}

// IndexOf returns the index of v, or -1 if v is not cached.
func (c *Cache) IndexOf(v View) int {
	for i, cached := range c.views {
		if cached == v {
			return i
		}
	}
	return -1
}

// Len returns the number of cached views.
func (c *Cache) Len() int {
	return len(c.views)
}

// IsEmpty returns true if no view has been cached yet.
func (c *Cache) IsEmpty() bool {
	return len(c.views) == 0
}
