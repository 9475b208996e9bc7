package internal

import (
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const defaultMaxIconCacheSize = 16

// RenderSVGIcon rasterizes an SVG file into a square RGBA image of the
// given edge length.
func RenderSVGIcon(path string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return rgba, nil
}

// IconCache stores rasterized menu item icons keyed by path and size,
// evicting the least recently used entry once full.
type IconCache struct {
	icons   map[string]*image.RGBA
	order   []string // tracks insertion order for LRU eviction
	maxSize int
}

func NewIconCache() *IconCache {
	return NewIconCacheWithSize(defaultMaxIconCacheSize)
}

func NewIconCacheWithSize(maxSize int) *IconCache {
	return &IconCache{
		icons:   make(map[string]*image.RGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func iconCacheKey(path string, size int) string {
	return fmt.Sprintf("%s@%d", path, size)
}

// GetOrRender returns the cached icon for path at size, rasterizing and
// caching it on a miss.
func (c *IconCache) GetOrRender(path string, size int) (*image.RGBA, error) {
	key := iconCacheKey(path, size)
	if icon := c.Get(key); icon != nil {
		return icon, nil
	}

	icon, err := RenderSVGIcon(path, size)
	if err != nil {
		return nil, err
	}

	c.Set(key, icon)
	return icon, nil
}

func (c *IconCache) Get(key string) *image.RGBA {
	if icon, exists := c.icons[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return icon
	}
	return nil
}

func (c *IconCache) Set(key string, icon *image.RGBA) {
	// If key already exists, just update and move to end
	if _, exists := c.icons[key]; exists {
		c.icons[key] = icon
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.icons[key] = icon
	c.order = append(c.order, key)
}

func (c *IconCache) Len() int {
	return len(c.icons)
}

func (c *IconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.icons, oldest)
}

// Clear drops all cached icons.
func (c *IconCache) Clear() {
	c.icons = make(map[string]*image.RGBA)
	c.order = c.order[:0]
}
