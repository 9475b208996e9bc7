package internal

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
  <rect x="4" y="4" width="16" height="16" fill="#000000"/>
</svg>`

func writeSampleSVG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(path, []byte(sampleSVG), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderSVGIcon(t *testing.T) {
	path := writeSampleSVG(t)

	icon, err := RenderSVGIcon(path, 24)
	if err != nil {
		t.Fatalf("RenderSVGIcon: %v", err)
	}

	if got := icon.Bounds(); got != image.Rect(0, 0, 24, 24) {
		t.Errorf("bounds = %v, want 24x24", got)
	}

	// The filled rect should have produced at least one opaque pixel
	opaque := false
	for y := 0; y < 24 && !opaque; y++ {
		for x := 0; x < 24; x++ {
			if _, _, _, a := icon.At(x, y).RGBA(); a > 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("rasterized icon is fully transparent")
	}
}

func TestRenderSVGIconMissingFile(t *testing.T) {
	if _, err := RenderSVGIcon(filepath.Join(t.TempDir(), "missing.svg"), 24); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestIconCacheGetOrRender(t *testing.T) {
	path := writeSampleSVG(t)
	cache := NewIconCache()

	first, err := cache.GetOrRender(path, 24)
	if err != nil {
		t.Fatalf("GetOrRender: %v", err)
	}

	second, err := cache.GetOrRender(path, 24)
	if err != nil {
		t.Fatalf("GetOrRender (cached): %v", err)
	}
	if first != second {
		t.Error("cache miss on second lookup of the same path and size")
	}

	// Different size is a separate entry
	if _, err := cache.GetOrRender(path, 48); err != nil {
		t.Fatalf("GetOrRender at other size: %v", err)
	}
	if cache.Len() != 2 {
		t.Errorf("cache size = %d, want 2", cache.Len())
	}
}

func TestIconCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewIconCacheWithSize(2)
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 1, 1))
	c := image.NewRGBA(image.Rect(0, 0, 1, 1))

	cache.Set("a", a)
	cache.Set("b", b)

	// Touch "a" so "b" becomes the eviction candidate
	if cache.Get("a") == nil {
		t.Fatal("expected a in cache")
	}

	cache.Set("c", c)

	if cache.Get("b") != nil {
		t.Error("b should have been evicted")
	}
	if cache.Get("a") == nil || cache.Get("c") == nil {
		t.Error("a and c should still be cached")
	}
	if cache.Len() != 2 {
		t.Errorf("cache size = %d, want 2", cache.Len())
	}
}

func TestIconCacheClear(t *testing.T) {
	cache := NewIconCache()
	cache.Set("a", image.NewRGBA(image.Rect(0, 0, 1, 1)))

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("size after clear = %d, want 0", cache.Len())
	}
	if cache.Get("a") != nil {
		t.Error("entry survived clear")
	}
}
