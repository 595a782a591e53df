package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestPNG writes a uniform test image into dir and returns its path.
func writeTestPNG(t *testing.T, dir string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestImageCache_Load(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 40, 30, color.NRGBA{255, 0, 0, 255})
	cache := NewImageCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}

func TestImageCache_ServesFromCache(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 10, 10, color.NRGBA{0, 255, 0, 255})
	cache := NewImageCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	// Remove the file: a second load must still succeed from cache.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed after file removal: %v", err)
	}

	// After eviction the load has to hit disk again and fail.
	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error loading evicted image with file gone")
	}
}

func TestImageCache_Clear(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 10, 10, color.NRGBA{0, 0, 255, 255})
	cache := NewImageCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	os.Remove(path)
	cache.Clear()

	if _, err := cache.Load(path); err == nil {
		t.Error("expected error after Clear with file gone")
	}
}

func TestImageCache_LoadErrors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}

	// Not an image.
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("expected decode error for non-image file")
	}
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 20, 20, color.NRGBA{128, 128, 128, 255})
	cache := NewImageCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestLoadInfo(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 64, 48, color.NRGBA{10, 20, 30, 255})
	cache := NewImageCache()

	info, err := LoadInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}

	if info.Width != 64 || info.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want \"png\"", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %q, want \"8-bit\"", info.ColorDepth)
	}
	if !info.HasAlpha {
		t.Error("expected HasAlpha for NRGBA source")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestGetDimensions(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 33, 77, color.NRGBA{1, 2, 3, 255})
	cache := NewImageCache()

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 33 || dims.Height != 77 {
		t.Errorf("got %dx%d, want 33x77", dims.Width, dims.Height)
	}
}
