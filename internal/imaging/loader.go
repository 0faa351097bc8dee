package imaging

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	// Register the WebP decoder in addition to the PNG, JPEG, GIF, TIFF and
	// BMP formats the imaging library registers itself.
	_ "golang.org/x/image/webp"
)

// ImageCache provides thread-safe caching of decoded images to avoid
// redundant disk reads when the same tile appears in a grid more than once.
//
// Decoded images are keyed by the exact path string passed to Load;
// different spellings of the same path (relative vs absolute) produce
// separate entries. Cached images remain in memory until removed via
// Evict or Clear.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache, decoding it from disk on a miss.
//
// The file may be in any registered format (PNG, JPEG, GIF, TIFF, BMP or
// WebP). A missing file or undecodable content is reported as a decode
// error wrapping the underlying cause; images are treated as immutable once
// decoded.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, wrapError(KindDecode, err, "open %s", path)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path. If the path is
// not cached, Evict does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Format is the image format implied by the file extension: "png",
	// "jpeg", "gif", "tiff", "bmp", "webp" or "unknown".
	Format string

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string

	// HasAlpha indicates whether the decoded image carries an alpha channel.
	HasAlpha bool

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64
}

// LoadImageInfo loads an image through the cache and returns metadata about
// it: dimensions, format, color depth, alpha presence and file size.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, wrapError(KindDecode, err, "stat %s", path)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".tif", ".tiff":
		format = "tiff"
	case ".bmp":
		format = "bmp"
	case ".webp":
		format = "webp"
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
