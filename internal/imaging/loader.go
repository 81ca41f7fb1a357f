package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// cacheEntry is a decoded image together with the format name reported by
// the decoder.
type cacheEntry struct {
	img    image.Image
	format string
}

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// The MCP server evicts an output path after writing to it so a later load sees
// the new file.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cacheEntry
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cacheEntry),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Supported formats are PNG, JPEG, GIF, WebP, BMP and TIFF. The concrete type of
// the returned image depends on the format and color model (e.g., *image.RGBA,
// *image.NRGBA, *image.YCbCr).
//
// # Errors
//
//   - Returns an error wrapping fs.ErrNotExist if the file does not exist
//   - Returns an error if the file is not a decodable image
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

func (c *ImageCache) load(path string) (cacheEntry, error) {
	c.mu.RLock()
	if e, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return e, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("failed to decode image: %w", err)
	}

	e := cacheEntry{img: img, format: format}
	c.mu.Lock()
	c.images[path] = e
	c.mu.Unlock()

	return e, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder: "png", "jpeg", "gif",
	// "webp", "bmp" or "tiff".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries an alpha channel. A
	// watermark with alpha uses the "alpha" transparency mode; one without
	// may use a "color" key instead.
	HasAlpha bool `json:"has_alpha"`

	// Supported is false when the image cannot be used for watermarking
	// (see CheckColorDepth); Reason then holds the explanation.
	Supported bool   `json:"supported"`
	Reason    string `json:"reason,omitempty"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// The image is loaded into the cache if not already present.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	e, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	colorDepth := "8-bit"
	switch e.img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	info := &ImageInfo{
		Width:         e.img.Bounds().Dx(),
		Height:        e.img.Bounds().Dy(),
		Format:        e.format,
		ColorDepth:    colorDepth,
		HasAlpha:      HasAlpha(e.img),
		Supported:     true,
		FileSizeBytes: stat.Size(),
	}
	if err := CheckColorDepth(e.img, "image"); err != nil {
		info.Supported = false
		info.Reason = err.Error()
	}
	return info, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
