package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedExtension is returned for output names not ending in
// ".jpg" or ".png".
var ErrUnsupportedExtension = errors.New(`output extension isn't "jpg" or "png"`)

// DefaultJPEGQuality is used by Save unless WithJPEGQuality says otherwise.
const DefaultJPEGQuality = 95

type saveConfig struct {
	jpegQuality int
}

// SaveOption configures Save.
type SaveOption func(*saveConfig)

// WithJPEGQuality sets the JPEG quality (1-100). Ignored for PNG output.
func WithJPEGQuality(q int) SaveOption {
	return func(c *saveConfig) {
		c.jpegQuality = q
	}
}

// OutputFormat returns the encoding for an output file name. Only the
// lower-case extensions "jpg" and "png" are accepted; everything after the
// last '.' is taken as the extension.
func OutputFormat(path string) (imaging.Format, error) {
	ext := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		ext = path[i+1:]
	}
	switch ext {
	case "jpg":
		return imaging.JPEG, nil
	case "png":
		return imaging.PNG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
}

// Save encodes img to path in the format chosen by OutputFormat.
func Save(img image.Image, path string, opts ...SaveOption) error {
	format, err := OutputFormat(path)
	if err != nil {
		return err
	}

	cfg := saveConfig{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(cfg.jpegQuality)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
