package imaging

import (
	"fmt"
	"image"
)

// DepthError reports an image whose pixel layout cannot be watermarked.
// Its message is meant to be shown to the user as is.
type DepthError struct {
	Role   string // "image" or "watermark"
	Reason string
}

func (e *DepthError) Error() string { return e.Reason }

// CheckColorDepth accepts 24-bit RGB and 32-bit RGBA images only.
//
// Images without exactly three color components (grayscale, CMYK, alpha-only)
// are rejected first; images with three components but a different pixel size
// (16-bit per channel, paletted) are rejected second. role names the image in
// the message, e.g. "watermark".
func CheckColorDepth(img image.Image, role string) error {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.CMYK, *image.Alpha, *image.Alpha16:
		return &DepthError{Role: role, Reason: fmt.Sprintf("The number of %s color components isn't 3.", role)}
	case *image.RGBA64, *image.NRGBA64, *image.Paletted:
		return &DepthError{Role: role, Reason: fmt.Sprintf("The %s isn't 24 or 32-bit.", role)}
	}
	return nil
}

// HasAlpha reports whether img carries an alpha channel.
//
// Non-premultiplied types (NRGBA, NRGBA64, NYCbCrA) always do. The PNG
// decoder returns *image.RGBA for plain truecolor files, so premultiplied
// RGBA counts as alpha only when some pixel is not fully opaque.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return true
	case *image.RGBA:
		return !m.Opaque()
	case *image.RGBA64:
		return !m.Opaque()
	}
	return false
}
