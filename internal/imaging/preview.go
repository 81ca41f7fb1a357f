package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult contains an image encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePreview encodes img as a base64 PNG, resized by scale first when
// scale is positive and not 1.
func EncodePreview(img image.Image, scale float64) (*PreviewResult, error) {
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f shrinks image to nothing", scale)
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
