package watermark

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ironsheep/image-watermark/internal/imaging"
)

// Mode decides whether a covered watermark pixel is blended onto the base.
//
// The set of modes is closed: AlphaBlend, ChromaKey and Opaque are the only
// implementations.
type Mode interface {
	// blends reports whether the watermark pixel w takes part in the blend.
	blends(w color.NRGBA) bool
	String() string
}

// AlphaBlend uses the watermark's alpha channel as a binary gate. Only fully
// opaque watermark pixels are blended; any other alpha leaves the base pixel
// unchanged.
type AlphaBlend struct{}

func (AlphaBlend) blends(w color.NRGBA) bool { return w.A == 0xff }

func (AlphaBlend) String() string { return "alpha" }

// ChromaKey treats watermark pixels whose RGB exactly equals Key as
// transparent. It is meant for watermarks without an alpha channel.
type ChromaKey struct {
	Key imaging.RGBColor
}

func (m ChromaKey) blends(w color.NRGBA) bool {
	return w.R != m.Key.R || w.G != m.Key.G || w.B != m.Key.B
}

func (m ChromaKey) String() string {
	return fmt.Sprintf("color(%d %d %d)", m.Key.R, m.Key.G, m.Key.B)
}

// Opaque blends every covered pixel at the configured opacity.
type Opaque struct{}

func (Opaque) blends(color.NRGBA) bool { return true }

func (Opaque) String() string { return "none" }

// ParseMode resolves a mode name as used on the command line and in tool
// arguments: "alpha", "color" (key is required and parsed with
// imaging.ParseColor) or "none". An empty name means "none".
func ParseMode(name, key string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alpha":
		return AlphaBlend{}, nil
	case "color":
		c, err := imaging.ParseColor(key)
		if err != nil {
			return nil, err
		}
		return ChromaKey{Key: c}, nil
	case "none", "":
		return Opaque{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// CheckMode verifies that mode suits a watermark with or without an alpha
// channel. AlphaBlend needs alpha; ChromaKey is only offered for watermarks
// without it. Compose itself trusts the caller and does not run this check.
func CheckMode(mode Mode, hasAlpha bool) error {
	switch mode.(type) {
	case AlphaBlend:
		if !hasAlpha {
			return fmt.Errorf("%w: %s requires a watermark with an alpha channel", ErrModeAlphaMismatch, mode)
		}
	case ChromaKey:
		if hasAlpha {
			return fmt.Errorf("%w: %s requires a watermark without an alpha channel", ErrModeAlphaMismatch, mode)
		}
	case nil:
		return ErrNilMode
	}
	return nil
}
