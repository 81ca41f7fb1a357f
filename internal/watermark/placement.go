package watermark

import (
	"fmt"
	"image"
	"strings"
)

// Placement maps base-image coordinates onto watermark coordinates.
//
// Implementations are pure: Locate depends only on its arguments, so pixels
// may be visited in any order and from any goroutine.
type Placement interface {
	// Locate returns the watermark pixel covering base pixel (x, y) for a
	// watermark of size w x h. ok is false when (x, y) is not covered.
	Locate(x, y, w, h int) (wx, wy int, ok bool)
	String() string
}

// Single places the watermark's top-left corner at (X, Y) in base
// coordinates. Base pixels outside the watermark window pass through.
type Single struct {
	X, Y int
}

// Locate implements Placement.
func (p Single) Locate(x, y, w, h int) (int, int, bool) {
	wx, wy := x-p.X, y-p.Y
	if wx < 0 || wx >= w || wy < 0 || wy >= h {
		return 0, 0, false
	}
	return wx, wy, true
}

func (p Single) String() string { return fmt.Sprintf("single(%d,%d)", p.X, p.Y) }

// Tiled repeats the watermark as a grid anchored at (0,0), covering the whole
// base image.
type Tiled struct{}

// Locate implements Placement. Every non-negative coordinate is covered.
func (Tiled) Locate(x, y, w, h int) (int, int, bool) {
	return x % w, y % h, true
}

func (Tiled) String() string { return "grid" }

// ParsePlacement resolves a position method name, "single" or "grid"
// (case-insensitive). x and y are only used for "single".
func ParsePlacement(method string, x, y int) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "single":
		return Single{X: x, Y: y}, nil
	case "grid":
		return Tiled{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlacement, method)
	}
}

// Coverage returns the zero-origin rectangle of base pixels that receive
// watermark coverage. For Tiled this is the whole base image.
func Coverage(base, mark image.Rectangle, p Placement) image.Rectangle {
	full := image.Rect(0, 0, base.Dx(), base.Dy())
	switch p := p.(type) {
	case Single:
		return image.Rect(p.X, p.Y, p.X+mark.Dx(), p.Y+mark.Dy()).Intersect(full)
	case Tiled:
		return full
	}
	return image.Rectangle{}
}
