package watermark

import (
	"fmt"
	"image"
)

// Options is the resolved configuration consumed by Compose.
type Options struct {
	// Mode selects how watermark transparency is handled.
	Mode Mode

	// Opacity is the watermark's weight in percent, 0-100.
	Opacity int

	// Placement positions the watermark on the base image.
	Placement Placement
}

// Validate checks every precondition of Compose against the base and
// watermark bounds without touching pixel data.
func (o Options) Validate(base, mark image.Rectangle) error {
	mw, mh := mark.Dx(), mark.Dy()
	bw, bh := base.Dx(), base.Dy()

	if mw <= 0 || mh <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyWatermark, mw, mh)
	}
	if mw > bw || mh > bh {
		return fmt.Errorf("%w: watermark %dx%d, base %dx%d", ErrWatermarkTooLarge, mw, mh, bw, bh)
	}
	if o.Opacity < 0 || o.Opacity > 100 {
		return fmt.Errorf("%w: %d", ErrOpacityOutOfRange, o.Opacity)
	}
	if o.Mode == nil {
		return ErrNilMode
	}

	switch p := o.Placement.(type) {
	case nil:
		return ErrNilPlacement
	case Single:
		dx, dy := bw-mw, bh-mh
		if p.X < 0 || p.X > dx || p.Y < 0 || p.Y > dy {
			return fmt.Errorf("%w: (%d,%d) not in [0-%d]x[0-%d]", ErrPlacementOutOfBounds, p.X, p.Y, dx, dy)
		}
	}
	return nil
}
