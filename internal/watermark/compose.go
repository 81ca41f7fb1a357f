package watermark

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Compose blends mark onto base according to opts and returns a new, fully
// opaque image with base's dimensions and a zero origin.
//
// Preconditions are checked with Options.Validate; a violation returns one of
// the package's Err* values (wrapped) and no image. The agreement between
// opts.Mode and the watermark's alpha capability is not checked here; see
// CheckMode.
func Compose(base, mark image.Image, opts Options) (*image.RGBA, error) {
	if err := opts.Validate(base.Bounds(), mark.Bounds()); err != nil {
		return nil, err
	}

	// Both inputs become zero-origin, non-premultiplied 8-bit buffers.
	src := imaging.Clone(base)
	wm := imaging.Clone(mark)

	bw, bh := src.Rect.Dx(), src.Rect.Dy()
	mw, mh := wm.Rect.Dx(), wm.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, bw, bh))

	parallel.Line(bh, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < bw; x++ {
				i := src.PixOffset(x, y)
				o := dst.PixOffset(x, y)
				out := dst.Pix[o : o+4 : o+4]
				out[0], out[1], out[2], out[3] = src.Pix[i], src.Pix[i+1], src.Pix[i+2], 0xff

				wx, wy, ok := opts.Placement.Locate(x, y, mw, mh)
				if !ok {
					continue
				}
				j := wm.PixOffset(wx, wy)
				w := color.NRGBA{R: wm.Pix[j], G: wm.Pix[j+1], B: wm.Pix[j+2], A: wm.Pix[j+3]}
				if !opts.Mode.blends(w) {
					continue
				}
				out[0] = blend(opts.Opacity, w.R, out[0])
				out[1] = blend(opts.Opacity, w.G, out[1])
				out[2] = blend(opts.Opacity, w.B, out[2])
			}
		}
	})

	return dst, nil
}

// blend weights the watermark channel w by opacity percent against the base
// channel i. The division truncates; there is no rounding.
func blend(opacity int, w, i uint8) uint8 {
	return uint8((opacity*int(w) + (100-opacity)*int(i)) / 100)
}
