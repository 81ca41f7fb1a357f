package watermark

import "errors"

// Precondition errors returned by Compose and Options.Validate. They are
// wrapped with the offending values; test for them with errors.Is.
var (
	ErrEmptyWatermark       = errors.New("watermark has zero width or height")
	ErrWatermarkTooLarge    = errors.New("watermark is larger than the base image")
	ErrOpacityOutOfRange    = errors.New("opacity is out of range 0-100")
	ErrPlacementOutOfBounds = errors.New("watermark position is out of bounds")
	ErrNilMode              = errors.New("transparency mode is not set")
	ErrNilPlacement         = errors.New("placement is not set")
	ErrModeAlphaMismatch    = errors.New("transparency mode does not match the watermark's alpha capability")
	ErrUnknownMode          = errors.New("unknown transparency mode")
	ErrUnknownPlacement     = errors.New("unknown placement method")
)
