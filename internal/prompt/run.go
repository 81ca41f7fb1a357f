package prompt

import (
	"fmt"
	"io"

	"github.com/ironsheep/image-watermark/internal/imaging"
	"github.com/ironsheep/image-watermark/internal/watermark"
)

// Run collects a job, composes it and saves the result, then confirms on out.
func Run(in io.Reader, out io.Writer, cache *imaging.ImageCache, opts ...imaging.SaveOption) (*Job, error) {
	s := New(in, out, cache)
	job, err := s.Collect()
	if err != nil {
		return nil, err
	}

	img, err := watermark.Compose(job.Image, job.Watermark, job.Options)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	if err := imaging.Save(img, job.OutputPath, opts...); err != nil {
		return nil, err
	}

	s.say(fmt.Sprintf("The watermarked image %s has been created.", job.OutputPath))
	return job, nil
}
