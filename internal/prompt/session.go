// Package prompt runs the question-and-answer flow that collects a
// watermark job from a terminal.
//
// Each answer is validated as soon as it is read. The first invalid answer
// ends the session with an *Error whose message is meant for the user;
// nothing is written to disk in that case.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/ironsheep/image-watermark/internal/imaging"
	"github.com/ironsheep/image-watermark/internal/watermark"
)

// ErrNoInput is returned when the input ends while an answer is expected.
var ErrNoInput = errors.New("no more input")

// Error is a validation failure. Msg is shown to the user verbatim.
type Error struct {
	Msg string
	Err error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

func fail(err error, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Err: err}
}

// Job is everything collected by a session, ready for watermark.Compose.
type Job struct {
	ImagePath     string
	WatermarkPath string
	OutputPath    string

	Image     image.Image
	Watermark image.Image

	Options watermark.Options
}

// Session asks questions on out and reads one answer per line from in.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	cache *imaging.ImageCache
}

// New creates a session. Images are loaded through cache.
func New(in io.Reader, out io.Writer, cache *imaging.ImageCache) *Session {
	return &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		cache: cache,
	}
}

// Collect asks every question in order and returns the validated job.
func (s *Session) Collect() (*Job, error) {
	job := &Job{}
	var err error

	s.say("Input the image filename:")
	if job.ImagePath, job.Image, err = s.askImage("image"); err != nil {
		return nil, err
	}
	s.say("Input the watermark image filename:")
	if job.WatermarkPath, job.Watermark, err = s.askImage("watermark"); err != nil {
		return nil, err
	}

	base, mark := job.Image.Bounds(), job.Watermark.Bounds()
	if mark.Dx() > base.Dx() || mark.Dy() > base.Dy() {
		return nil, fail(watermark.ErrWatermarkTooLarge, "The watermark's dimensions are larger.")
	}

	if job.Options.Mode, err = s.askMode(imaging.HasAlpha(job.Watermark)); err != nil {
		return nil, err
	}
	if job.Options.Opacity, err = s.askOpacity(); err != nil {
		return nil, err
	}
	if job.Options.Placement, err = s.askPlacement(base.Dx()-mark.Dx(), base.Dy()-mark.Dy()); err != nil {
		return nil, err
	}

	s.say("Input the output image filename (jpg or png extension):")
	if job.OutputPath, err = s.readLine(); err != nil {
		return nil, err
	}
	if _, err := imaging.OutputFormat(job.OutputPath); err != nil {
		return nil, fail(err, `The output file extension isn't "jpg" or "png".`)
	}

	return job, nil
}

func (s *Session) askImage(role string) (string, image.Image, error) {
	name, err := s.readLine()
	if err != nil {
		return "", nil, err
	}
	img, err := s.cache.Load(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fail(err, "The file %s doesn't exist.", name)
	}
	if err != nil {
		return "", nil, fail(err, "The file %s isn't a readable image.", name)
	}
	if err := imaging.CheckColorDepth(img, role); err != nil {
		return "", nil, fail(err, "%s", err.Error())
	}
	return name, img, nil
}

// askMode offers the alpha channel for watermarks that have one, and a
// transparency color otherwise.
func (s *Session) askMode(hasAlpha bool) (watermark.Mode, error) {
	if hasAlpha {
		s.say("Do you want to use the watermark's Alpha channel?")
		yes, err := s.askYes()
		if err != nil || !yes {
			return watermark.Opaque{}, err
		}
		return watermark.AlphaBlend{}, nil
	}

	s.say("Do you want to set a transparency color?")
	yes, err := s.askYes()
	if err != nil || !yes {
		return watermark.Opaque{}, err
	}

	s.say("Input a transparency color ([Red] [Green] [Blue]):")
	line, err := s.readLine()
	if err != nil {
		return nil, err
	}
	key, err := imaging.ParseColor(line)
	if err != nil {
		return nil, fail(err, "The transparency color input is invalid.")
	}
	return watermark.ChromaKey{Key: key}, nil
}

func (s *Session) askOpacity() (int, error) {
	s.say("Input the watermark transparency percentage (Integer 0-100):")
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fail(err, "The transparency percentage isn't an integer number.")
	}
	if n < 0 || n > 100 {
		return 0, fail(watermark.ErrOpacityOutOfRange, "The transparency percentage is out of range.")
	}
	return n, nil
}

// askPlacement reads the position method and, for "single", a position
// within [0-dx] x [0-dy].
func (s *Session) askPlacement(dx, dy int) (watermark.Placement, error) {
	s.say("Choose the position method (single, grid):")
	method, err := s.readLine()
	if err != nil {
		return nil, err
	}
	p, err := watermark.ParsePlacement(method, 0, 0)
	if err != nil || method != strings.TrimSpace(method) {
		return nil, fail(err, "The position method input is invalid.")
	}
	if _, ok := p.(watermark.Tiled); ok {
		return p, nil
	}

	s.say(fmt.Sprintf("Input the watermark position ([x 0-%d] [y 0-%d]):", dx, dy))
	line, err := s.readLine()
	if err != nil {
		return nil, err
	}
	var pos []int
	for _, f := range strings.Split(line, " ") {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fail(err, "The position input is invalid.")
		}
		pos = append(pos, n)
	}
	if len(pos) != 2 || pos[0] < 0 || pos[0] > dx || pos[1] < 0 || pos[1] > dy {
		return nil, fail(watermark.ErrPlacementOutOfBounds, "The position input is out of range.")
	}
	return watermark.Single{X: pos[0], Y: pos[1]}, nil
}

func (s *Session) askYes() (bool, error) {
	line, err := s.readLine()
	if err != nil {
		return false, err
	}
	return strings.ToLower(line) == "yes", nil
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), nil
}

func (s *Session) say(msg string) {
	fmt.Fprintln(s.out, msg)
}
