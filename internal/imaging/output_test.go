package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		path string
		want imaging.Format
	}{
		{"out.png", imaging.PNG},
		{"out.jpg", imaging.JPEG},
		{"dir.v2/out.png", imaging.PNG},
		{"a.b.c.jpg", imaging.JPEG},
		{"png", imaging.PNG},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := OutputFormat(tt.path)
			if err != nil {
				t.Fatalf("OutputFormat failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputFormat(%q): got %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputFormat_Unsupported(t *testing.T) {
	for _, path := range []string{"out.jpeg", "out.PNG", "out.gif", "out", "out.png.bak"} {
		t.Run(path, func(t *testing.T) {
			_, err := OutputFormat(path)
			if !errors.Is(err, ErrUnsupportedExtension) {
				t.Errorf("OutputFormat(%q): got %v, want ErrUnsupportedExtension", path, err)
			}
		})
	}
}

func TestSave(t *testing.T) {
	img := createInMemoryImage(16, 12, color.RGBA{10, 200, 30, 255})
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(img, path, WithJPEGQuality(80)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := NewImageCache().Load(path)
			if err != nil {
				t.Fatalf("reload failed: %v", err)
			}
			if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 12 {
				t.Errorf("dimensions: got %v, want 16x12", got.Bounds())
			}
		})
	}
}

func TestSave_PNGIsLossless(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	src.SetRGBA(1, 0, color.RGBA{127, 0, 127, 255})
	src.SetRGBA(2, 0, color.RGBA{255, 254, 253, 255})

	path := filepath.Join(t.TempDir(), "exact.png")
	if err := Save(src, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := NewImageCache().Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		r1, g1, b1, _ := src.At(x, 0).RGBA()
		r2, g2, b2, _ := got.At(x, 0).RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Errorf("pixel %d: got (%d,%d,%d), want (%d,%d,%d)", x, r2>>8, g2>>8, b2>>8, r1>>8, g1>>8, b1>>8)
		}
	}
}

func TestSave_UnsupportedExtensionWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	err := Save(createInMemoryImage(2, 2, color.White), path)
	if !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("Save: got %v, want ErrUnsupportedExtension", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Save created a file for an unsupported extension")
	}
}
