package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (RGBColor{255, 128, 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.RGBA != (RGBAColor{255, 128, 64, 255}) {
		t.Errorf("RGBA: got %+v, want (255,128,64,255)", result.RGBA)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000", HSLColor{0, 100, 50}},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestSampleColor_NonPremultiplied(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{200, 100, 50, 128})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGBA != (RGBAColor{200, 100, 50, 128}) {
		t.Errorf("RGBA: got %+v, want (200,100,50,128)", result.RGBA)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBColor
	}{
		{"255 0 0", RGBColor{255, 0, 0}},
		{"0 0 0", RGBColor{0, 0, 0}},
		{"12 34 56", RGBColor{12, 34, 56}},
		{"  1 2 3\n", RGBColor{1, 2, 3}},
		{"#00FF80", RGBColor{0, 255, 128}},
		{"#0000ff", RGBColor{0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	tests := []string{
		"",
		"255 0",
		"255 0 0 0",
		"256 0 0",
		"-1 0 0",
		"a b c",
		"1  2 3",
		"1,2,3",
		"#GG0000",
		"#12345",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q): got %v, want ErrInvalidColor", in, err)
			}
		})
	}
}

func TestRGBColor_Hex(t *testing.T) {
	if got := (RGBColor{1, 171, 255}).Hex(); got != "#01ABFF" {
		t.Errorf("Hex: got %s, want #01ABFF", got)
	}
}

func TestParseColor_ShortHex(t *testing.T) {
	got, err := ParseColor("#F00")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if got != (RGBColor{255, 0, 0}) {
		t.Errorf("got %+v, want (255,0,0)", got)
	}
}
