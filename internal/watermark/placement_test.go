package watermark

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingle_Locate(t *testing.T) {
	p := Single{X: 3, Y: 2}

	tests := []struct {
		x, y   int
		wx, wy int
		ok     bool
	}{
		{3, 2, 0, 0, true},
		{6, 4, 3, 2, true},
		{7, 2, 0, 0, false},
		{3, 5, 0, 0, false},
		{2, 2, 0, 0, false},
		{3, 1, 0, 0, false},
		{0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		wx, wy, ok := p.Locate(tt.x, tt.y, 4, 3)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		if ok {
			assert.Equal(t, [2]int{tt.wx, tt.wy}, [2]int{wx, wy}, "(%d,%d)", tt.x, tt.y)
		}
	}
}

func TestTiled_Locate(t *testing.T) {
	var p Tiled
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			wx, wy, ok := p.Locate(x, y, 3, 7)
			require.True(t, ok)
			assert.Equal(t, x%3, wx)
			assert.Equal(t, y%7, wy)
		}
	}
}

func TestLocate_OrderIndependent(t *testing.T) {
	// Locate has no memory: visiting in reverse gives the same answers.
	for _, p := range []Placement{Single{X: 1, Y: 1}, Tiled{}} {
		forward := map[image.Point]image.Point{}
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				if wx, wy, ok := p.Locate(x, y, 2, 3); ok {
					forward[image.Pt(x, y)] = image.Pt(wx, wy)
				}
			}
		}
		for y := 5; y >= 0; y-- {
			for x := 5; x >= 0; x-- {
				wx, wy, ok := p.Locate(x, y, 2, 3)
				want, covered := forward[image.Pt(x, y)]
				assert.Equal(t, covered, ok)
				if ok {
					assert.Equal(t, want, image.Pt(wx, wy))
				}
			}
		}
	}
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("single", 4, 5)
	require.NoError(t, err)
	assert.Equal(t, Single{X: 4, Y: 5}, p)

	p, err = ParsePlacement("GRID", 4, 5)
	require.NoError(t, err)
	assert.Equal(t, Tiled{}, p)

	p, err = ParsePlacement(" Single ", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Single{}, p)

	_, err = ParsePlacement("tile", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownPlacement)
}

func TestCoverage(t *testing.T) {
	base := image.Rect(0, 0, 10, 8)
	mark := image.Rect(0, 0, 3, 2)

	assert.Equal(t, image.Rect(4, 5, 7, 7), Coverage(base, mark, Single{X: 4, Y: 5}))
	assert.Equal(t, image.Rect(0, 0, 10, 8), Coverage(base, mark, Tiled{}))
	assert.Equal(t, image.Rect(0, 0, 10, 8), Coverage(image.Rect(3, 3, 13, 11), mark, Tiled{}))
	assert.True(t, Coverage(base, mark, nil).Empty())
}

func TestPlacement_String(t *testing.T) {
	assert.Equal(t, "single(1,2)", Single{X: 1, Y: 2}.String())
	assert.Equal(t, "grid", Tiled{}.String())
}
