package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitWiderImageCropsWidth(t *testing.T) {
	// 2000x1000 into a 520x650 portrait box
	p, err := Fit(2000, 1000, 520, 650)
	require.NoError(t, err)

	assert.Equal(t, CropWidth, p.Cropped)
	assert.InDelta(t, 0.65, p.Scale, 1e-9)
	assert.InDelta(t, 1300, p.Width, 1e-9)
	assert.Equal(t, 650.0, p.Height)
	assert.InDelta(t, -390, p.OffsetX, 1e-9)
	assert.Zero(t, p.OffsetY)

	x, y := p.Origin(100, 200)
	assert.InDelta(t, -290, x, 1e-9)
	assert.Equal(t, 200.0, y)
}

func TestFitTallerImageCropsHeight(t *testing.T) {
	p, err := Fit(1000, 2000, 812.5, 650)
	require.NoError(t, err)

	assert.Equal(t, CropHeight, p.Cropped)
	assert.Equal(t, 812.5, p.Width)
	assert.InDelta(t, 1625, p.Height, 1e-9)
	assert.InDelta(t, -487.5, p.OffsetY, 1e-9)
	assert.Zero(t, p.OffsetX)
}

func TestFitSameRatioNoCrop(t *testing.T) {
	p, err := Fit(400, 500, 520, 650)
	require.NoError(t, err)

	assert.Equal(t, CropNone, p.Cropped)
	assert.InDelta(t, 520, p.Width, 1e-9)
	assert.InDelta(t, 650, p.Height, 1e-9)
}

func TestFitRoundingOverflowIsNotACrop(t *testing.T) {
	p, err := Fit(1+1e-12, 1, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, CropNone, p.Cropped)
	assert.Equal(t, 100.0, p.Width)
	assert.Zero(t, p.OffsetX)

	p, err = Fit(1, 1+1e-12, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, CropNone, p.Cropped)
	assert.Equal(t, 100.0, p.Height)
}

func TestFitAlwaysCoversBox(t *testing.T) {
	naturals := [][2]float64{{1, 1}, {3, 1}, {1, 3}, {1920, 1080}, {1080, 1920}, {7, 13}, {4000, 3}, {333, 333.3}}
	targets := [][2]float64{{200, 80}, {520, 650}, {812.5, 650}, {400, 500}, {1, 1}, {1000, 0.5}}

	for _, n := range naturals {
		for _, tgt := range targets {
			p, err := Fit(n[0], n[1], tgt[0], tgt[1])
			require.NoError(t, err)

			assert.GreaterOrEqual(t, p.Width, tgt[0], "width for %v into %v", n, tgt)
			assert.GreaterOrEqual(t, p.Height, tgt[1], "height for %v into %v", n, tgt)
			assert.LessOrEqual(t, p.OffsetX, 0.0)
			assert.LessOrEqual(t, p.OffsetY, 0.0)
			// the image must reach the far edges of the box
			assert.GreaterOrEqual(t, p.OffsetX+p.Width, tgt[0]-1e-9)
			assert.GreaterOrEqual(t, p.OffsetY+p.Height, tgt[1]-1e-9)
			// uniform scale, at most one axis overflows
			assert.InDelta(t, n[0]/n[1], p.Width/p.Height, 1e-6*n[0]/n[1]+1e-6)
			assert.False(t, p.Width > tgt[0]+1e-9 && p.Height > tgt[1]+1e-9)
		}
	}
}

func TestFitRejectsDegenerateSizes(t *testing.T) {
	for _, sizes := range [][4]float64{{0, 10, 10, 10}, {10, 0, 10, 10}, {10, 10, 0, 10}, {10, 10, 10, -1}} {
		_, err := Fit(sizes[0], sizes[1], sizes[2], sizes[3])
		assert.ErrorIs(t, err, ErrDegenerateSize)
	}
}

func TestContainCentersInsideBox(t *testing.T) {
	p, err := Contain(300, 100, 150, 75)
	require.NoError(t, err)

	assert.InDelta(t, 150, p.Width, 1e-9)
	assert.InDelta(t, 50, p.Height, 1e-9)
	assert.Zero(t, p.OffsetX)
	assert.InDelta(t, 12.5, p.OffsetY, 1e-9)
	assert.Equal(t, CropNone, p.Cropped)
}
