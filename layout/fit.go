package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateSize is returned when a source or target box has no area.
var ErrDegenerateSize = errors.New("layout: degenerate size")

const epsilon = 1e-9

// Axis names the dimension a fit cropped.
type Axis int

const (
	CropNone Axis = iota
	CropWidth
	CropHeight
)

func (a Axis) String() string {
	switch a {
	case CropWidth:
		return "width"
	case CropHeight:
		return "height"
	default:
		return "none"
	}
}

// Placement positions a uniformly scaled image relative to the bottom-left
// corner of its target box. OffsetX and OffsetY are never positive, so the
// image always starts at or before the box edge.
type Placement struct {
	Scale   float64
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Cropped Axis
}

// Origin returns the absolute draw origin for a box whose bottom-left corner
// is at (x, y).
func (p Placement) Origin(x, y float64) (float64, float64) {
	return x + p.OffsetX, y + p.OffsetY
}

// Fit computes a center-crop placement: the image is scaled uniformly until
// it covers the whole target box, and the overflowing dimension is split
// evenly on both sides. At most one dimension overflows.
func Fit(naturalWidth, naturalHeight, targetWidth, targetHeight float64) (Placement, error) {
	if err := checkSizes(naturalWidth, naturalHeight, targetWidth, targetHeight); err != nil {
		return Placement{}, err
	}

	imageRatio := naturalWidth / naturalHeight
	targetRatio := targetWidth / targetHeight

	if imageRatio > targetRatio {
		scale := targetHeight / naturalHeight
		width, overflow := cover(naturalWidth*scale, targetWidth)
		p := Placement{
			Scale:   scale,
			Width:   width,
			Height:  targetHeight,
			OffsetX: clampOffset(-overflow/2, overflow),
		}
		if overflow > 0 {
			p.Cropped = CropWidth
		}
		return p, nil
	}

	scale := targetWidth / naturalWidth
	height, overflow := cover(naturalHeight*scale, targetHeight)
	p := Placement{
		Scale:   scale,
		Width:   targetWidth,
		Height:  height,
		OffsetY: clampOffset(-overflow/2, overflow),
	}
	if overflow > 0 {
		p.Cropped = CropHeight
	}
	return p, nil
}

// Contain computes a letterbox placement: the image is scaled uniformly to
// the largest size that fits inside the box and centered. Nothing is cropped.
func Contain(naturalWidth, naturalHeight, targetWidth, targetHeight float64) (Placement, error) {
	if err := checkSizes(naturalWidth, naturalHeight, targetWidth, targetHeight); err != nil {
		return Placement{}, err
	}

	scale := math.Min(targetWidth/naturalWidth, targetHeight/naturalHeight)
	width := math.Min(naturalWidth*scale, targetWidth)
	height := math.Min(naturalHeight*scale, targetHeight)
	return Placement{
		Scale:   scale,
		Width:   width,
		Height:  height,
		OffsetX: (targetWidth - width) / 2,
		OffsetY: (targetHeight - height) / 2,
	}, nil
}

// cover snaps a scaled length that is within rounding error of the target
// back onto it and reports the overflow.
func cover(scaled, target float64) (float64, float64) {
	if scaled-target < epsilon {
		return target, 0
	}
	return scaled, scaled - target
}

// clampOffset keeps the image edge between the box edge and the full overflow
// so the box stays covered on both sides.
func clampOffset(offset, overflow float64) float64 {
	if offset > 0 {
		return 0
	}
	if offset < -overflow {
		return -overflow
	}
	return offset
}

func checkSizes(sizes ...float64) error {
	for _, v := range sizes {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrDegenerateSize, sizes)
		}
	}
	return nil
}
