// Package heightfield synthesizes square elevation grids with the
// diamond-square midpoint displacement algorithm.
package heightfield

import (
	"errors"
	"fmt"
)

// MaxWidth bounds the grid size a Generator will allocate (16385² floats is ~1 GiB).
const MaxWidth = 1<<14 + 1

var (
	// ErrIncompatibleWidth is returned when a width is not 2^k + 1 with k >= 1.
	ErrIncompatibleWidth = errors.New("incompatible width")

	// ErrWidthTooLarge is returned for widths above MaxWidth.
	ErrWidthTooLarge = errors.New("width too large")
)

// HeightField is an immutable width x width grid of elevations stored
// row-major: z selects the row, x the column.
type HeightField struct {
	width   int
	heights []float32
}

// FromHeights wraps a copy of heights as a HeightField. Any square width >= 1
// is accepted; the 2^k + 1 constraint applies only to generation.
func FromHeights(width int, heights []float32) (*HeightField, error) {
	if width < 1 {
		return nil, fmt.Errorf("width %d: must be positive", width)
	}
	if len(heights) != width*width {
		return nil, fmt.Errorf("width %d needs %d heights, got %d", width, width*width, len(heights))
	}

	data := make([]float32, len(heights))
	copy(data, heights)
	return &HeightField{width: width, heights: data}, nil
}

// Width returns the number of cells along each side.
func (h *HeightField) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// At returns the elevation at column x, row z.
func (h *HeightField) At(x, z int) float32 {
	return h.heights[z*h.width+x]
}

// Row returns a copy of row z.
func (h *HeightField) Row(z int) []float32 {
	row := make([]float32, h.width)
	copy(row, h.heights[z*h.width:(z+1)*h.width])
	return row
}

// Heights returns a copy of the whole grid in row-major order.
func (h *HeightField) Heights() []float32 {
	out := make([]float32, len(h.heights))
	copy(out, h.heights)
	return out
}

// MinMax returns the lowest and highest elevation.
func (h *HeightField) MinMax() (lo, hi float32) {
	if h.Width() == 0 {
		return 0, 0
	}
	lo, hi = h.heights[0], h.heights[0]
	for _, v := range h.heights[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// IsValidWidth reports whether width is 2^k + 1 for some k >= 1.
func IsValidWidth(width int) bool {
	size := width - 1
	return size >= 2 && size&(size-1) == 0
}

// WidthForLevel returns 2^level + 1.
func WidthForLevel(level int) int {
	return 1<<level + 1
}
