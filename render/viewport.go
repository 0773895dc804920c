package render

import (
	"math"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// Viewport maps logical playfield units onto half-block pixels of a terminal
// Each cell holds two vertically stacked square pixels, each Scale logical units wide
type Viewport struct {
	Cols, Rows int
	Scale      float64

	// Pixel size of the playfield and its top-left pixel in the terminal
	Width, Height    int
	OffsetX, OffsetY int
}

// NewViewport fits the playfield into a cols x rows terminal, centered
func NewViewport(cols, rows int) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	s := math.Max(math.Ceil(float64(parameter.PlayfieldWidth)/float64(cols)),
		math.Ceil(float64(parameter.PlayfieldHeight)/float64(2*rows)))
	s = math.Max(s, 1)

	w := int(math.Ceil(parameter.PlayfieldWidth / s))
	h := int(math.Ceil(parameter.PlayfieldHeight / s))
	return Viewport{
		Cols:    cols,
		Rows:    rows,
		Scale:   s,
		Width:   w,
		Height:  h,
		OffsetX: (cols - w) / 2,
		OffsetY: ((2 * rows) - h) / 2,
	}
}

// ToPixel converts logical coordinates to a terminal pixel
func (v Viewport) ToPixel(x, y float64) (int, int) {
	return v.OffsetX + int(math.Floor(x/v.Scale)), v.OffsetY + int(math.Floor(y/v.Scale))
}

// ToLogical returns the logical coordinates of a pixel center
func (v Viewport) ToLogical(px, py int) (float64, float64) {
	return (float64(px-v.OffsetX) + 0.5) * v.Scale, (float64(py-v.OffsetY) + 0.5) * v.Scale
}

// TopRow is the first terminal row covered by the playfield
func (v Viewport) TopRow() int {
	return v.OffsetY / 2
}

// BottomRow is the last terminal row covered by the playfield
func (v Viewport) BottomRow() int {
	return (v.OffsetY + v.Height - 1) / 2
}

// contains reports whether a pixel lies inside the playfield
func (v Viewport) contains(px, py int) bool {
	return px >= v.OffsetX && px < v.OffsetX+v.Width && py >= v.OffsetY && py < v.OffsetY+v.Height
}
