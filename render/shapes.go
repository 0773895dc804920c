package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Shape rasterizers work in logical coordinates and sample pixel centers
// Every filled shape covers at least the pixel under its center so small bullets stay visible

// FillCircle draws a solid disc
func FillCircle(buf *RenderBuffer, v Viewport, cx, cy, r float64, c tcell.Color) {
	fillWhere(buf, v, cx-r, cy-r, cx+r, cy+r, c, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	})
	plotCenter(buf, v, cx, cy, c)
}

// FillRect draws an axis-aligned rectangle centered on (cx, cy) with half-size r
func FillRect(buf *RenderBuffer, v Viewport, cx, cy, r float64, c tcell.Color) {
	x0, y0 := math.Floor(cx-r), math.Floor(cy-r)
	x1, y1 := x0+2*r, y0+2*r
	fillWhere(buf, v, x0, y0, x1, y1, c, func(x, y float64) bool {
		return x >= x0 && x < x1 && y >= y0 && y < y1
	})
	plotCenter(buf, v, cx, cy, c)
}

// FillShip draws the player triangle: apex above center, base below
func FillShip(buf *RenderBuffer, v Viewport, cx, cy, r float64, c tcell.Color) {
	ax, ay := cx, cy-r*4/3
	bx, by := cx-r, cy+r
	qx, qy := cx+r, cy+r
	fillWhere(buf, v, bx, ay, qx, by, c, func(x, y float64) bool {
		d1 := edge(x, y, ax, ay, bx, by)
		d2 := edge(x, y, bx, by, qx, qy)
		d3 := edge(x, y, qx, qy, ax, ay)
		neg := d1 < 0 || d2 < 0 || d3 < 0
		pos := d1 > 0 || d2 > 0 || d3 > 0
		return !(neg && pos)
	})
	plotCenter(buf, v, cx, cy, c)
}

// StrokeCircle draws a one-pixel ring, used by the collision overlay
func StrokeCircle(buf *RenderBuffer, v Viewport, cx, cy, r float64, c tcell.Color) {
	half := v.Scale / 2
	fillWhere(buf, v, cx-r-half, cy-r-half, cx+r+half, cy+r+half, c, func(x, y float64) bool {
		d := math.Hypot(x-cx, y-cy)
		return math.Abs(d-r) <= half
	})
}

func edge(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

// fillWhere tests every playfield pixel in the bounding box against inside
func fillWhere(buf *RenderBuffer, v Viewport, minX, minY, maxX, maxY float64, c tcell.Color, inside func(x, y float64) bool) {
	px0, py0 := v.ToPixel(minX, minY)
	px1, py1 := v.ToPixel(maxX, maxY)
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			if !v.contains(px, py) {
				continue
			}
			if x, y := v.ToLogical(px, py); inside(x, y) {
				buf.SetPixel(px, py, c)
			}
		}
	}
}

func plotCenter(buf *RenderBuffer, v Viewport, cx, cy float64, c tcell.Color) {
	if px, py := v.ToPixel(cx, cy); v.contains(px, py) {
		buf.SetPixel(px, py, c)
	}
}
