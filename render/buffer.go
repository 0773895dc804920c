package render

import "github.com/gdamore/tcell/v2"

const halfBlock = '▀'

type textCell struct {
	r  rune
	fg tcell.Color
}

// RenderBuffer is a half-block pixel canvas with a text overlay
// Pixels are (cols, 2*rows), text cells are (cols, rows) and win over pixels on flush
type RenderBuffer struct {
	pixels []tcell.Color
	text   []textCell
	cols   int
	rows   int
}

// NewRenderBuffer creates a buffer for a cols x rows terminal
func NewRenderBuffer(cols, rows int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	px := cols * rows * 2
	if cap(b.pixels) < px {
		b.pixels = make([]tcell.Color, px)
		b.text = make([]textCell, cols*rows)
	} else {
		b.pixels = b.pixels[:px]
		b.text = b.text[:cols*rows]
	}
	b.cols, b.rows = cols, rows
	b.Clear()
}

// Clear resets pixels to the border color and removes all text
func (b *RenderBuffer) Clear() {
	for i := range b.pixels {
		b.pixels[i] = RgbBorder
	}
	clear(b.text)
}

// Bounds returns the terminal size the buffer covers
func (b *RenderBuffer) Bounds() (cols, rows int) {
	return b.cols, b.rows
}

// SetPixel colors one pixel, out of range writes are dropped
func (b *RenderBuffer) SetPixel(px, py int, c tcell.Color) {
	if px < 0 || px >= b.cols || py < 0 || py >= b.rows*2 {
		return
	}
	b.pixels[py*b.cols+px] = c
}

// Pixel returns the color at a pixel, the border color when out of range
func (b *RenderBuffer) Pixel(px, py int) tcell.Color {
	if px < 0 || px >= b.cols || py < 0 || py >= b.rows*2 {
		return RgbBorder
	}
	return b.pixels[py*b.cols+px]
}

// SetText writes a string starting at a cell, clipped at the right edge
func (b *RenderBuffer) SetText(x, y int, s string, fg tcell.Color) {
	if y < 0 || y >= b.rows {
		return
	}
	for _, r := range s {
		if x >= b.cols {
			return
		}
		if x >= 0 {
			b.text[y*b.cols+x] = textCell{r: r, fg: fg}
		}
		x++
	}
}

// Text returns the rune at a cell, 0 when no text is set
func (b *RenderBuffer) Text(x, y int) rune {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return 0
	}
	return b.text[y*b.cols+x].r
}

// FlushToScreen writes every cell, text over the pixel pair beneath it
func (b *RenderBuffer) FlushToScreen(s Screen) {
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			top := b.pixels[(2*y)*b.cols+x]
			bottom := b.pixels[(2*y+1)*b.cols+x]
			if t := b.text[y*b.cols+x]; t.r != 0 {
				s.SetContent(x, y, t.r, nil, tcell.StyleDefault.Foreground(t.fg).Background(top))
				continue
			}
			s.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	s.Show()
}
