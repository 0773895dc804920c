package render

import "github.com/gdamore/tcell/v2"

// MemoryScreen is an in-memory Screen for tests and headless rendering
type MemoryScreen struct {
	Cols, Rows int
	Runes      []rune
	Styles     []tcell.Style
	Shows      int
}

// NewMemoryScreen creates a blank cols x rows screen
func NewMemoryScreen(cols, rows int) *MemoryScreen {
	return &MemoryScreen{
		Cols:   cols,
		Rows:   rows,
		Runes:  make([]rune, cols*rows),
		Styles: make([]tcell.Style, cols*rows),
	}
}

func (m *MemoryScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || x >= m.Cols || y < 0 || y >= m.Rows {
		return
	}
	m.Runes[y*m.Cols+x] = primary
	m.Styles[y*m.Cols+x] = style
}

func (m *MemoryScreen) Size() (int, int) {
	return m.Cols, m.Rows
}

func (m *MemoryScreen) Show() {
	m.Shows++
}

// Row returns the runes of one row as a string
func (m *MemoryScreen) Row(y int) string {
	return string(m.Runes[y*m.Cols : (y+1)*m.Cols])
}
