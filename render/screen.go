package render

import "github.com/gdamore/tcell/v2"

// Screen is the subset of tcell.Screen the renderer writes to
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}
