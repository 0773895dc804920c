package render

import "github.com/lixenwraith/bell-fighter/engine"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame engine.Frame
	View  Viewport
}
