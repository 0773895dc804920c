package render

import "github.com/lixenwraith/bell-fighter/engine"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    Screen
	buffer    *RenderBuffer
	view      Viewport
	renderers []rendererEntry
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen Screen) *RenderOrchestrator {
	cols, rows := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(cols, rows),
		view:      NewViewport(cols, rows),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort,
// equal priorities keep registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority}

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize re-reads the screen size and refits the playfield
func (o *RenderOrchestrator) Resize() {
	cols, rows := o.screen.Size()
	o.buffer.Resize(cols, rows)
	o.view = NewViewport(cols, rows)
}

// Viewport returns the current playfield mapping
func (o *RenderOrchestrator) Viewport() Viewport {
	return o.view
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(f engine.Frame) {
	ctx := RenderContext{Frame: f, View: o.view}
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
}
