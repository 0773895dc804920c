package renderers

import "github.com/lixenwraith/bell-fighter/render"

// DebugRenderer outlines every collision radius while the overlay is toggled on
type DebugRenderer struct{}

func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

func (r *DebugRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Frame.Debug
}

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, cmd := range ctx.Frame.Commands {
		render.StrokeCircle(buf, ctx.View, cmd.X, cmd.Y, cmd.HitRadius, render.RgbDebugOutline)
	}
}
