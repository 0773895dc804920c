package renderers

import "github.com/lixenwraith/bell-fighter/render"

// BackgroundRenderer paints the playfield area, the rest stays border colored
type BackgroundRenderer struct{}

func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	for py := v.OffsetY; py < v.OffsetY+v.Height; py++ {
		for px := v.OffsetX; px < v.OffsetX+v.Width; px++ {
			buf.SetPixel(px, py, render.RgbBlack)
		}
	}
}
