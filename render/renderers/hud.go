package renderers

import (
	"unicode/utf8"

	"github.com/lixenwraith/bell-fighter/render"
)

// HUDRenderer writes the status column, boss hit points and end-state banner
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	h := ctx.Frame.HUD
	v := ctx.View
	left := max(v.OffsetX+1, 0)
	top := v.TopRow()

	lines := append([]string{h.Score, h.Lives, h.BellRate}, h.PowerUps...)
	for i, line := range lines {
		buf.SetText(left, top+i, line, render.RgbText)
	}

	if h.BossHP != "" {
		right := v.OffsetX + v.Width - 1 - utf8.RuneCountInString(h.BossHP)
		buf.SetText(right, top, h.BossHP, render.RgbText)
	}

	if h.Banner != "" {
		mid := (top + v.BottomRow()) / 2
		centered(buf, v, mid, h.Banner)
		if h.Footer != "" {
			centered(buf, v, mid+2, h.Footer)
		}
	}
}

func centered(buf *render.RenderBuffer, v render.Viewport, row int, s string) {
	x := v.OffsetX + (v.Width-utf8.RuneCountInString(s))/2
	buf.SetText(max(x, 0), row, s, render.RgbText)
}
