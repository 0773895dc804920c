package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bell-fighter/engine"
	"github.com/lixenwraith/bell-fighter/render"
)

type shapeFunc func(buf *render.RenderBuffer, v render.Viewport, cx, cy, r float64, c tcell.Color)

// EntityRenderer draws the frame's commands in order
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, cmd := range ctx.Frame.Commands {
		shape, color := spriteStyle(cmd)
		shape(buf, ctx.View, cmd.X, cmd.Y, cmd.Size, color)
	}
}

// spriteStyle maps a sprite to its rasterizer and color
func spriteStyle(cmd engine.DrawCommand) (shapeFunc, tcell.Color) {
	switch cmd.Sprite {
	case engine.SpritePlayer:
		switch cmd.Variant {
		case engine.TintInvincible:
			return render.FillShip, render.RgbPlayerInvincible
		case engine.TintBlink:
			return render.FillShip, render.RgbPlayerBlink
		}
		return render.FillShip, render.RgbPlayer
	case engine.SpriteZigZag:
		return render.FillRect, render.RgbZigZag
	case engine.SpriteCharger:
		return render.FillRect, render.RgbCharger
	case engine.SpriteTank:
		return render.FillRect, render.RgbTank
	case engine.SpritePlayerBullet:
		return render.FillCircle, render.RgbPlayerBullet
	case engine.SpriteReflectBullet:
		return render.FillCircle, render.RgbReflectBullet
	case engine.SpriteEnemyBullet:
		return render.FillCircle, render.RgbEnemyBullet
	case engine.SpriteExplosiveBullet:
		return render.FillCircle, render.RgbExplosiveBullet
	case engine.SpriteBell:
		if cmd.Variant >= 0 && cmd.Variant < len(render.BellColors) {
			return render.FillCircle, render.BellColors[cmd.Variant]
		}
		return render.FillCircle, render.RgbYellow
	case engine.SpriteBoss:
		return render.FillCircle, render.RgbBoss
	}
	return render.FillCircle, render.RgbWhite
}
