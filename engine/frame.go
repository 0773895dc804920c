package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// Sprite identifies what a draw command depicts, the renderer maps it to shape and color
type Sprite uint8

const (
	SpritePlayer Sprite = iota
	SpriteZigZag
	SpriteCharger
	SpriteTank
	SpritePlayerBullet
	SpriteReflectBullet
	SpriteEnemyBullet
	SpriteExplosiveBullet
	SpriteBell
	SpriteBoss
)

// Tint variants of SpritePlayer
const (
	TintNormal = iota
	TintBlink
	TintInvincible
)

// DrawCommand is one entity in playfield coordinates
// Size is the draw radius, HitRadius the collision radius for the debug overlay
// Variant carries the bell effect index or the player tint
type DrawCommand struct {
	Sprite    Sprite
	X, Y      float64
	Size      float64
	HitRadius float64
	Variant   int
}

// HUD is the text overlay content
type HUD struct {
	Score    string
	Lives    string
	BellRate string
	PowerUps []string
	BossHP   string
	Banner   string
	Footer   string
}

// Frame is a read-only view of one simulation state, ordered back to front
type Frame struct {
	Phase    Phase
	Debug    bool
	Commands []DrawCommand
	HUD      HUD
}

// Frame captures the current state for presentation
// Draw order: player, enemies, player bullets, enemy bullets, bells, boss
func (g *Game) Frame() Frame {
	f := Frame{
		Phase: g.Phase(),
		Debug: g.Debug,
		Commands: make([]DrawCommand, 0,
			1+len(g.Enemies)+len(g.PlayerBullets)+len(g.EnemyBullets)+len(g.Bells)+1),
	}

	p := g.Player
	tint := TintNormal
	switch {
	case p.InvincibleTimer > 0:
		tint = TintInvincible
	case p.Blinking():
		tint = TintBlink
	}
	f.Commands = append(f.Commands, DrawCommand{Sprite: SpritePlayer, X: p.X, Y: p.Y, Size: p.R, HitRadius: p.R, Variant: tint})

	for _, e := range g.Enemies {
		s := SpriteZigZag
		switch e.Kind {
		case EnemyCharger:
			s = SpriteCharger
		case EnemyTank:
			s = SpriteTank
		}
		f.Commands = append(f.Commands, DrawCommand{Sprite: s, X: e.X, Y: e.Y, Size: e.R, HitRadius: e.R})
	}

	for _, b := range g.PlayerBullets {
		s := SpritePlayerBullet
		if b.Kind == ProjectileReflecting {
			s = SpriteReflectBullet
		}
		f.Commands = append(f.Commands, DrawCommand{Sprite: s, X: b.X, Y: b.Y, Size: b.R, HitRadius: b.R})
	}

	for _, b := range g.EnemyBullets {
		cmd := DrawCommand{Sprite: SpriteEnemyBullet, X: b.X, Y: b.Y, Size: b.R, HitRadius: b.R}
		if b.Kind == ProjectileExplosive {
			cmd.Sprite = SpriteExplosiveBullet
			cmd.Size = parameter.ExplosiveDrawRadius
		}
		f.Commands = append(f.Commands, cmd)
	}

	for _, b := range g.Bells {
		f.Commands = append(f.Commands, DrawCommand{Sprite: SpriteBell, X: b.X, Y: b.Y, Size: b.R, HitRadius: b.R, Variant: int(b.Effect)})
	}

	if b := g.Boss; b != nil {
		f.Commands = append(f.Commands, DrawCommand{Sprite: SpriteBoss, X: b.X, Y: b.Y, Size: b.R, HitRadius: b.R})
	}

	f.HUD = g.hud()
	return f
}

// bellPercent truncates like the reference HUD; the epsilon keeps 0.57 at 57
func bellPercent(rate float64) int {
	return int(math.Floor(rate*100 + 1e-9))
}

func (g *Game) hud() HUD {
	p := g.Player
	h := HUD{
		Score:    fmt.Sprintf(parameter.LabelScore, g.Score),
		Lives:    fmt.Sprintf(parameter.LabelLives, p.Lives),
		BellRate: fmt.Sprintf(parameter.LabelBellRate, bellPercent(g.BellDropRate)),
	}

	if p.Spread {
		h.PowerUps = append(h.PowerUps, parameter.LabelSpread)
	}
	if p.ShotInterval < parameter.PlayerShotInterval {
		h.PowerUps = append(h.PowerUps, parameter.LabelRapid)
	}
	if p.ScoreMult > 1 {
		h.PowerUps = append(h.PowerUps, fmt.Sprintf(parameter.LabelMult, p.ScoreMult))
	}
	if p.Reflect {
		h.PowerUps = append(h.PowerUps, parameter.LabelReflect)
	}
	if p.Shield > 0 {
		h.PowerUps = append(h.PowerUps, fmt.Sprintf(parameter.LabelShield, p.Shield))
	}
	if p.InvincibleCharges > 0 {
		h.PowerUps = append(h.PowerUps, fmt.Sprintf(parameter.LabelCharges, p.InvincibleCharges))
	}
	if p.InvincibleTimer > 0 {
		h.PowerUps = append(h.PowerUps, parameter.LabelInvincible)
	}

	if g.Boss != nil {
		h.BossHP = fmt.Sprintf(parameter.LabelBossHP, g.Boss.HP)
	}

	switch g.Phase() {
	case PhaseGameOver:
		h.Banner = parameter.LabelGameOver
	case PhaseClear:
		h.Banner = parameter.LabelClear
		h.Footer = fmt.Sprintf(parameter.LabelFinalScore, g.Score)
	}
	return h
}
