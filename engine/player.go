package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/bell-fighter/parameter"
	"github.com/lixenwraith/bell-fighter/vmath"
)

// Player is the controlled ship, its timers and its pickup-driven modifiers
type Player struct {
	Body
	Speed float64
	Lives int

	// Invuln is the post-hit grace window, InvincibleTimer the activated charge
	Invuln            int
	InvincibleTimer   int
	InvincibleCharges int
	Shield            int

	ShotCooldown int
	ShotInterval int
	Spread       bool
	Reflect      bool
	ScoreMult    int
}

// NewPlayer creates a ship with default loadout at the given position
func NewPlayer(x, y float64) *Player {
	return &Player{
		Body:         newBody(x, y, parameter.PlayerRadius),
		Speed:        parameter.PlayerSpeed,
		Lives:        parameter.PlayerLives,
		ShotInterval: parameter.PlayerShotInterval,
		ScoreMult:    1,
	}
}

// Update applies movement, ticks timers and fires when the cooldown allows
func (p *Player) Update(g *Game, c Controls) {
	vx := float64(c.axis(ControlRight, ControlLeft))
	vy := float64(c.axis(ControlDown, ControlUp))
	if vx != 0 && vy != 0 {
		vx *= parameter.DiagonalFactor
		vy *= parameter.DiagonalFactor
	}
	p.X = vmath.Clamp(p.X+vx*p.Speed, p.R, playfieldW-p.R)
	p.Y = vmath.Clamp(p.Y+vy*p.Speed, p.R, playfieldH-p.R)

	if p.Invuln > 0 {
		p.Invuln--
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}
	if p.ShotCooldown > 0 {
		p.ShotCooldown--
	}

	if c.Has(ControlFire) && p.ShotCooldown == 0 {
		p.Fire(g)
		p.ShotCooldown = p.ShotInterval
	}
}

// Fire emits one volley: a single forward shot, or three with spread
// With reflect enabled each shot independently rolls to become a reflecting bullet
func (p *Player) Fire(g *Game) {
	angles := []float64{parameter.PlayerBulletAngle}
	if p.Spread {
		angles = append(angles, parameter.PlayerSpreadLeft, parameter.PlayerSpreadRight)
	}

	mx, my := p.X, p.Y-parameter.PlayerMuzzleOffset
	for _, a := range angles {
		vx, vy := vmath.VecFromAngle(a, parameter.PlayerBulletSpeed)
		if p.Reflect && g.rng.Float64() < parameter.PlayerReflectChance {
			g.PlayerBullets = append(g.PlayerBullets, NewReflectBullet(mx, my, vx, vy, parameter.PlayerReflectBounce))
			continue
		}
		g.PlayerBullets = append(g.PlayerBullets, NewPlayerBullet(mx, my, vx, vy))
	}
}

// Hit costs a life unless a grace window or invincibility is active
// Losing the last life ends the run
func (p *Player) Hit(g *Game) {
	if p.Invuln > 0 || p.InvincibleTimer > 0 {
		return
	}
	p.Lives--
	p.Invuln = parameter.PlayerInvulnSteps
	g.log.Debug("player hit", zap.Int("lives", p.Lives))
	if p.Lives <= 0 {
		g.phases.HandleEvent(g, EventPlayerDown)
	}
}

// ActivateInvincible spends a banked charge when none is running
func (p *Player) ActivateInvincible() bool {
	if p.InvincibleCharges <= 0 || p.InvincibleTimer != 0 {
		return false
	}
	p.InvincibleCharges--
	p.InvincibleTimer = parameter.PlayerInvincibleSteps
	return true
}

// Blinking reports the dimmed frame of the post-hit blink cycle
func (p *Player) Blinking() bool {
	return p.Invuln != 0 && (p.Invuln/parameter.PlayerBlinkPeriod)%2 != 0
}
