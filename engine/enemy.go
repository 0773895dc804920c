package engine

import (
	"math"

	"github.com/lixenwraith/bell-fighter/parameter"
	"github.com/lixenwraith/bell-fighter/vmath"
)

// EnemyKind is the regular enemy variant
type EnemyKind uint8

const (
	EnemyZigZag EnemyKind = iota
	EnemyCharger
	EnemyTank
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyZigZag:
		return "zigzag"
	case EnemyCharger:
		return "charger"
	case EnemyTank:
		return "tank"
	}
	return "unknown"
}

// enemyProfile holds the per-variant tuning
type enemyProfile struct {
	radius    float64
	hp        int
	score     int
	speedY    float64
	shotSpeed float64
	shotMin   int
	shotMax   int
}

var enemyProfiles = [...]enemyProfile{
	EnemyZigZag: {
		radius: parameter.ZigZagRadius, hp: parameter.ZigZagHP, score: parameter.ZigZagScore,
		speedY: parameter.ZigZagSpeedY, shotSpeed: parameter.ZigZagShotSpeed,
		shotMin: parameter.ZigZagShotMin, shotMax: parameter.ZigZagShotMax,
	},
	EnemyCharger: {
		radius: parameter.ChargerRadius, hp: parameter.ChargerHP, score: parameter.ChargerScore,
		speedY: parameter.ChargerDriftY, shotSpeed: parameter.ChargerShotSpeed,
		shotMin: parameter.ChargerShotMin, shotMax: parameter.ChargerShotMax,
	},
	EnemyTank: {
		radius: parameter.TankRadius, hp: parameter.TankHP, score: parameter.TankScore,
		speedY: parameter.TankSpeedY, shotSpeed: parameter.TankShotSpeed,
		shotMin: parameter.TankShotMin, shotMax: parameter.TankShotMax,
	},
}

// Enemy is a regular enemy of any variant
type Enemy struct {
	Body
	Kind      EnemyKind
	HP        int
	Score     int
	ShotTimer int
	VX, VY    float64

	// Phase is the zig-zag sine offset, Charged latches the charger dash
	Phase   float64
	Charged bool
}

// NewEnemy creates an enemy of the given kind
// The initial shot timer is drawn before any variant-specific randomness
func NewEnemy(kind EnemyKind, x, y float64, rng vmath.Rand) *Enemy {
	prof := enemyProfiles[kind]
	e := &Enemy{
		Body:      newBody(x, y, prof.radius),
		Kind:      kind,
		HP:        prof.hp,
		Score:     prof.score,
		ShotTimer: vmath.RandInt(rng, parameter.EnemyInitialShotMin, parameter.EnemyInitialShotMax),
		VY:        prof.speedY,
	}
	if kind == EnemyZigZag {
		e.Phase = rng.Float64() * 2 * math.Pi
	}
	return e
}

// Update moves the enemy by its variant rule, attempts a shot and culls it off-screen
func (e *Enemy) Update(g *Game) {
	switch e.Kind {
	case EnemyZigZag:
		e.Y += e.VY
		e.X += math.Sin(e.Y/parameter.ZigZagWavelength+e.Phase) * parameter.ZigZagAmplitude
		e.tryShoot(g)
		if e.Y > playfieldH+parameter.ZigZagCullMarginY {
			e.Kill()
		}

	case EnemyCharger:
		if !e.Charged && e.Y > parameter.ChargerTriggerY {
			p := g.Player
			dx, dy := p.X-e.X, p.Y-e.Y
			d := vmath.Magnitude(dx, dy)
			if d == 0 {
				d = 1
			}
			e.VX = dx / d * parameter.ChargerChargeSpeed
			e.VY = dy / d * parameter.ChargerChargeSpeed
			e.Charged = true
		}
		e.X += e.VX
		e.Y += e.VY
		e.tryShoot(g)
		m := float64(parameter.ChargerCullMargin)
		if e.Y > playfieldH+m || e.X < -m || e.X > playfieldW+m {
			e.Kill()
		}

	case EnemyTank:
		e.Y += e.VY
		e.tryShoot(g)
		if e.Y > playfieldH+parameter.TankCullMarginY {
			e.Kill()
		}
	}
}

// tryShoot counts the shot timer down and fires one aimed bullet when it expires
func (e *Enemy) tryShoot(g *Game) {
	if e.ShotTimer > 0 {
		e.ShotTimer--
		return
	}
	prof := enemyProfiles[e.Kind]
	e.ShotTimer = vmath.RandInt(g.rng, prof.shotMin, prof.shotMax)

	vx, vy, ok := vmath.DirectionTo(e.X, e.Y, g.Player.X, g.Player.Y, prof.shotSpeed)
	if !ok {
		return
	}
	g.EnemyBullets = append(g.EnemyBullets, NewEnemyBullet(e.X, e.Y, vx, vy))
}

// TakeDamage reduces hit points; on death it scores and may drop a bell
func (e *Enemy) TakeDamage(g *Game, dmg int) {
	e.HP -= dmg
	if e.HP > 0 {
		return
	}
	e.Kill()
	g.AddScore(e.Score)
	if g.rng.Float64() < g.BellDropRate {
		g.Bells = append(g.Bells, NewBell(e.X, e.Y))
	}
}
