package engine

import (
	"github.com/lixenwraith/bell-fighter/parameter"
	"github.com/lixenwraith/bell-fighter/vmath"
)

// ProjectileKind selects the movement rule of a projectile
type ProjectileKind uint8

const (
	ProjectileStandard ProjectileKind = iota
	ProjectileReflecting
	ProjectileExplosive
)

// Projectile is a bullet owned by either side
// Bounces is only meaningful for reflecting bullets, Fuse for explosive ones
type Projectile struct {
	Body
	VX, VY  float64
	Kind    ProjectileKind
	Hostile bool
	Bounces int
	Fuse    int
}

// NewPlayerBullet creates a straight player shot
func NewPlayerBullet(x, y, vx, vy float64) *Projectile {
	return &Projectile{Body: newBody(x, y, parameter.PlayerBulletRadius), VX: vx, VY: vy}
}

// NewReflectBullet creates a player shot that bounces off walls
func NewReflectBullet(x, y, vx, vy float64, bounces int) *Projectile {
	return &Projectile{
		Body:    newBody(x, y, parameter.PlayerBulletRadius),
		VX:      vx,
		VY:      vy,
		Kind:    ProjectileReflecting,
		Bounces: bounces,
	}
}

// NewEnemyBullet creates a straight hostile shot
func NewEnemyBullet(x, y, vx, vy float64) *Projectile {
	return &Projectile{Body: newBody(x, y, parameter.EnemyBulletRadius), VX: vx, VY: vy, Hostile: true}
}

// NewExplosiveBullet creates a hostile shot that bursts into a ring when its fuse runs out
func NewExplosiveBullet(x, y, vx, vy float64, fuse int) *Projectile {
	return &Projectile{
		Body:    newBody(x, y, parameter.EnemyBulletRadius),
		VX:      vx,
		VY:      vy,
		Kind:    ProjectileExplosive,
		Hostile: true,
		Fuse:    fuse,
	}
}

// Update advances the projectile one step according to its kind
func (b *Projectile) Update(g *Game) {
	b.X += b.VX
	b.Y += b.VY

	switch b.Kind {
	case ProjectileReflecting:
		b.bounce()
		if b.Alive && b.outside(parameter.ReflectMargin) {
			b.Kill()
		}
	case ProjectileExplosive:
		b.Fuse--
		if b.Fuse <= 0 {
			b.explode(g)
			b.Kill()
			return
		}
		if b.outside(parameter.BulletMargin) {
			b.Kill()
		}
	default:
		if b.outside(parameter.BulletMargin) {
			b.Kill()
		}
	}
}

// bounce reflects off playfield edges, both axes together count as a single contact
func (b *Projectile) bounce() {
	contact := false
	if b.X-b.R <= 0 || b.X+b.R >= playfieldW {
		b.VX = -b.VX
		b.X = vmath.Clamp(b.X, b.R, playfieldW-b.R)
		contact = true
	}
	if b.Y-b.R <= 0 || b.Y+b.R >= playfieldH {
		b.VY = -b.VY
		b.Y = vmath.Clamp(b.Y, b.R, playfieldH-b.R)
		contact = true
	}
	if !contact {
		return
	}
	if b.Bounces > 0 {
		b.Bounces--
		return
	}
	b.Kill()
}

// explode appends the burst ring; the new bullets first move on the following step
func (b *Projectile) explode(g *Game) {
	step := 360.0 / parameter.ExplosionRingCount
	for i := 0; i < parameter.ExplosionRingCount; i++ {
		vx, vy := vmath.VecFromAngle(float64(i)*step, parameter.ExplosionRingSpeed)
		g.EnemyBullets = append(g.EnemyBullets, NewEnemyBullet(b.X, b.Y, vx, vy))
	}
}
