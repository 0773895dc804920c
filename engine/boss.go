package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/bell-fighter/engine/fsm"
	"github.com/lixenwraith/bell-fighter/parameter"
	"github.com/lixenwraith/bell-fighter/vmath"
)

// BossState is the boss behavior stage
type BossState fsm.StateID

const (
	BossEnter BossState = iota + 1
	BossFight
)

func (s BossState) String() string {
	switch s {
	case BossEnter:
		return "ENTER"
	case BossFight:
		return "FIGHT"
	}
	return "NONE"
}

// Boss descends into view, then sways and alternates fan and ring attacks
type Boss struct {
	Body
	HP           int
	VY           float64
	ShotTimer    int
	SpecialTimer int

	script *fsm.Machine[*Game]
}

// NewBoss creates a boss above the playfield in the ENTER stage
func NewBoss() *Boss {
	b := &Boss{
		Body:         newBody(parameter.BossSpawnX, parameter.BossSpawnY, parameter.BossRadius),
		HP:           parameter.BossHP,
		VY:           parameter.BossEnterSpeed,
		ShotTimer:    parameter.BossFanPeriod,
		SpecialTimer: parameter.BossRingPeriod,
	}

	m := fsm.NewMachine[*Game]()
	m.AddState(fsm.StateID(BossEnter), BossEnter.String()).OnUpdateDo(func(*Game) { b.Y += b.VY })
	m.AddState(fsm.StateID(BossFight), BossFight.String()).OnUpdateDo(b.fight)
	m.AddTransition(fsm.StateID(BossEnter), fsm.Transition[*Game]{
		TargetID: fsm.StateID(BossFight),
		Guard:    func(*Game) bool { return b.Y >= parameter.BossFightY },
	})
	if err := m.Init(nil, fsm.StateID(BossEnter)); err != nil {
		panic(fmt.Sprintf("boss script: %v", err))
	}
	b.script = m
	return b
}

// State returns the current behavior stage
func (b *Boss) State() BossState {
	return BossState(b.script.Current())
}

// Update advances the behavior script one step
func (b *Boss) Update(g *Game) {
	b.script.Update(g)
}

func (b *Boss) fight(g *Game) {
	b.X += math.Sin(g.ElapsedMs/parameter.BossSwayPeriodMs) * parameter.BossSwayAmount

	b.ShotTimer--
	if b.ShotTimer <= 0 {
		b.ShotTimer = parameter.BossFanPeriod
		b.FanShot(g)
	}

	b.SpecialTimer--
	if b.SpecialTimer <= 0 {
		b.SpecialTimer = parameter.BossRingPeriod
		b.SpecialAttack(g)
	}
}

// FanShot fires 4 to 6 bullets evenly spread across a 70 degree arc centered on the player
func (b *Boss) FanShot(g *Game) {
	count := vmath.RandInt(g.rng, parameter.BossFanMinCount, parameter.BossFanMaxCount)
	base := vmath.AngleTo(b.X, b.Y, g.Player.X, g.Player.Y)
	start := base - parameter.BossFanSpreadDeg/2
	step := parameter.BossFanSpreadDeg / float64(count-1)
	for i := 0; i < count; i++ {
		vx, vy := vmath.VecFromAngle(start+step*float64(i), parameter.BossFanSpeed)
		b.emit(g, vx, vy)
	}
}

// SpecialAttack fires a full ring of bullets
func (b *Boss) SpecialAttack(g *Game) {
	step := 360.0 / parameter.BossRingCount
	for i := 0; i < parameter.BossRingCount; i++ {
		vx, vy := vmath.VecFromAngle(float64(i)*step, parameter.BossRingSpeed)
		b.emit(g, vx, vy)
	}
}

// emit spawns one boss bullet, occasionally an explosive one
func (b *Boss) emit(g *Game, vx, vy float64) {
	if g.rng.Float64() < parameter.BossExplosiveChance {
		g.EnemyBullets = append(g.EnemyBullets, NewExplosiveBullet(b.X, b.Y, vx, vy, parameter.ExplosiveFuseSteps))
		return
	}
	g.EnemyBullets = append(g.EnemyBullets, NewEnemyBullet(b.X, b.Y, vx, vy))
}

// TakeDamage reduces hit points; reaching zero clears the stage
func (b *Boss) TakeDamage(g *Game, dmg int) {
	b.HP -= dmg
	if b.HP > 0 {
		return
	}
	b.Kill()
	g.phases.HandleEvent(g, EventBossDown)
}
