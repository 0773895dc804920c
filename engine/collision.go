package engine

import "github.com/lixenwraith/bell-fighter/parameter"

// resolveCollisions runs every collision pass in a fixed order
// Entities killed earlier in the step are skipped by later passes
func (g *Game) resolveCollisions() {
	g.playerBulletsVsTargets()
	g.enemyBulletsVsPlayer()
	g.enemiesVsPlayer()
	g.bossVsPlayer()
	g.bellsVsPlayer()
}

// playerBulletsVsTargets lets each bullet hit at most one thing
// Priority: first overlapping enemy, then the boss, then the first overlapping bell
func (g *Game) playerBulletsVsTargets() {
	for _, b := range g.PlayerBullets {
		if !b.Alive {
			continue
		}

		for _, e := range g.Enemies {
			if e.Alive && b.Overlaps(&e.Body) {
				b.Kill()
				e.TakeDamage(g, parameter.PlayerBulletDamage)
				break
			}
		}

		if boss := g.Boss; b.Alive && boss != nil && boss.Alive && b.Overlaps(&boss.Body) {
			b.Kill()
			boss.TakeDamage(g, parameter.PlayerBulletDamage)
		}

		if !b.Alive {
			continue
		}
		for _, bell := range g.Bells {
			if bell.Alive && b.Overlaps(&bell.Body) {
				b.Kill()
				bell.Cycle()
				break
			}
		}
	}
}

// enemyBulletsVsPlayer: invincibility absorbs for free, shield absorbs one charge
// The shield is spent even during the post-hit grace window
func (g *Game) enemyBulletsVsPlayer() {
	p := g.Player
	for _, b := range g.EnemyBullets {
		if !b.Alive || !b.Overlaps(&p.Body) {
			continue
		}
		b.Kill()
		switch {
		case p.InvincibleTimer > 0:
		case p.Shield > 0:
			p.Shield--
		default:
			p.Hit(g)
		}
	}
}

func (g *Game) enemiesVsPlayer() {
	p := g.Player
	for _, e := range g.Enemies {
		if e.Alive && e.Overlaps(&p.Body) {
			e.Kill()
			p.Hit(g)
		}
	}
}

func (g *Game) bossVsPlayer() {
	if boss := g.Boss; boss != nil && boss.Alive && boss.Overlaps(&g.Player.Body) {
		g.Player.Hit(g)
	}
}

func (g *Game) bellsVsPlayer() {
	p := g.Player
	for _, bell := range g.Bells {
		if bell.Alive && bell.Overlaps(&p.Body) {
			bell.Kill()
			bell.Apply(p)
		}
	}
}
