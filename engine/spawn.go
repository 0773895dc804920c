package engine

import (
	"github.com/lixenwraith/bell-fighter/parameter"
	"github.com/lixenwraith/bell-fighter/vmath"
)

// tickSpawner counts down and spawns one enemy per expiry, rearming within [lo, hi]
func (g *Game) tickSpawner(lo, hi int) {
	g.SpawnTimer--
	if g.SpawnTimer > 0 {
		return
	}
	g.SpawnTimer = vmath.RandInt(g.rng, lo, hi)
	g.spawnEnemy()
}

// spawnEnemy places a weighted random variant just above the top edge
func (g *Game) spawnEnemy() {
	x := float64(vmath.RandInt(g.rng, parameter.EnemySpawnInset, parameter.PlayfieldWidth-parameter.EnemySpawnInset))
	roll := g.rng.Float64()

	kind := EnemyTank
	switch {
	case roll < parameter.SpawnWeightZigZag:
		kind = EnemyZigZag
	case roll < parameter.SpawnWeightZigZag+parameter.SpawnWeightCharger:
		kind = EnemyCharger
	}
	g.Enemies = append(g.Enemies, NewEnemy(kind, x, parameter.EnemySpawnY, g.rng))
}
