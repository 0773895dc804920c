package replay

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/bell-fighter/engine"
	"github.com/lixenwraith/bell-fighter/vmath"
)

// Summary is the observable state after a replay
type Summary struct {
	Steps        int
	Phase        engine.Phase
	Score        int
	Lives        int
	BossHP       int
	Enemies      int
	EnemyBullets int
}

func (s Summary) String() string {
	return fmt.Sprintf("steps=%d phase=%s score=%d lives=%d boss_hp=%d enemies=%d enemy_bullets=%d",
		s.Steps, s.Phase, s.Score, s.Lives, s.BossHP, s.Enemies, s.EnemyBullets)
}

// Run plays the script against a fresh game seeded from it
func Run(s *Script, log *zap.Logger) Summary {
	g := engine.NewGame(engine.WithRand(vmath.NewFastRand(s.Seed)), engine.WithLogger(log))

	for i := 0; i < s.Steps; i++ {
		g.Step(s.Snapshot(i))
	}

	sum := Summary{
		Steps:        s.Steps,
		Phase:        g.Phase(),
		Score:        g.Score,
		Lives:        g.Player.Lives,
		Enemies:      len(g.Enemies),
		EnemyBullets: len(g.EnemyBullets),
	}
	if g.Boss != nil {
		sum.BossHP = g.Boss.HP
	}
	return sum
}
