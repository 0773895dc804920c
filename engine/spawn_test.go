package engine

import (
	"testing"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// TestSpawnVariantWeights verifies the cumulative variant thresholds
func TestSpawnVariantWeights(t *testing.T) {
	tests := []struct {
		roll float64
		want EnemyKind
	}{
		{0.0, EnemyZigZag},
		{0.399, EnemyZigZag},
		{0.4, EnemyCharger},
		{0.749, EnemyCharger},
		{0.75, EnemyTank},
		{0.999, EnemyTank},
	}

	for _, tt := range tests {
		g := NewTestGame(NewScriptedRand(tt.roll))
		g.spawnEnemy()
		if len(g.Enemies) != 1 {
			t.Fatalf("Roll %v: expected 1 enemy, got %d", tt.roll, len(g.Enemies))
		}
		if got := g.Enemies[0].Kind; got != tt.want {
			t.Errorf("Roll %v: expected %v, got %v", tt.roll, tt.want, got)
		}
	}
}

// TestSpawnPosition verifies enemies enter above the top edge within the side inset
func TestSpawnPosition(t *testing.T) {
	g := NewTestGame(NewScriptedRand().WithInts(1000))
	g.spawnEnemy()

	e := g.Enemies[0]
	if e.X != parameter.PlayfieldWidth-parameter.EnemySpawnInset {
		t.Errorf("Expected x clamped to %d, got %v", parameter.PlayfieldWidth-parameter.EnemySpawnInset, e.X)
	}
	if e.Y != parameter.EnemySpawnY {
		t.Errorf("Expected y %d, got %v", parameter.EnemySpawnY, e.Y)
	}
}

// TestSpawnerCountdown verifies one spawn per expiry and the rearm range
func TestSpawnerCountdown(t *testing.T) {
	g := NewTestGame(NewScriptedRand().WithInts(5))
	g.SpawnTimer = 2

	g.tickSpawner(parameter.PlayingSpawnMin, parameter.PlayingSpawnMax)
	if len(g.Enemies) != 0 || g.SpawnTimer != 1 {
		t.Fatalf("Expected countdown only, got enemies=%d timer=%d", len(g.Enemies), g.SpawnTimer)
	}

	g.tickSpawner(parameter.PlayingSpawnMin, parameter.PlayingSpawnMax)
	if len(g.Enemies) != 1 {
		t.Errorf("Expected 1 spawn, got %d", len(g.Enemies))
	}
	if g.SpawnTimer != parameter.PlayingSpawnMin+5 {
		t.Errorf("Expected timer %d, got %d", parameter.PlayingSpawnMin+5, g.SpawnTimer)
	}
}

// TestBossPhaseKeepsSpawning verifies the spawner runs during the boss fight
func TestBossPhaseKeepsSpawning(t *testing.T) {
	g := NewTestGame(nil)
	g.HandleCommand(CommandForceBoss)

	g.Update(0)

	if len(g.Enemies) != 1 {
		t.Errorf("Expected an enemy spawned in BOSS, got %d", len(g.Enemies))
	}
	if g.SpawnTimer < parameter.BossSpawnMin || g.SpawnTimer > parameter.BossSpawnMax {
		t.Errorf("Expected boss spawn range, got %d", g.SpawnTimer)
	}
}
