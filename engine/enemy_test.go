package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// TestNewEnemyProfiles verifies per-variant stats and the shot timer draw order
func TestNewEnemyProfiles(t *testing.T) {
	tests := []struct {
		kind  EnemyKind
		r     float64
		hp    int
		score int
	}{
		{EnemyZigZag, parameter.ZigZagRadius, parameter.ZigZagHP, parameter.ZigZagScore},
		{EnemyCharger, parameter.ChargerRadius, parameter.ChargerHP, parameter.ChargerScore},
		{EnemyTank, parameter.TankRadius, parameter.TankHP, parameter.TankScore},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := NewEnemy(tt.kind, 100, -10, NewScriptedRand(0.25).WithInts(10))
			if e.R != tt.r || e.HP != tt.hp || e.Score != tt.score {
				t.Errorf("Expected r=%v hp=%d score=%d, got r=%v hp=%d score=%d",
					tt.r, tt.hp, tt.score, e.R, e.HP, e.Score)
			}
			if e.ShotTimer != parameter.EnemyInitialShotMin+10 {
				t.Errorf("Expected shot timer %d, got %d", parameter.EnemyInitialShotMin+10, e.ShotTimer)
			}
		})
	}

	z := NewEnemy(EnemyZigZag, 0, 0, NewScriptedRand(0.25))
	if math.Abs(z.Phase-math.Pi/2) > 1e-12 {
		t.Errorf("Expected zig-zag phase pi/2, got %v", z.Phase)
	}
}

// TestZigZagMotion verifies the sine sway on top of the steady descent
func TestZigZagMotion(t *testing.T) {
	g := NewTestGame(nil)
	e := NewEnemy(EnemyZigZag, 100, 0, NewScriptedRand(0.25).WithInts(10))

	e.Update(g)

	wantY := parameter.ZigZagSpeedY
	wantX := 100 + math.Sin(wantY/parameter.ZigZagWavelength+math.Pi/2)*parameter.ZigZagAmplitude
	if math.Abs(e.Y-wantY) > 1e-12 || math.Abs(e.X-wantX) > 1e-12 {
		t.Errorf("Expected (%v, %v), got (%v, %v)", wantX, wantY, e.X, e.Y)
	}
	if e.ShotTimer != parameter.EnemyInitialShotMin+9 {
		t.Errorf("Expected shot timer decremented, got %d", e.ShotTimer)
	}
}

// TestZigZagCulledBelowPlayfield verifies removal past its bottom margin
func TestZigZagCulledBelowPlayfield(t *testing.T) {
	g := NewTestGame(nil)
	e := NewEnemy(EnemyZigZag, 100, playfieldH+parameter.ZigZagCullMarginY, NewScriptedRand())

	e.Update(g)

	if e.Alive {
		t.Errorf("Expected zig-zag culled at y=%v", e.Y)
	}
}

// TestChargerLatchesDash verifies the dash aims once at the player and never re-aims
func TestChargerLatchesDash(t *testing.T) {
	g := NewTestGame(nil)
	e := NewEnemy(EnemyCharger, g.Player.X, 40, NewScriptedRand())

	e.Update(g)
	if e.Charged {
		t.Fatal("Expected no dash above the trigger line")
	}
	if e.VY != parameter.ChargerDriftY {
		t.Errorf("Expected drift speed %v, got %v", parameter.ChargerDriftY, e.VY)
	}

	e.Y = parameter.ChargerTriggerY + 1
	e.Update(g)
	if !e.Charged {
		t.Fatal("Expected dash below the trigger line")
	}
	if math.Abs(e.VX) > 1e-9 || math.Abs(e.VY-parameter.ChargerChargeSpeed) > 1e-9 {
		t.Errorf("Expected dash straight down at %v, got (%v, %v)", parameter.ChargerChargeSpeed, e.VX, e.VY)
	}

	g.Player.X += 100
	e.Update(g)
	if math.Abs(e.VX) > 1e-9 {
		t.Errorf("Expected dash direction latched, got vx=%v", e.VX)
	}
}

// TestChargerDashOnPlayer verifies a coincident dash yields zero velocity instead of NaN
func TestChargerDashOnPlayer(t *testing.T) {
	g := NewTestGame(nil)
	g.Player.Y = 100
	e := NewEnemy(EnemyCharger, g.Player.X, g.Player.Y, NewScriptedRand())

	e.Update(g)

	if !e.Charged || e.VX != 0 || e.VY != 0 {
		t.Errorf("Expected charged with zero velocity, got charged=%v v=(%v, %v)", e.Charged, e.VX, e.VY)
	}
}

// TestChargerCulledSideways verifies side margins apply to chargers
func TestChargerCulledSideways(t *testing.T) {
	g := NewTestGame(nil)
	e := NewEnemy(EnemyCharger, -parameter.ChargerCullMargin, 100, NewScriptedRand())
	e.Charged = true
	e.VX, e.VY = -1, 0

	e.Update(g)

	if e.Alive {
		t.Errorf("Expected charger culled at x=%v", e.X)
	}
}

// TestTankMotionAndCull verifies straight descent and the wider cull margin
func TestTankMotionAndCull(t *testing.T) {
	g := NewTestGame(nil)
	e := NewEnemy(EnemyTank, 100, playfieldH+parameter.ZigZagCullMarginY, NewScriptedRand())

	e.Update(g)

	if !e.Alive {
		t.Error("Expected tank alive within its margin")
	}
	if e.X != 100 {
		t.Errorf("Expected no horizontal motion, got x=%v", e.X)
	}
}

// TestEnemyAimedShot verifies timer reset and aim at the player
func TestEnemyAimedShot(t *testing.T) {
	g := NewTestGame(NewScriptedRand().WithInts(5))
	e := NewEnemy(EnemyTank, g.Player.X, 100, NewScriptedRand())
	e.ShotTimer = 0

	e.tryShoot(g)

	if e.ShotTimer != parameter.TankShotMin+5 {
		t.Errorf("Expected shot timer %d, got %d", parameter.TankShotMin+5, e.ShotTimer)
	}
	if len(g.EnemyBullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(g.EnemyBullets))
	}
	b := g.EnemyBullets[0]
	if math.Abs(b.VX) > 1e-9 || math.Abs(b.VY-parameter.TankShotSpeed) > 1e-9 {
		t.Errorf("Expected aim straight down at %v, got (%v, %v)", parameter.TankShotSpeed, b.VX, b.VY)
	}
	if b.X != e.X || b.Y != e.Y {
		t.Errorf("Expected bullet at enemy position, got (%v, %v)", b.X, b.Y)
	}
}

// TestEnemyNoShotWhenCoincident verifies zero distance produces no bullet
func TestEnemyNoShotWhenCoincident(t *testing.T) {
	g := NewTestGame(nil)
	e := NewEnemy(EnemyZigZag, g.Player.X, g.Player.Y, NewScriptedRand())
	e.ShotTimer = 0

	e.tryShoot(g)

	if len(g.EnemyBullets) != 0 {
		t.Errorf("Expected no bullet, got %d", len(g.EnemyBullets))
	}
	if e.ShotTimer < parameter.ZigZagShotMin {
		t.Errorf("Expected timer rearmed, got %d", e.ShotTimer)
	}
}

// TestEnemyDeathScoresAndDrops verifies kill scoring with multiplier and the bell roll
func TestEnemyDeathScoresAndDrops(t *testing.T) {
	g := NewTestGame(NewScriptedRand(0.3))
	g.Player.ScoreMult = 2
	e := NewEnemy(EnemyZigZag, 80, 90, NewScriptedRand())

	e.TakeDamage(g, 1)
	if !e.Alive || g.Score != 0 {
		t.Fatalf("Expected survival after first hit, alive=%v score=%d", e.Alive, g.Score)
	}

	e.TakeDamage(g, 1)
	if e.Alive {
		t.Fatal("Expected death at zero hp")
	}
	if g.Score != parameter.ZigZagScore*2 {
		t.Errorf("Expected score %d, got %d", parameter.ZigZagScore*2, g.Score)
	}
	if len(g.Bells) != 1 {
		t.Fatalf("Expected bell drop, got %d bells", len(g.Bells))
	}
	if g.Bells[0].X != 80 || g.Bells[0].Y != 90 || g.Bells[0].Effect != EffectSpread {
		t.Errorf("Expected SPREAD bell at (80, 90), got %v at (%v, %v)", g.Bells[0].Effect, g.Bells[0].X, g.Bells[0].Y)
	}
}

// TestEnemyNoDropAtZeroRate verifies a zero rate never drops
func TestEnemyNoDropAtZeroRate(t *testing.T) {
	g := NewTestGame(NewScriptedRand(0))
	g.BellDropRate = 0
	e := NewEnemy(EnemyZigZag, 80, 90, NewScriptedRand())

	e.TakeDamage(g, 5)

	if len(g.Bells) != 0 {
		t.Errorf("Expected no bell, got %d", len(g.Bells))
	}
}
