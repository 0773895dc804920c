package engine

import (
	"testing"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// TestBellCycleWraps verifies the effect index is shots taken mod 6
func TestBellCycleWraps(t *testing.T) {
	b := NewBell(0, 0)
	for k := 0; k < 14; k++ {
		if int(b.Effect) != k%parameter.BellEffectCount {
			t.Errorf("After %d shots: expected effect %d, got %d", k, k%parameter.BellEffectCount, b.Effect)
		}
		b.Cycle()
	}
}

// TestBellFallsAndCulls verifies the descent and bottom cull
func TestBellFallsAndCulls(t *testing.T) {
	b := NewBell(50, playfieldH+parameter.BellCullMarginY-1)

	b.Update()
	if !b.Alive {
		t.Error("Expected bell alive at the margin")
	}
	b.Update()
	if b.Alive {
		t.Error("Expected bell culled past the margin")
	}
}

// TestBellApplyEffects verifies each effect on the player
func TestBellApplyEffects(t *testing.T) {
	apply := func(e BellEffect, p *Player) {
		b := NewBell(0, 0)
		b.Effect = e
		b.Apply(p)
	}

	p := NewPlayer(0, 0)
	apply(EffectSpread, p)
	apply(EffectReflect, p)
	apply(EffectShield, p)
	apply(EffectShield, p)
	apply(EffectInvincible, p)

	if !p.Spread || !p.Reflect {
		t.Error("Expected spread and reflect enabled")
	}
	if p.Shield != 2 {
		t.Errorf("Expected 2 shield charges, got %d", p.Shield)
	}
	if p.InvincibleCharges != 1 {
		t.Errorf("Expected 1 invincible charge, got %d", p.InvincibleCharges)
	}
}

// TestBellRapidFloor verifies the shot interval never drops below the minimum
func TestBellRapidFloor(t *testing.T) {
	p := NewPlayer(0, 0)
	b := NewBell(0, 0)
	b.Effect = EffectRapid

	want := []int{4, 2, 2}
	for i, w := range want {
		b.Apply(p)
		if p.ShotInterval != w {
			t.Errorf("Pickup %d: expected interval %d, got %d", i+1, w, p.ShotInterval)
		}
	}
}

// TestBellScoreCap verifies the multiplier caps at 4
func TestBellScoreCap(t *testing.T) {
	p := NewPlayer(0, 0)
	b := NewBell(0, 0)
	b.Effect = EffectScore

	for i := 0; i < 6; i++ {
		b.Apply(p)
	}

	if p.ScoreMult != parameter.PlayerMaxScoreMult {
		t.Errorf("Expected multiplier %d, got %d", parameter.PlayerMaxScoreMult, p.ScoreMult)
	}
}

// TestBellEffectNames verifies HUD-facing effect names
func TestBellEffectNames(t *testing.T) {
	if EffectInvincible.String() != "INVINCIBLE" || EffectReflect.String() != "REFLECT" {
		t.Errorf("Unexpected names: %s, %s", EffectInvincible, EffectReflect)
	}
}
