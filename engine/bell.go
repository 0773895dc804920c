package engine

import "github.com/lixenwraith/bell-fighter/parameter"

// BellEffect is the upgrade a bell grants on pickup
type BellEffect uint8

const (
	EffectSpread BellEffect = iota
	EffectRapid
	EffectScore
	EffectShield
	EffectInvincible
	EffectReflect
)

var effectNames = [parameter.BellEffectCount]string{"SPREAD", "RAPID", "SCORE", "SHIELD", "INVINCIBLE", "REFLECT"}

func (e BellEffect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "UNKNOWN"
}

// Bell is a falling pickup whose effect is cycled by shooting it
type Bell struct {
	Body
	VY     float64
	Effect BellEffect
}

// NewBell creates a bell starting on the SPREAD effect
func NewBell(x, y float64) *Bell {
	return &Bell{Body: newBody(x, y, parameter.BellRadius), VY: parameter.BellFallSpeed}
}

// Update drops the bell and culls it below the playfield
func (b *Bell) Update() {
	b.Y += b.VY
	if b.Y > playfieldH+parameter.BellCullMarginY {
		b.Kill()
	}
}

// Cycle advances to the next effect, wrapping after REFLECT
func (b *Bell) Cycle() {
	b.Effect = (b.Effect + 1) % parameter.BellEffectCount
}

// Apply grants the current effect to the player
func (b *Bell) Apply(p *Player) {
	switch b.Effect {
	case EffectSpread:
		p.Spread = true
	case EffectRapid:
		p.ShotInterval = max(parameter.PlayerMinShotInterval, p.ShotInterval-parameter.PlayerRapidStep)
	case EffectScore:
		p.ScoreMult = min(parameter.PlayerMaxScoreMult, p.ScoreMult+1)
	case EffectShield:
		p.Shield++
	case EffectInvincible:
		p.InvincibleCharges++
	case EffectReflect:
		p.Reflect = true
	}
}
