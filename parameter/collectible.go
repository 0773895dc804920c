package parameter

// Bell Pickup
const (
	BellRadius      = 6
	BellFallSpeed   = 1.0
	BellCullMarginY = 10

	// BellEffectCount is the number of effects a bell cycles through
	BellEffectCount = 6

	// BellDropRateDefault is the kill-drop probability after reset
	BellDropRateDefault = 0.5

	// BellDropRateStep is the debug adjustment per key press
	BellDropRateStep = 0.05
)
