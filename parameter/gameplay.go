package parameter

// Phase Timing
const (
	// PlayingPhaseSteps is how long PLAYING lasts before the boss arrives (60 seconds)
	PlayingPhaseSteps = StepsPerSecond * 60

	// Spawn countdown ranges, redrawn on expiry
	PlayingSpawnMin = 40
	PlayingSpawnMax = 80
	BossSpawnMin    = 50
	BossSpawnMax    = 90
)
