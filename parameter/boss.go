package parameter

// Boss
const (
	BossRadius = 16
	BossHP     = 400

	BossSpawnX = PlayfieldWidth / 2
	BossSpawnY = -30

	// BossEnterSpeed is the descent speed until BossFightY is reached
	BossEnterSpeed = 1.0
	BossFightY     = 60

	// BossSwayPeriodMs divides elapsed simulation milliseconds for the horizontal sine
	BossSwayPeriodMs = 400.0
	BossSwayAmount   = 0.6

	// Fan attack
	BossFanPeriod    = 30
	BossFanMinCount  = 4
	BossFanMaxCount  = 6
	BossFanSpreadDeg = 70.0
	BossFanSpeed     = 2.2

	// Ring special attack
	BossRingPeriod = 180
	BossRingCount  = 16
	BossRingSpeed  = 2.0

	// BossExplosiveChance is the per-bullet chance of an explosive bullet in both attacks
	BossExplosiveChance = 0.1
)
