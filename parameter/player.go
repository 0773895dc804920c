package parameter

// Player Ship
const (
	PlayerRadius = 6
	PlayerSpeed  = 3.0
	PlayerLives  = 3

	// PlayerSpawnX/Y is the reset position, horizontally centered near the bottom
	PlayerSpawnX = PlayfieldWidth / 2
	PlayerSpawnY = PlayfieldHeight - 40

	// DiagonalFactor scales both axes when two orthogonal directions are held
	DiagonalFactor = 0.7071

	// PlayerInvulnSteps is the post-hit grace window
	PlayerInvulnSteps = StepsPerSecond

	// PlayerInvincibleSteps is the duration of one banked invincibility charge
	PlayerInvincibleSteps = StepsPerSecond * 5

	// PlayerBlinkPeriod controls the dimmed blink while invulnerable
	PlayerBlinkPeriod = 4
)

// Player Weapon
const (
	PlayerShotInterval    = 6
	PlayerMinShotInterval = 2
	PlayerRapidStep       = 2

	// PlayerMaxScoreMult caps the SCORE pickup multiplier
	PlayerMaxScoreMult = 4

	// PlayerMuzzleOffset is how far above the ship center bullets spawn
	PlayerMuzzleOffset = 6

	PlayerBulletSpeed = 6.0
	PlayerBulletAngle = -90.0
	PlayerSpreadLeft  = -120.0
	PlayerSpreadRight = -60.0

	// PlayerReflectChance is the per-bullet chance to emit a reflecting bullet
	PlayerReflectChance = 0.25
	PlayerReflectBounce = 2

	// PlayerBulletDamage is applied to enemies and boss per hit
	PlayerBulletDamage = 1
)
