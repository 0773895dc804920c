package parameter

// Projectiles
const (
	PlayerBulletRadius = 2
	EnemyBulletRadius  = 3

	// ExplosiveDrawRadius is larger than its collision radius
	ExplosiveDrawRadius = 4

	// BulletMargin is the off-screen distance before a bullet is culled
	BulletMargin = 10

	// ReflectMargin is the wider cull margin for reflecting bullets
	ReflectMargin = 20

	// ExplosiveFuseSteps is the fuse of boss-emitted explosive bullets (3 seconds)
	ExplosiveFuseSteps = StepsPerSecond * 3

	// ExplosionRingCount bullets are emitted evenly spaced on detonation
	ExplosionRingCount = 8
	ExplosionRingSpeed = 2.0
)
