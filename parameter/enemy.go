package parameter

// Enemy Shared
const (
	// EnemySpawnY is just above the visible top edge
	EnemySpawnY = -10

	// EnemySpawnInset keeps spawn x away from the side edges
	EnemySpawnInset = 20

	// EnemyInitialShotMin/Max is the first shot cooldown range
	EnemyInitialShotMin = 30
	EnemyInitialShotMax = 90
)

// Zig-zag Enemy
const (
	ZigZagRadius      = 7
	ZigZagHP          = 2
	ZigZagScore       = 100
	ZigZagSpeedY      = 1.2
	ZigZagWavelength  = 18.0
	ZigZagAmplitude   = 1.3
	ZigZagShotSpeed   = 2.0
	ZigZagShotMin     = 40
	ZigZagShotMax     = 100
	ZigZagCullMarginY = 20
)

// Charger Enemy
const (
	ChargerRadius      = 7
	ChargerHP          = 2
	ChargerScore       = 120
	ChargerDriftY      = 0.8
	ChargerTriggerY    = 60
	ChargerChargeSpeed = 4.0
	ChargerShotSpeed   = 2.0
	ChargerShotMin     = 40
	ChargerShotMax     = 100
	ChargerCullMargin  = 20
)

// Tank Enemy
const (
	TankRadius      = 9
	TankHP          = 6
	TankScore       = 200
	TankSpeedY      = 0.7
	TankShotSpeed   = 1.7
	TankShotMin     = 40
	TankShotMax     = 100
	TankCullMarginY = 30
)

// Spawn weights, cumulative thresholds over [0, 1)
const (
	SpawnWeightZigZag  = 0.40
	SpawnWeightCharger = 0.35
	SpawnWeightTank    = 0.25
)
