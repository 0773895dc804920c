package parameter

import "time"

// Playfield (logical units, independent of display scaling)
const (
	PlayfieldWidth  = 320
	PlayfieldHeight = 288
)

// Game Loop & Engine Timing
const (
	// StepsPerSecond is the fixed simulation rate
	StepsPerSecond = 30

	// StepDuration is the wall-clock length of one simulation step
	StepDuration = time.Second / StepsPerSecond

	// StepMillis is StepDuration in float milliseconds, used for simulation time
	StepMillis = 1000.0 / StepsPerSecond

	// MaxCatchUpSteps bounds the accumulator after a stall, surplus time is discarded
	MaxCatchUpSteps = 5
)
