package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Stage Loop
const (
	// StageBeat is the length of one beat of the procedural stage loop (125 BPM)
	StageBeat = 480 * time.Millisecond

	// StageKickLength is the decay length of the kick drum
	StageKickLength = 90 * time.Millisecond

	StageBassHz = 55.0
	StageGain   = 0.35
)
