package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/bell-fighter/parameter"
)

const (
	stageBeatsPerBar = 4
	stageArpSteps    = 2 // arpeggio notes per beat
)

// stageArp is an A minor arpeggio, one note per eighth
var stageArp = [...]float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 220.00, 196.00}

// StageLoop renders one bar of kick, bass and arpeggio, seekable so beep.Loop can repeat it
type StageLoop struct {
	sr      beep.SampleRate
	pos     int
	beat    int
	kickLen int
	length  int
}

// NewStageLoop creates a one-bar generator at the given rate
func NewStageLoop(sr beep.SampleRate) *StageLoop {
	beat := sr.N(parameter.StageBeat)
	return &StageLoop{
		sr:      sr,
		beat:    beat,
		kickLen: sr.N(parameter.StageKickLength),
		length:  beat * stageBeatsPerBar,
	}
}

func (g *StageLoop) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			break
		}
		s := g.sample(g.pos)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
		n++
	}
	return n, true
}

func (g *StageLoop) sample(pos int) float64 {
	beatIdx := pos / g.beat
	beatPos := pos % g.beat
	t := float64(pos) / float64(g.sr)
	bt := float64(beatPos) / float64(g.sr)

	kick := 0.0
	if beatPos < g.kickLen {
		env := 1.0 - float64(beatPos)/float64(g.kickLen)
		freq := 50 * (1 + 2*env)
		kick = 0.5 * env * math.Sin(2*math.Pi*freq*bt)
	}

	// root on beats 1 and 3, fifth on 2 and 4
	bassHz := parameter.StageBassHz
	if beatIdx%2 == 1 {
		bassHz *= 1.5
	}
	bass := 0.25 * math.Sin(2*math.Pi*bassHz*t)

	step := g.beat / stageArpSteps
	note := stageArp[(pos/step)%len(stageArp)]
	arpEnv := math.Exp(-float64(pos%step) / float64(g.sr) * 12)
	arp := 0.12 * arpEnv * math.Sin(2*math.Pi*note*t)

	return parameter.StageGain * (kick + bass + arp)
}

func (g *StageLoop) Err() error {
	return nil
}

func (g *StageLoop) Len() int {
	return g.length
}

func (g *StageLoop) Position() int {
	return g.pos
}

func (g *StageLoop) Seek(p int) error {
	if p < 0 || p > g.length {
		return fmt.Errorf("seek %d out of range [0, %d]", p, g.length)
	}
	g.pos = p
	return nil
}
