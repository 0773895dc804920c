package engine

import "github.com/lixenwraith/bell-fighter/parameter"

// ScriptedRand replays fixed random values for tests
// Exhausted float queues return Fallback, exhausted int queues return 0
type ScriptedRand struct {
	Floats   []float64
	Ints     []int
	Fallback float64
}

// NewScriptedRand creates a source that yields floats in order, then 0.99
// 0.99 is above every gameplay probability, so nothing random triggers by default
func NewScriptedRand(floats ...float64) *ScriptedRand {
	return &ScriptedRand{Floats: floats, Fallback: 0.99}
}

// WithInts queues values returned by Intn, clamped to [0, n)
func (r *ScriptedRand) WithInts(ints ...int) *ScriptedRand {
	r.Ints = append(r.Ints, ints...)
	return r
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return r.Fallback
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

func (r *ScriptedRand) Intn(n int) int {
	if len(r.Ints) == 0 || n <= 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	return min(max(v, 0), n-1)
}

// NewTestGame creates a game with a scripted random source and the spawner parked
// so tests control exactly which entities exist
func NewTestGame(r *ScriptedRand) *Game {
	if r == nil {
		r = NewScriptedRand()
	}
	g := NewGame(WithRand(r))
	g.SpawnTimer = parameter.PlayingPhaseSteps * 10
	return g
}
