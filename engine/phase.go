package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/bell-fighter/engine/fsm"
	"github.com/lixenwraith/bell-fighter/parameter"
)

// Phase is the session stage
type Phase fsm.StateID

const (
	PhasePlaying Phase = iota + 1
	PhaseBoss
	PhaseGameOver
	PhaseClear
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "PLAYING"
	case PhaseBoss:
		return "BOSS"
	case PhaseGameOver:
		return "GAMEOVER"
	case PhaseClear:
		return "CLEAR"
	}
	return "NONE"
}

// Phase events routed through the machine
const (
	EventBossStart fsm.EventType = iota + 1
	EventPlayerDown
	EventBossDown
	EventReset
)

// newPhaseMachine builds the session graph:
// PLAYING -> BOSS on timer or force, BOSS -> BOSS on force (re-entered),
// PLAYING|BOSS -> GAMEOVER on last life, BOSS -> CLEAR on boss death,
// CLEAR -> GAMEOVER on last life lost later in the clearing step,
// GAMEOVER|CLEAR -> PLAYING on reset
func newPhaseMachine() *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()

	m.AddState(fsm.StateID(PhasePlaying), PhasePlaying.String()).
		OnEnterDo((*Game).resetSession).
		OnEnterDo(logPhase).
		OnUpdateDo((*Game).updatePlaying)

	m.AddState(fsm.StateID(PhaseBoss), PhaseBoss.String()).
		OnEnterDo((*Game).startBoss).
		OnEnterDo(logPhase).
		OnUpdateDo((*Game).updateBoss).
		OnExitDo(func(g *Game) { g.Boss = nil })

	m.AddState(fsm.StateID(PhaseGameOver), PhaseGameOver.String()).OnEnterDo(logPhase)
	m.AddState(fsm.StateID(PhaseClear), PhaseClear.String()).OnEnterDo(logPhase)

	link := func(from, to Phase, ev fsm.EventType, reenter bool) {
		m.AddTransition(fsm.StateID(from), fsm.Transition[*Game]{
			TargetID: fsm.StateID(to),
			Event:    ev,
			Reenter:  reenter,
		})
	}
	link(PhasePlaying, PhaseBoss, EventBossStart, false)
	link(PhasePlaying, PhaseGameOver, EventPlayerDown, false)
	link(PhaseBoss, PhaseBoss, EventBossStart, true)
	link(PhaseBoss, PhaseGameOver, EventPlayerDown, false)
	link(PhaseBoss, PhaseClear, EventBossDown, false)
	// Terminal phases freeze Update, so this only fires within the step that cleared
	link(PhaseClear, PhaseGameOver, EventPlayerDown, false)
	link(PhaseGameOver, PhasePlaying, EventReset, false)
	link(PhaseClear, PhasePlaying, EventReset, false)

	return m
}

func logPhase(g *Game) {
	g.log.Info("phase",
		zap.Stringer("phase", g.Phase()),
		zap.Int("score", g.Score),
		zap.Int("lives", g.Player.Lives),
		zap.Uint64("steps", g.Steps),
	)
}

func (g *Game) updatePlaying() {
	g.PhaseTime++
	if g.PhaseTime >= parameter.PlayingPhaseSteps {
		g.phases.HandleEvent(g, EventBossStart)
		return
	}
	g.tickSpawner(parameter.PlayingSpawnMin, parameter.PlayingSpawnMax)
}

func (g *Game) updateBoss() {
	g.tickSpawner(parameter.BossSpawnMin, parameter.BossSpawnMax)
}

// startBoss clears regular enemies and their bullets and installs a new boss
func (g *Game) startBoss() {
	g.Enemies = empty(g.Enemies)
	g.EnemyBullets = empty(g.EnemyBullets)
	g.SpawnTimer = 0
	g.Boss = NewBoss()
}
