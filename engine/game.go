package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/bell-fighter/engine/fsm"
	"github.com/lixenwraith/bell-fighter/parameter"
	"github.com/lixenwraith/bell-fighter/vmath"
)

const (
	playfieldW = float64(parameter.PlayfieldWidth)
	playfieldH = float64(parameter.PlayfieldHeight)
)

// Game owns every entity collection and the session state
// Collections hold pointers because entities append to them while they are being iterated
type Game struct {
	Player        *Player
	PlayerBullets []*Projectile
	EnemyBullets  []*Projectile
	Enemies       []*Enemy
	Bells         []*Bell
	Boss          *Boss

	Score        int
	SpawnTimer   int
	PhaseTime    int
	BellDropRate float64
	Debug        bool

	// ElapsedMs is simulation time, advanced per step and kept across resets
	ElapsedMs float64
	// Steps counts updates applied to the current session
	Steps uint64

	rng    vmath.Rand
	log    *zap.Logger
	phases *fsm.Machine[*Game]
}

// Option configures a Game at construction
type Option func(*Game)

// WithRand injects the random source, a seeded FastRand is used otherwise
func WithRand(r vmath.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger attaches a logger for phase transitions and commands
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGame creates a game in the PLAYING phase with a fresh session
func NewGame(opts ...Option) *Game {
	g := &Game{
		rng: vmath.NewFastRand(1),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.phases = newPhaseMachine()
	if err := g.phases.Init(g, fsm.StateID(PhasePlaying)); err != nil {
		panic(err)
	}
	return g
}

// Reset unconditionally starts a new session in PLAYING
func (g *Game) Reset() {
	if err := g.phases.Reset(g); err != nil {
		panic(err)
	}
}

// resetSession restores every session field, simulation time is preserved
func (g *Game) resetSession() {
	g.Player = NewPlayer(parameter.PlayerSpawnX, parameter.PlayerSpawnY)
	g.PlayerBullets = empty(g.PlayerBullets)
	g.EnemyBullets = empty(g.EnemyBullets)
	g.Enemies = empty(g.Enemies)
	g.Bells = empty(g.Bells)
	g.Boss = nil
	g.Score = 0
	g.SpawnTimer = 0
	g.PhaseTime = 0
	g.Debug = false
	g.BellDropRate = parameter.BellDropRateDefault
	g.Steps = 0
}

// Phase returns the current session phase
func (g *Game) Phase() Phase {
	return Phase(g.phases.Current())
}

// Terminal reports whether the session has ended
func (g *Game) Terminal() bool {
	p := g.Phase()
	return p == PhaseGameOver || p == PhaseClear
}

// AddScore credits a kill, scaled by the player's multiplier
func (g *Game) AddScore(base int) {
	g.Score += base * g.Player.ScoreMult
}

// Step advances simulation time, applies edge commands, then runs one update
func (g *Game) Step(s Snapshot) {
	g.ElapsedMs += parameter.StepMillis
	for _, c := range s.Pressed {
		g.HandleCommand(c)
	}
	g.Update(s.Held)
}

// Update runs one fixed step; terminal phases are frozen
func (g *Game) Update(c Controls) {
	if g.Terminal() {
		return
	}
	g.Steps++

	g.Player.Update(g, c)
	g.phases.Update(g)

	if g.Phase() == PhaseBoss && g.Boss != nil {
		g.Boss.Update(g)
	}

	for _, e := range g.Enemies {
		e.Update(g)
	}
	for _, b := range g.PlayerBullets {
		b.Update(g)
	}
	// Bullets appended by explosions during this loop move next step
	for i, n := 0, len(g.EnemyBullets); i < n; i++ {
		g.EnemyBullets[i].Update(g)
	}
	for _, b := range g.Bells {
		b.Update()
	}

	g.resolveCollisions()
	g.reapAll()
}

func (g *Game) reapAll() {
	g.PlayerBullets = reap(g.PlayerBullets)
	g.EnemyBullets = reap(g.EnemyBullets)
	g.Enemies = reap(g.Enemies)
	g.Bells = reap(g.Bells)
	if g.Boss != nil && !g.Boss.Alive {
		g.Boss = nil
	}
}

// HandleCommand applies a one-shot command
func (g *Game) HandleCommand(c Command) {
	switch c {
	case CommandReset:
		if !g.phases.HandleEvent(g, EventReset) {
			return
		}
	case CommandToggleDebug:
		g.Debug = !g.Debug
	case CommandBellRateDown:
		g.BellDropRate = vmath.Clamp(g.BellDropRate-parameter.BellDropRateStep, 0, 1)
	case CommandBellRateUp:
		g.BellDropRate = vmath.Clamp(g.BellDropRate+parameter.BellDropRateStep, 0, 1)
	case CommandForceBoss:
		if !g.phases.HandleEvent(g, EventBossStart) {
			return
		}
	case CommandActivateInvincible:
		if !g.Player.ActivateInvincible() {
			return
		}
	default:
		return
	}
	g.log.Debug("command", zap.Stringer("command", c), zap.Stringer("phase", g.Phase()))
}
