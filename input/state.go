package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/bell-fighter/engine"
)

// State turns press/repeat key events into per-step snapshots
// Terminals never report key-up: a fresh press stays held for the repeat delay so the
// first auto-repeat can arrive, after that each repeat extends it by the hold timeout
type State struct {
	mu          sync.Mutex
	table       *KeyTable
	repeatDelay time.Duration
	holdTimeout time.Duration

	keys    map[KeyEvent]keyHold
	pending []engine.Command
	touched bool
}

type keyHold struct {
	last      time.Time
	repeating bool
}

// NewState creates an input state over a key table
// repeatDelay below holdTimeout is raised to it
func NewState(table *KeyTable, repeatDelay, holdTimeout time.Duration) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{
		table:       table,
		repeatDelay: max(repeatDelay, holdTimeout),
		holdTimeout: holdTimeout,
		keys:        make(map[KeyEvent]keyHold),
	}
}

// HandleKey records a key event at now and returns any platform action it triggers
// Commands are queued only on the first event of a press, auto-repeats are ignored
func (s *State) HandleKey(k KeyEvent, now time.Time) Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = true
	b, ok := s.table.Lookup(k)
	if !ok {
		return ActionNone
	}

	held := s.heldAt(k, now)
	s.keys[k] = keyHold{last: now, repeating: held}
	if held {
		return ActionNone
	}

	if b.Command != engine.CommandNone {
		s.pending = append(s.pending, b.Command)
	}
	return b.Action
}

// ReleaseAll forgets every held key, used when the terminal loses focus
func (s *State) ReleaseAll() {
	s.mu.Lock()
	clear(s.keys)
	s.mu.Unlock()
}

// Snapshot returns the controls held at now and drains queued commands
func (s *State) Snapshot(now time.Time) engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap engine.Snapshot
	for k := range s.keys {
		if !s.heldAt(k, now) {
			delete(s.keys, k)
			continue
		}
		if b, ok := s.table.Lookup(k); ok {
			snap.Held |= b.Control
		}
	}
	if len(s.pending) > 0 {
		snap.Pressed = s.pending
		s.pending = nil
	}
	return snap
}

// Touched reports whether any key has been seen, the gesture that unlocks audio
func (s *State) Touched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

func (s *State) heldAt(k KeyEvent, now time.Time) bool {
	h, ok := s.keys[k]
	if !ok {
		return false
	}
	window := s.repeatDelay
	if h.repeating {
		window = s.holdTimeout
	}
	return now.Sub(h.last) < window
}
