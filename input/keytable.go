package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bell-fighter/engine"
)

// Action is a platform-level intent handled outside the simulation
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMute
)

// Binding is what a key does: hold a control, issue a command, or trigger an action
type Binding struct {
	Control engine.Controls
	Command engine.Command
	Action  Action
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Binding

	// Printable runes
	Runes map[rune]Binding
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyLeft:   {Control: engine.ControlLeft},
			tcell.KeyRight:  {Control: engine.ControlRight},
			tcell.KeyUp:     {Control: engine.ControlUp},
			tcell.KeyDown:   {Control: engine.ControlDown},
			tcell.KeyEscape: {Action: ActionQuit},
			tcell.KeyCtrlC:  {Action: ActionQuit},
		},
		Runes: map[rune]Binding{
			'z': {Control: engine.ControlFire},
			'Z': {Control: engine.ControlFire},
			' ': {Control: engine.ControlFire},
			'r': {Command: engine.CommandReset},
			'R': {Command: engine.CommandReset},
			'c': {Command: engine.CommandToggleDebug},
			'C': {Command: engine.CommandToggleDebug},
			'[': {Command: engine.CommandBellRateDown},
			']': {Command: engine.CommandBellRateUp},
			'b': {Command: engine.CommandForceBoss},
			'B': {Command: engine.CommandForceBoss},
			'm': {Command: engine.CommandActivateInvincible},
			'M': {Command: engine.CommandActivateInvincible},
			'q': {Action: ActionQuit},
			'Q': {Action: ActionQuit},
			's': {Action: ActionToggleMute},
			'S': {Action: ActionToggleMute},
		},
	}
}

// KeyEvent is the decoded part of a terminal key event
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
}

// FromTcell decodes a tcell key event
func FromTcell(ev *tcell.EventKey) KeyEvent {
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Key: tcell.KeyRune, Rune: ev.Rune()}
	}
	return KeyEvent{Key: ev.Key()}
}

// Lookup resolves a key event to its binding
func (t *KeyTable) Lookup(k KeyEvent) (Binding, bool) {
	if k.Key == tcell.KeyRune {
		b, ok := t.Runes[k.Rune]
		return b, ok
	}
	b, ok := t.Keys[k.Key]
	return b, ok
}
