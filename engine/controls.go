package engine

// Controls is the set of continuously held actions sampled every step
type Controls uint8

const (
	ControlLeft Controls = 1 << iota
	ControlRight
	ControlUp
	ControlDown
	ControlFire
)

// Has reports whether every bit of c2 is held
func (c Controls) Has(c2 Controls) bool {
	return c&c2 == c2
}

// axis returns +1, -1 or 0 for a pair of opposing controls
func (c Controls) axis(positive, negative Controls) int {
	v := 0
	if c.Has(positive) {
		v++
	}
	if c.Has(negative) {
		v--
	}
	return v
}

// Command is an edge-triggered one-shot action
type Command uint8

const (
	CommandNone Command = iota
	CommandReset
	CommandToggleDebug
	CommandBellRateDown
	CommandBellRateUp
	CommandForceBoss
	CommandActivateInvincible
)

var commandNames = [...]string{
	CommandNone:               "none",
	CommandReset:              "reset",
	CommandToggleDebug:        "toggle_debug",
	CommandBellRateDown:       "bell_rate_down",
	CommandBellRateUp:         "bell_rate_up",
	CommandForceBoss:          "force_boss",
	CommandActivateInvincible: "activate_invincible",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand resolves a command name as produced by String
func ParseCommand(name string) (Command, bool) {
	for i, n := range commandNames {
		if n == name && Command(i) != CommandNone {
			return Command(i), true
		}
	}
	return CommandNone, false
}

var controlNames = map[string]Controls{
	"left":  ControlLeft,
	"right": ControlRight,
	"up":    ControlUp,
	"down":  ControlDown,
	"fire":  ControlFire,
}

// ParseControl resolves a single control name ("left", "fire", ...)
func ParseControl(name string) (Controls, bool) {
	c, ok := controlNames[name]
	return c, ok
}

// Snapshot is the consistent input view for one step
type Snapshot struct {
	Held    Controls
	Pressed []Command
}
