package fsm

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
)

// EventType identifies an external trigger routed through HandleEvent
type EventType int

const (
	// EventTick marks transitions evaluated automatically on every Update
	EventTick EventType = 0
)

// Machine is a flat finite state machine runtime driven by fixed steps
// T is the context type passed to actions and guards (e.g., *engine.Game)
type Machine[T any] struct {
	// Graph Data (Immutable after Init)
	nodes map[StateID]*Node[T]

	// Configuration
	InitialStateID StateID // Stored during Init for Reset

	// Runtime State
	activeStateID StateID
	timeInState   int // Steps elapsed in current state
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = auto-transition
	Guard    GuardFunc[T] // nil = Always true

	// Reenter allows a self transition to run exit and enter actions
	// Without it, a transition to the active state is a no-op
	Reenter bool
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
