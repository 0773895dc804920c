package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}

	m.InitialStateID = initialID
	m.activeStateID = initialID
	m.timeInState = 0

	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range node.OnExit {
			action(ctx)
		}
	}
	m.activeStateID = StateNone
	return m.Init(ctx, m.InitialStateID)
}

// Update advances the FSM by one step: per-step actions, then tick transitions
// If an action triggers a transition, remaining actions and tick transitions are skipped
func (m *Machine[T]) Update(ctx T) {
	if m.activeStateID == StateNone {
		return
	}

	startID := m.activeStateID
	m.timeInState++

	node := m.nodes[startID]
	for _, action := range node.OnUpdate {
		action(ctx)
		if m.activeStateID != startID {
			return
		}
	}

	for _, trans := range node.Transitions {
		if trans.Event != EventTick {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans)
			return
		}
	}
}

// HandleEvent routes an external event through the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType EventType) bool {
	if m.activeStateID == StateNone || eventType == EventTick {
		return false
	}

	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			return m.transition(ctx, trans)
		}
	}
	return false
}

// transition performs the state change, exit actions run before enter actions
func (m *Machine[T]) transition(ctx T, trans Transition[T]) bool {
	if m.activeStateID == trans.TargetID && !trans.Reenter {
		return false
	}

	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", trans.TargetID))
	}

	if source, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range source.OnExit {
			action(ctx)
		}
	}

	m.activeStateID = trans.TargetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}
	return true
}

// Current returns the active StateID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active state's name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns steps spent in the active state
func (m *Machine[T]) TimeInState() int {
	return m.timeInState
}
