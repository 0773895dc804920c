package fsm

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// OnEnterDo appends an action run when the state is entered
func (n *Node[T]) OnEnterDo(fn ActionFunc[T]) *Node[T] {
	n.OnEnter = append(n.OnEnter, fn)
	return n
}

// OnUpdateDo appends an action run on every Update while the state is active
func (n *Node[T]) OnUpdateDo(fn ActionFunc[T]) *Node[T] {
	n.OnUpdate = append(n.OnUpdate, fn)
	return n
}

// OnExitDo appends an action run when the state is left
func (n *Node[T]) OnExitDo(fn ActionFunc[T]) *Node[T] {
	n.OnExit = append(n.OnExit, fn)
	return n
}
