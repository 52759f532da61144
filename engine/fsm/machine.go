package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state, running OnEnter from root to leaf
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("paths not compiled")
	}

	m.InitialStateID = initialID
	m.activeStateID = initialID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx)
		}
	}
	return nil
}

// Update advances the FSM by dt, running OnUpdate and the first passing tick transition
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	for _, action := range leaf.OnUpdate {
		action(ctx)
	}

	m.fire(ctx, EventTick)
}

// HandleEvent routes a named event, returns true if it caused a transition
func (m *Machine[T]) HandleEvent(ctx T, event string) bool {
	if m.activeStateID == StateNone || event == EventTick {
		return false
	}
	return m.fire(ctx, event)
}

// fire evaluates transitions matching event, bubbling from leaf to root
func (m *Machine[T]) fire(ctx T, event string) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != event {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				return m.transition(ctx, trans.TargetID)
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs a state change; a transition to the active state is a no-op
func (m *Machine[T]) transition(ctx T, targetID StateID) bool {
	if m.activeStateID == targetID {
		return false
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", targetID))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit phase: walk up from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action(ctx)
		}
	}

	// Enter phase: walk down from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action(ctx)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)
	m.transitions++
	return true
}

// Go forces a transition regardless of guards, returns false for self-transition
func (m *Machine[T]) Go(ctx T, targetID StateID) bool {
	if m.activeStateID == StateNone {
		return false
	}
	return m.transition(ctx, targetID)
}

// State returns the active leaf state ID
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active leaf state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// TransitionCount returns the number of state changes since creation
func (m *Machine[T]) TransitionCount() uint64 {
	return m.transitions
}

// IsIn reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) IsIn(id StateID) bool {
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}
