package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Action executes side effects during state transitions. Returning an error prevents the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard  // All must pass for transition to proceed
	Actions []Action // Executed in order; any failure aborts the transition
}

// StringState provides a simple string-based state implementation.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

// Machine is a transition table shared by many records. Unlike a classic FSM
// object it holds no current state of its own: the caller owns the state
// (typically a column on a persisted record) and passes it to Fire, which
// returns the state the record should move to. One Machine instance can
// therefore drive any number of records concurrently.
//
// Uses a nested map structure for O(1) transition lookups: [fromState][event][]Transition.
type Machine struct {
	transitions map[string]map[string][]Transition
	mu          sync.RWMutex
}

func newMachine() *Machine {
	return &Machine{
		transitions: make(map[string]map[string][]Transition),
	}
}

// AddTransition registers a transition. Multiple transitions may share the
// same from/event pair to support guard-based branching.
func (m *Machine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransitionDef
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	fromName := from.Name()
	eventName := event.Name()

	if _, ok := m.transitions[fromName]; !ok {
		m.transitions[fromName] = make(map[string][]Transition)
	}

	m.transitions[fromName][eventName] = append(m.transitions[fromName][eventName], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

// Fire attempts the transition for event from the given current state and
// returns the target state. The caller is responsible for persisting the
// returned state; if any action fails the error is returned and the caller
// must keep the record at its pre-transition state.
func (m *Machine) Fire(ctx context.Context, current State, event Event, data any) (State, error) {
	if current == nil || event == nil {
		return nil, ErrInvalidEvent
	}

	m.mu.RLock()
	transition := m.match(ctx, current, event, data)
	m.mu.RUnlock()

	if transition == nil {
		return nil, NewInvalidTransitionError(current.Name(), event.Name())
	}

	for _, action := range transition.Actions {
		if action != nil {
			if err := action(ctx, current, transition.To, event, data); err != nil {
				return nil, fmt.Errorf("action failed: %w", err)
			}
		}
	}

	return transition.To, nil
}

// CanFire reports whether the event is allowed from the given state.
func (m *Machine) CanFire(ctx context.Context, current State, event Event, data any) bool {
	if current == nil || event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.match(ctx, current, event, data) != nil
}

// match returns the first registered transition whose guards all pass.
// Callers must hold at least a read lock.
func (m *Machine) match(ctx context.Context, current State, event Event, data any) *Transition {
	byEvent, ok := m.transitions[current.Name()]
	if !ok {
		return nil
	}

	transitions, ok := byEvent[event.Name()]
	if !ok {
		return nil
	}

	for i, t := range transitions {
		allGuardsPassed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, current, event, data) {
				allGuardsPassed = false
				break
			}
		}
		if allGuardsPassed {
			return &transitions[i]
		}
	}
	return nil
}
