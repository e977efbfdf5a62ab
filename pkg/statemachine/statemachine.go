package statemachine

import "sync"

// State is a named state in the machine.
type State string

// Event triggers a state transition.
type Event string

// Machine is a small thread-safe finite state machine with a fixed
// transition table: exactly one target state per (state, event) pair.
// Firing an event with no registered transition fails and leaves the
// current state untouched.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[State]map[Event]State
}

// New creates a machine starting in the given state.
func New(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[State]map[Event]State),
	}
}

// AddTransition registers from --event--> to and returns the machine so
// transition tables can be declared in one chained expression. Registering
// the same (from, event) pair twice replaces the earlier target.
func (m *Machine) AddTransition(from State, event Event, to State) *Machine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[Event]State)
	}
	m.transitions[from][event] = to
	return m
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies the event and returns the resulting state. When no transition
// is registered for the current state and event, it returns the unchanged
// current state and an *ErrNoTransition.
func (m *Machine) Fire(event Event) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	to, ok := m.transitions[m.current][event]
	if !ok {
		return m.current, &ErrNoTransition{State: m.current, Event: event}
	}
	m.current = to
	return m.current, nil
}

// CanFire reports whether the event has a registered transition from the
// current state.
func (m *Machine) CanFire(event Event) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.transitions[m.current][event]
	return ok
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
