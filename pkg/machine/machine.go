package machine

import "errors"

type State interface {
	~string
}

var ErrInvalidTransition = errors.New("invalid state transition")

// Table maps a state to the states it may transition to.
type Table[S State] map[S][]S

// Machine tracks the current state of a context and validates transitions
// against its table.
type Machine[S State] struct {
	current S
	table   Table[S]
}

func New[S State](current S, table Table[S]) *Machine[S] {
	return &Machine[S]{current: current, table: table}
}

// Current returns the state the machine is in.
func (m *Machine[S]) Current() S {
	return m.current
}

// CanTransition reports whether the current state may transition to s.
func (m *Machine[S]) CanTransition(s S) bool {
	for _, to := range m.table[m.current] {
		if to == s {
			return true
		}
	}

	return false
}

// Transition advances the machine to s if the table allows it.
func (m *Machine[S]) Transition(s S) error {
	if !m.CanTransition(s) {
		return ErrInvalidTransition
	}

	m.current = s
	return nil
}
