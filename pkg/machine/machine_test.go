package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testState string

const (
	statePending   testState = "Pending"
	stateSubmitted testState = "Submitted"
	stateCanceled  testState = "Canceled"
	stateDone      testState = "Done"
)

func testTable() Table[testState] {
	return Table[testState]{
		statePending:   {stateSubmitted},
		stateSubmitted: {stateDone, stateCanceled},
	}
}

func TestTransition(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		m := New(statePending, testTable())

		err := m.Transition(stateSubmitted)
		assert.Nil(t, err)
		assert.Equal(t, stateSubmitted, m.Current())
	})

	t.Run("invalid transition", func(t *testing.T) {
		m := New(stateSubmitted, testTable())

		err := m.Transition(statePending)
		assert.Equal(t, ErrInvalidTransition, err)
		assert.Equal(t, stateSubmitted, m.Current())
	})

	t.Run("terminal state has no transitions", func(t *testing.T) {
		m := New(stateDone, testTable())

		assert.False(t, m.CanTransition(statePending))
		assert.False(t, m.CanTransition(stateSubmitted))
	})
}

func TestCanTransition(t *testing.T) {
	m := New(stateSubmitted, testTable())

	assert.True(t, m.CanTransition(stateDone))
	assert.True(t, m.CanTransition(stateCanceled))
	assert.False(t, m.CanTransition(stateSubmitted))
}
