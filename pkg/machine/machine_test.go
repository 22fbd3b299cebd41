package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState string

const (
	statePending   testState = "Pending"
	stateSubmitted testState = "Submitted"
	stateCanceled  testState = "Canceled"
	stateDone      testState = "Done"
)

func TestNewStateMachine(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		machine := New(statePending,
			From(statePending).To(stateSubmitted),
			From(stateSubmitted).To(stateDone, stateCanceled),
		)

		if len(machine.toStates) != 2 {
			t.Errorf("expected %d toStates, got %d", 2, len(machine.toStates))
		}

		err := machine.ToState(stateSubmitted)
		assert.Equal(t, machine.fromState, statePending)
		assert.Nil(t, err)
	})

	t.Run("invalid transition", func(t *testing.T) {
		machine := New(stateSubmitted,
			From(statePending).To(stateSubmitted),
			From(stateSubmitted).To(stateDone, stateCanceled),
		)

		err := machine.ToState(statePending)
		assert.Equal(t, machine.fromState, stateSubmitted)
		assert.Equal(t, err, ErrInvalidTransition)
	})
}

func TestStateMachine_Transition(t *testing.T) {
	t.Run("moves through allowed states", func(t *testing.T) {
		m := New(statePending,
			From(statePending).To(stateSubmitted),
			From(stateSubmitted).To(stateDone, stateCanceled),
		)

		require.NoError(t, m.Transition(stateSubmitted))
		assert.Equal(t, stateSubmitted, m.Current())

		require.NoError(t, m.Transition(stateDone))
		assert.Equal(t, stateDone, m.Current())
	})

	t.Run("rejected transition keeps state", func(t *testing.T) {
		m := New(statePending,
			From(statePending).To(stateSubmitted),
		)

		err := m.Transition(stateDone)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, statePending, m.Current())
	})

	t.Run("self transition must be declared", func(t *testing.T) {
		m := New(statePending,
			From(statePending).To(statePending),
		)

		assert.NoError(t, m.Transition(statePending))
	})
}
