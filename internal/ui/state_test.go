package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_HappyPaths(t *testing.T) {
	s, err := Transition(Idle, Submit, "great film")
	require.NoError(t, err)
	assert.Equal(t, Submitting, s)

	s, err = Transition(s, Succeed, "")
	require.NoError(t, err)
	assert.Equal(t, Success, s)

	s, err = Transition(s, Reset, "")
	require.NoError(t, err)
	assert.Equal(t, Idle, s)

	s, err = Transition(Submitting, Fail, "")
	require.NoError(t, err)
	assert.Equal(t, Failure, s)

	s, err = Transition(s, Reset, "")
	require.NoError(t, err)
	assert.Equal(t, Idle, s)
}

func TestTransition_BlankReviewBlocked(t *testing.T) {
	for _, review := range []string{"", " ", "\n\t "} {
		s, err := Transition(Idle, Submit, review)
		assert.ErrorIs(t, err, ErrBlankReview)
		assert.Equal(t, Idle, s)
	}
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		state State
		event Event
	}{
		{Submitting, Submit},
		{Success, Submit},
		{Failure, Submit},
		{Idle, Succeed},
		{Idle, Fail},
		{Success, Fail},
		{Idle, Reset},
		{Submitting, Reset},
	}

	for _, tt := range tests {
		t.Run(tt.state.String()+"/"+tt.event.String(), func(t *testing.T) {
			s, err := Transition(tt.state, tt.event, "great film")
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.state, s)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "failure", Failure.String())
	assert.Equal(t, "State(9)", State(9).String())
}
