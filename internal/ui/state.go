// Package ui holds the review page: its submit state machine and the
// server-rendered view for each state.
package ui

import (
	"errors"
	"fmt"
	"strings"
)

type State int

const (
	Idle State = iota
	Submitting
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Event int

const (
	Submit Event = iota
	Succeed
	Fail
	Reset
)

func (e Event) String() string {
	switch e {
	case Submit:
		return "submit"
	case Succeed:
		return "succeed"
	case Fail:
		return "fail"
	case Reset:
		return "reset"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrBlankReview       = errors.New("review text is blank")
)

// Transition returns the state after event. Submit is only accepted from Idle
// and only when review has non-whitespace text, which keeps at most one
// request in flight.
func Transition(state State, event Event, review string) (State, error) {
	switch {
	case event == Submit && state == Idle:
		if IsBlank(review) {
			return state, ErrBlankReview
		}
		return Submitting, nil
	case event == Succeed && state == Submitting:
		return Success, nil
	case event == Fail && state == Submitting:
		return Failure, nil
	case event == Reset && (state == Success || state == Failure):
		return Idle, nil
	}
	return state, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, state)
}

func IsBlank(review string) bool {
	return strings.TrimSpace(review) == ""
}
