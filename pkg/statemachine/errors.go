package statemachine

import (
	"errors"
	"fmt"
)

// ErrNoTransition indicates no transition is registered for the given
// state/event combination.
type ErrNoTransition struct {
	State State
	Event Event
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.State, e.Event)
}

// IsNoTransitionError reports whether err is an *ErrNoTransition.
func IsNoTransitionError(err error) bool {
	var e *ErrNoTransition
	return errors.As(err, &e)
}
