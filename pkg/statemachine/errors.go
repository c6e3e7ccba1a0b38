package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransitionDef = errors.New("invalid transition: from, to, or event cannot be nil")
	ErrInvalidEvent         = errors.New("invalid event: state and event cannot be nil")
)

// InvalidTransitionError indicates the event was fired from a state that is
// not in its allowed source set, or every candidate transition was rejected
// by its guards. The record's state must be left untouched by the caller.
type InvalidTransitionError struct {
	StateName string
	EventName string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event '%s' not allowed from state '%s'", e.EventName, e.StateName)
}

func NewInvalidTransitionError(stateName, eventName string) *InvalidTransitionError {
	return &InvalidTransitionError{
		StateName: stateName,
		EventName: eventName,
	}
}

func IsInvalidTransitionError(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}
