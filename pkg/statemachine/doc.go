// Package statemachine provides a record-oriented finite state machine for
// entities whose state is persisted outside the machine.
//
// The package revolves around two minimal interfaces – State and Event – that
// give you full freedom to model domain specific states and events while the
// library handles:
//  1. Transition validation and lookup
//  2. Optional Guard evaluation to accept or reject transitions
//  3. Execution of side-effect Actions during transitions
//  4. Concurrency-safe access to the transition table
//
// Unlike a classic FSM object, a Machine holds no current state: it is a
// shared transition table. The caller passes the record's current state to
// Fire and receives the target state back, which it persists together with
// any fields the actions mutated. Any action error aborts the transition and
// the caller keeps the record at its pre-transition state.
//
// # Usage
//
//	const (
//	    Draft    = statemachine.StringState("draft")
//	    InReview = statemachine.StringState("in_review")
//	    Submit   = statemachine.StringEvent("submit")
//	)
//
//	machine := statemachine.MustNew(
//	    statemachine.WithTransition(Draft, InReview, Submit),
//	)
//
//	next, err := machine.Fire(ctx, Draft, Submit, record)
//
// # Error Handling
//
// Fire returns *InvalidTransitionError when the event is not allowed from the
// given state (either undefined or rejected by guards):
//
//	if statemachine.IsInvalidTransitionError(err) { /* reject the request */ }
package statemachine
