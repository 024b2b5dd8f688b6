package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors for the data-model preconditions of spec section 4.3.
// Callers should compare against these with errors.Is; the wrapping types
// below attach the offending identifier.
var (
	// ErrDuplicateState indicates AddState was called with an id already
	// present in the automaton.
	ErrDuplicateState = errors.New("duplicate state")

	// ErrUnknownState indicates an operation referenced a state id that is
	// not present in the automaton.
	ErrUnknownState = errors.New("unknown state")

	// ErrNoStartState indicates a transformation was requested on an
	// automaton that has no start state set.
	ErrNoStartState = errors.New("automaton has no start state")

	// ErrStateLimitExceeded indicates a transformation (chiefly subset
	// construction) exceeded the configured state-count guard.
	ErrStateLimitExceeded = errors.New("state limit exceeded")
)

// StateError wraps ErrDuplicateState or ErrUnknownState with the offending
// state id. It is the error returned by AddState, SetStart, AddTransition,
// and EpsilonClosure when a precondition is violated. RemoveEpsilons,
// SubsetConstruct, and Rename also return it wrapping ErrNoStartState, with
// an empty ID.
type StateError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.ID)
}

// Unwrap allows errors.Is(err, ErrDuplicateState) / ErrUnknownState /
// ErrNoStartState to work.
func (e *StateError) Unwrap() error {
	return e.Err
}

// LimitError wraps ErrStateLimitExceeded with the limit that was hit.
type LimitError struct {
	Limit int
	Err   error
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("%v: limit %d", e.Err, e.Limit)
}

// Unwrap allows errors.Is(err, ErrStateLimitExceeded) to work.
func (e *LimitError) Unwrap() error {
	return e.Err
}
