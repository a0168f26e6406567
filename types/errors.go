package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the guccicci library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components return the sentinels for known conditions and wrap
// external errors with context using fmt.Errorf("...: %w", err).

// Validation errors - returned by Setting.Validate and propagated unchanged
// through the formation entry points.
var (
	// ErrTeamCountZero is returned when the requested team count is not
	// greater than zero.
	ErrTeamCountZero = errors.New("number of teams must be greater than zero")

	// ErrInsufficientLeaders is the sentinel behind InsufficientLeadersError.
	// Match it with errors.Is; use errors.As to read the counts.
	ErrInsufficientLeaders = errors.New("not enough leader candidates")
)

// InsufficientLeadersError reports that the roster cannot provide a leader
// for every requested team.
//
// Available is the leader-candidate count after applying the flat flag;
// Required is the requested team count. Both fields are always populated.
type InsufficientLeadersError struct {
	// Available is the number of leader candidates on the roster.
	Available int

	// Required is the number of teams that need a leader.
	Required int
}

// Error implements the error interface.
func (e *InsufficientLeadersError) Error() string {
	return fmt.Sprintf(
		"number of leader candidates (%d) must be greater than or equal to number of teams (%d)",
		e.Available, e.Required,
	)
}

// Unwrap makes errors.Is(err, ErrInsufficientLeaders) match wrapped values.
func (e *InsufficientLeadersError) Unwrap() error {
	return ErrInsufficientLeaders
}
