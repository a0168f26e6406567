package guccicci

import (
	"errors"

	"github.com/tetsuya-zama/guccicci/types"
)

// Sentinel errors returned by Form and Run.
var (
	// ErrNilSetting is returned when the setting is nil.
	ErrNilSetting = errors.New("setting is required")

	// ErrNilShuffler is returned when the shuffler is nil.
	ErrNilShuffler = errors.New("shuffler is required")
)

// Re-export validation sentinels from the types subpackage so callers can
// match formation failures without importing types directly.
var (
	// ErrTeamCountZero is returned when the setting asks for zero teams.
	ErrTeamCountZero = types.ErrTeamCountZero

	// ErrInsufficientLeaders is returned when there are fewer leader
	// candidates than teams to form.
	ErrInsufficientLeaders = types.ErrInsufficientLeaders
)
