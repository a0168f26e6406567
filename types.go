package guccicci

import "github.com/tetsuya-zama/guccicci/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing subpackages
// (shuffle, roster, render) to depend on `types` without depending on the
// root `guccicci` package, while still providing a convenient
// `guccicci.Setting`, `guccicci.Team`, etc. for users.
type (
	Person   = types.Person
	Attendee = types.Attendee
	Setting  = types.Setting
	Team     = types.Team
	TeamSet  = types.TeamSet
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Shuffler      = types.Shuffler
	SettingSource = types.SettingSource
	Logger        = types.Logger
)

// InsufficientLeadersError reports how many leader candidates were available
// versus how many the setting required. Match it with errors.As.
type InsufficientLeadersError = types.InsufficientLeadersError
