// Package types provides core type definitions and interfaces for the guccicci library.
//
// This package contains shared types that are used across multiple packages in
// the library. By keeping these types in a separate package, we avoid import
// cycles between the main guccicci package and the packages that implement
// setting discovery, shuffling, and rendering.
//
// Key types:
//   - Person: A participant identified by name
//   - Attendee: A participant plus an optional leader-eligibility flag
//   - Setting: Formation input (attendees, team count, flatten flag)
//   - Team: One leader plus the members assigned to them
//   - TeamSet: The ordered teams produced by a formation run
//   - Shuffler: Pluggable shuffle policy interface
//   - SettingSource: Pluggable setting discovery interface
//   - Logger: Structured logging interface
package types
