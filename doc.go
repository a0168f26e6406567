// Package guccicci provides a Go library for splitting a roster of attendees
// into teams, each led by exactly one leader.
//
// Guccicci takes a roster (who is attending, who is willing to lead), the
// number of teams to form, and produces that many teams with one leader and a
// near-even share of the remaining attendees each. Shuffling is pluggable, so
// formation can be fully random for real events or fully deterministic for
// tests and dry runs.
//
// # Quick Start
//
// Basic usage with the default random shuffler:
//
//	import "github.com/tetsuya-zama/guccicci"
//
//	setting := guccicci.Setting{
//	    Attendees: []guccicci.Attendee{
//	        {Person: guccicci.Person{Name: "alice"}, Leader: lo.ToPtr(true)},
//	        {Person: guccicci.Person{Name: "bob"}},
//	        {Person: guccicci.Person{Name: "carol"}, Leader: lo.ToPtr(true)},
//	    },
//	    NumTeams: 2,
//	}
//
//	teams, err := guccicci.Run(&setting)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - One Leader Per Team: Leaders are drafted from self-declared candidates before members are dealt
//   - Even Distribution: Team sizes never differ by more than one member
//   - Pluggable Shuffling: Random for production, identity or seeded for reproducible runs
//   - Flat Mode: Treat every attendee as a leader candidate for leaderless groups
//   - Roster Loading: TOML and YAML setting files with validation and live reload
//
// # Architecture
//
// Formation is a deterministic pipeline around a single shuffler:
//
//	validate → shuffle candidates → draft leaders → shuffle rest → deal round-robin
//
// Leaders are drawn from the end of the shuffled candidate pool, and members
// are dealt one at a time to each team in turn until the pool is empty. With
// the identity shuffler the whole pipeline is a pure function of the roster
// order, which is what the deterministic examples and tests rely on.
//
// # Advanced Usage
//
// Reproducible formation with a seeded shuffler:
//
//	import (
//	    "github.com/tetsuya-zama/guccicci"
//	    "github.com/tetsuya-zama/guccicci/shuffle"
//	)
//
//	shuffler := shuffle.NewRandom(
//	    shuffle.WithSeedLabel("sprint-42 retro"),
//	)
//
//	teams, err := guccicci.Form(&setting, shuffler)
//
// Loading the roster from a settings file:
//
//	import "github.com/tetsuya-zama/guccicci/roster"
//
//	src := roster.NewFile("teams.toml")
//	setting, err := src.Fetch(ctx)
//
// See the examples/ directory for complete working examples.
package guccicci
