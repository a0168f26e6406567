package types

import (
	"github.com/samber/lo"
)

// Setting is the complete input of a formation run: the roster, the desired
// number of teams, and the flatten flag.
//
// A Setting is constructed once, by a roster.SettingSource or literally in
// code, and validated before formation consumes it. Formation never
// mutates it; the classifier methods below are pure projections that copy
// people out of the attendee list.
//
// Wire keys match the settings-file format:
//
//	num_of_teams = 2
//	flat = false
//
//	[[attendees]]
//	person = { name = "alice" }
//	leader = true
type Setting struct {
	// Attendees is the source-of-truth participant list, in file order.
	Attendees []Attendee `mapstructure:"attendees" yaml:"attendees" toml:"attendees" validate:"dive"`

	// NumTeams is the number of teams to form. Must be greater than zero.
	NumTeams int `mapstructure:"num_of_teams" yaml:"num_of_teams" toml:"num_of_teams"`

	// Flat disables the leader/non-leader distinction: every attendee
	// becomes a leader candidate. nil is equivalent to false.
	Flat *bool `mapstructure:"flat" yaml:"flat,omitempty" toml:"flat,omitempty"`
}

// IsFlat reports whether the leader/non-leader distinction is disabled.
func (s *Setting) IsFlat() bool {
	return s.Flat != nil && *s.Flat
}

// LeaderCandidates returns the people eligible to lead a team, in roster order.
//
// With the flat flag set every attendee is a candidate; otherwise only
// attendees whose leader flag resolves true qualify.
//
// Returns:
//   - []Person: Copied people; mutating the result does not touch the setting
func (s *Setting) LeaderCandidates() []Person {
	if s.IsFlat() {
		return s.AllPeople()
	}

	leaders := lo.Filter(s.Attendees, func(a Attendee, _ int) bool { return a.IsLeader() })

	return lo.Map(leaders, func(a Attendee, _ int) Person { return a.Person })
}

// NormalAttendees returns the people not eligible to lead, in roster order.
//
// With the flat flag set the result is empty: everyone is a leader candidate
// and the distribution pool is built from leftover candidates alone.
//
// Returns:
//   - []Person: Copied people; mutating the result does not touch the setting
func (s *Setting) NormalAttendees() []Person {
	if s.IsFlat() {
		return []Person{}
	}

	rest := lo.Filter(s.Attendees, func(a Attendee, _ int) bool { return !a.IsLeader() })

	return lo.Map(rest, func(a Attendee, _ int) Person { return a.Person })
}

// AllPeople returns every person on the roster, in roster order.
//
// Returns:
//   - []Person: Copied people; mutating the result does not touch the setting
func (s *Setting) AllPeople() []Person {
	return lo.Map(s.Attendees, func(a Attendee, _ int) Person { return a.Person })
}

// Validate checks the domain constraints a formation run depends on.
//
// Rules:
//   - NumTeams must be greater than zero
//   - The leader-candidate count (after applying the flat flag) must be at
//     least NumTeams, so every team can be given a leader
//
// Shape constraints (attendees present, every person named) are the loading
// layer's responsibility; Validate assumes a structurally sound Setting.
//
// Returns:
//   - error: ErrTeamCountZero, *InsufficientLeadersError, or nil when valid
func (s *Setting) Validate() error {
	if s.NumTeams <= 0 {
		return ErrTeamCountZero
	}

	if candidates := len(s.LeaderCandidates()); candidates < s.NumTeams {
		return &InsufficientLeadersError{
			Available: candidates,
			Required:  s.NumTeams,
		}
	}

	return nil
}
