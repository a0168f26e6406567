package types

// Attendee is one entry of the roster: a person plus an optional
// leader-eligibility flag.
//
// The flag is tri-state on the wire (absent, false, true) and absent resolves
// to ineligible, so a minimal settings file only needs to mark its leaders.
// Attendees are read-only once loaded; formation works on projected copies.
type Attendee struct {
	// Person is the participant this entry describes.
	Person Person `mapstructure:"person" yaml:"person" toml:"person" validate:"required"`

	// Leader marks the person as eligible to lead a team.
	// nil is equivalent to false.
	Leader *bool `mapstructure:"leader" yaml:"leader,omitempty" toml:"leader,omitempty"`
}

// IsLeader reports whether this attendee is eligible to become a team leader.
//
// Returns:
//   - bool: true only when the leader flag is present and set
func (a Attendee) IsLeader() bool {
	return a.Leader != nil && *a.Leader
}
