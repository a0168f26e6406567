package types

// Person represents a single participant.
//
// A person is identified by name only. Names are opaque strings and
// uniqueness is not enforced; two attendees may share a name and are then
// treated as distinct people that happen to render identically.
//
// Person is a small value type. Formation copies people between pools and
// into teams, so a TeamSet never aliases the attendee list it was built from.
type Person struct {
	// Name identifies the person in settings files and rendered output.
	Name string `mapstructure:"name" yaml:"name" toml:"name" validate:"required"`
}
