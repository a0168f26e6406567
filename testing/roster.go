package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"

	"github.com/tetsuya-zama/guccicci/types"
)

// Leader returns an attendee marked as a leader candidate.
func Leader(name string) types.Attendee {
	return types.Attendee{Person: types.Person{Name: name}, Leader: lo.ToPtr(true)}
}

// Member returns an attendee with no leader eligibility.
func Member(name string) types.Attendee {
	return types.Attendee{Person: types.Person{Name: name}}
}

// NewSetting assembles a setting from attendees.
//
// Example:
//
//	setting := guctest.NewSetting(2,
//	    guctest.Leader("alice"),
//	    guctest.Leader("bob"),
//	    guctest.Member("carol"),
//	)
func NewSetting(numTeams int, attendees ...types.Attendee) types.Setting {
	return types.Setting{Attendees: attendees, NumTeams: numTeams}
}

// WriteSettings drops a settings file into a fresh temp directory and returns
// its path. The directory is cleaned up when the test completes.
func WriteSettings(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings file %s: %v", name, err)
	}

	return path
}
