package testing

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeader(t *testing.T) {
	attendee := Leader("alice")

	require.Equal(t, "alice", attendee.Person.Name)
	require.True(t, attendee.IsLeader())
}

func TestMember(t *testing.T) {
	attendee := Member("bob")

	require.Equal(t, "bob", attendee.Person.Name)
	require.False(t, attendee.IsLeader())
	require.Nil(t, attendee.Leader)
}

func TestNewSetting(t *testing.T) {
	setting := NewSetting(2, Leader("alice"), Leader("bob"), Member("carol"))

	require.Equal(t, 2, setting.NumTeams)
	require.Len(t, setting.Attendees, 3)

	// A fixture built this way should pass domain validation
	require.NoError(t, setting.Validate())
}

func TestWriteSettings(t *testing.T) {
	path := WriteSettings(t, "teams.toml", "num_of_teams = 2\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "num_of_teams = 2\n", string(data))
}
