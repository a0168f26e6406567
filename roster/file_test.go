package roster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	guctest "github.com/tetsuya-zama/guccicci/testing"
	"github.com/tetsuya-zama/guccicci/types"
)

func TestFile_Fetch(t *testing.T) {
	t.Run("loads a TOML settings file", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", `
num_of_teams = 2

[[attendees]]
person = { name = "alice" }
leader = true

[[attendees]]
person = { name = "bob" }

[[attendees]]
person = { name = "carol" }
leader = true
`)

		setting, err := NewFile(path).Fetch(context.Background())

		require.NoError(t, err)
		require.Equal(t, 2, setting.NumTeams)
		require.Nil(t, setting.Flat)
		require.Equal(t, []types.Attendee{
			{Person: types.Person{Name: "alice"}, Leader: lo.ToPtr(true)},
			{Person: types.Person{Name: "bob"}},
			{Person: types.Person{Name: "carol"}, Leader: lo.ToPtr(true)},
		}, setting.Attendees)
	})

	t.Run("loads a YAML settings file", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.yaml", `
num_of_teams: 2
flat: true
attendees:
  - person:
      name: alice
  - person:
      name: bob
    leader: false
`)

		setting, err := NewFile(path).Fetch(context.Background())

		require.NoError(t, err)
		require.Equal(t, 2, setting.NumTeams)
		require.True(t, setting.IsFlat())
		require.Equal(t, []types.Attendee{
			{Person: types.Person{Name: "alice"}},
			{Person: types.Person{Name: "bob"}, Leader: lo.ToPtr(false)},
		}, setting.Attendees)
	})

	t.Run("loaded settings carry domain errors through Validate", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", `
num_of_teams = 3

[[attendees]]
person = { name = "alice" }
leader = true
`)

		setting, err := NewFile(path).Fetch(context.Background())
		require.NoError(t, err)

		var lackErr *types.InsufficientLeadersError
		require.ErrorAs(t, setting.Validate(), &lackErr)
		require.Equal(t, 1, lackErr.Available)
		require.Equal(t, 3, lackErr.Required)
	})

	t.Run("fails when the file is missing", func(t *testing.T) {
		_, err := NewFile(filepath.Join(t.TempDir(), "missing.toml")).Fetch(context.Background())

		require.Error(t, err)
		require.Contains(t, err.Error(), "read settings file")
	})

	t.Run("fails on malformed TOML", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", `num_of_teams = = 2`)

		_, err := NewFile(path).Fetch(context.Background())

		require.Error(t, err)
	})

	t.Run("rejects an unnamed person", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", `
num_of_teams = 1

[[attendees]]
person = { name = "" }
leader = true
`)

		_, err := NewFile(path).Fetch(context.Background())

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid settings file")
	})
}

func TestFile_Path(t *testing.T) {
	require.Equal(t, "teams.toml", NewFile("teams.toml").Path())
}
