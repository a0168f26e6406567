package roster

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	guctest "github.com/tetsuya-zama/guccicci/testing"
	"github.com/tetsuya-zama/guccicci/types"
)

func TestStatic_Fetch(t *testing.T) {
	t.Run("returns the held setting", func(t *testing.T) {
		setting := guctest.NewSetting(1, guctest.Leader("alice"), guctest.Member("bob"))
		src := NewStatic(setting)

		result, err := src.Fetch(context.Background())

		require.NoError(t, err)
		require.Equal(t, setting.Attendees, result.Attendees)
		require.Equal(t, 1, result.NumTeams)
	})

	t.Run("returns an empty roster unchanged", func(t *testing.T) {
		src := NewStatic(types.Setting{NumTeams: 2})

		result, err := src.Fetch(context.Background())

		require.NoError(t, err)
		require.Empty(t, result.Attendees)
		require.Equal(t, 2, result.NumTeams)
	})

	t.Run("does not share the attendee slice", func(t *testing.T) {
		setting := types.Setting{
			Attendees: []types.Attendee{{Person: types.Person{Name: "alice"}}},
			NumTeams:  1,
		}
		src := NewStatic(setting)

		result, err := src.Fetch(context.Background())
		require.NoError(t, err)

		// Modify returned attendees
		result.Attendees[0].Person.Name = "mutated"

		// Source should be unchanged
		again, _ := src.Fetch(context.Background())
		require.Equal(t, "alice", again.Attendees[0].Person.Name)
	})

	t.Run("does not share the leader and flat pointers", func(t *testing.T) {
		setting := guctest.NewSetting(1, guctest.Leader("alice"))
		setting.Flat = lo.ToPtr(false)
		src := NewStatic(setting)

		fetched, err := src.Fetch(context.Background())
		require.NoError(t, err)

		// Writing through the fetched copy's pointer fields must not reach
		// the source.
		*fetched.Attendees[0].Leader = false
		*fetched.Flat = true

		again, _ := src.Fetch(context.Background())
		require.True(t, again.Attendees[0].IsLeader())
		require.False(t, again.IsFlat())
	})
}

func TestStatic_Update(t *testing.T) {
	t.Run("replaces the held setting", func(t *testing.T) {
		src := NewStatic(types.Setting{NumTeams: 1})

		src.Update(guctest.NewSetting(3, guctest.Leader("carol")))

		result, err := src.Fetch(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, result.NumTeams)
		require.Len(t, result.Attendees, 1)
		require.Equal(t, "carol", result.Attendees[0].Person.Name)
	})
}
