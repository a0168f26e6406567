package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	guctest "github.com/tetsuya-zama/guccicci/testing"
	"github.com/tetsuya-zama/guccicci/types"
)

const oneTeamSettings = `
num_of_teams = 1

[[attendees]]
person = { name = "alice" }
leader = true
`

const threeTeamSettings = `
num_of_teams = 3

[[attendees]]
person = { name = "alice" }
leader = true

[[attendees]]
person = { name = "bob" }
leader = true

[[attendees]]
person = { name = "carol" }
leader = true
`

// startWatcher wires a watcher with a short debounce to a buffered channel
// and starts it under a test-scoped context.
func startWatcher(t *testing.T, src *File) <-chan *types.Setting {
	t.Helper()

	updates := make(chan *types.Setting, 4)
	w, err := NewWatcher(src, func(s *types.Setting) { updates <- s },
		WithDebounce(20*time.Millisecond),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))

	return updates
}

func TestNewWatcher(t *testing.T) {
	t.Run("requires a source", func(t *testing.T) {
		_, err := NewWatcher(nil, func(*types.Setting) {})
		require.ErrorIs(t, err, ErrNilSource)
	})

	t.Run("requires a callback", func(t *testing.T) {
		_, err := NewWatcher(NewFile("teams.toml"), nil)
		require.ErrorIs(t, err, ErrNilCallback)
	})
}

func TestWatcher(t *testing.T) {
	t.Run("delivers the reloaded setting after a write", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", oneTeamSettings)
		updates := startWatcher(t, NewFile(path))

		require.NoError(t, os.WriteFile(path, []byte(threeTeamSettings), 0644))

		select {
		case setting := <-updates:
			require.Equal(t, 3, setting.NumTeams)
			require.Len(t, setting.Attendees, 3)
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for reload")
		}
	})

	t.Run("survives an invalid edit and delivers the next valid one", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", oneTeamSettings)
		updates := startWatcher(t, NewFile(path))

		require.NoError(t, os.WriteFile(path, []byte(`num_of_teams = = broken`), 0644))
		time.Sleep(150 * time.Millisecond)

		require.NoError(t, os.WriteFile(path, []byte(threeTeamSettings), 0644))

		select {
		case setting := <-updates:
			// The broken revision must never surface.
			require.Equal(t, 3, setting.NumTeams)
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for reload")
		}
	})

	t.Run("ignores sibling files in the same directory", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", oneTeamSettings)
		updates := startWatcher(t, NewFile(path))

		sibling := path + ".bak"
		require.NoError(t, os.WriteFile(sibling, []byte(threeTeamSettings), 0644))

		select {
		case <-updates:
			t.Fatal("unexpected reload for a sibling file")
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("releases the file watcher when the watch cannot be registered", func(t *testing.T) {
		src := NewFile(filepath.Join(t.TempDir(), "missing", "teams.toml"))
		w, err := NewWatcher(src, func(*types.Setting) {})
		require.NoError(t, err)

		require.Error(t, w.Start(context.Background()))

		// A failed Start must close the underlying watcher, not leak it.
		require.ErrorIs(t, w.watcher.Add(t.TempDir()), fsnotify.ErrClosed)
	})

	t.Run("stops reloading once the context is canceled", func(t *testing.T) {
		path := guctest.WriteSettings(t, "teams.toml", oneTeamSettings)
		src := NewFile(path)

		updates := make(chan *types.Setting, 4)
		w, err := NewWatcher(src, func(s *types.Setting) { updates <- s },
			WithDebounce(20*time.Millisecond),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, w.Start(ctx))

		cancel()
		time.Sleep(50 * time.Millisecond)

		require.NoError(t, os.WriteFile(path, []byte(threeTeamSettings), 0644))

		select {
		case <-updates:
			t.Fatal("unexpected reload after cancellation")
		case <-time.After(200 * time.Millisecond):
		}
	})
}
