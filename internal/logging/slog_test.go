package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetsuya-zama/guccicci/types"
)

// captureLogger returns a text-handler logger at the given level together
// with the buffer it writes to.
func captureLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := captureLogger(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	require.NotNil(t, NewSlogDefault().logger)
}

func TestSlogLogger(t *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)

	t.Run("writes each level with its key-value pairs", func(t *testing.T) {
		logger, buf := captureLogger(slog.LevelDebug)

		logger.Debug("loading settings", "path", "teams.toml")
		logger.Info("teams formed", "teams", 2)
		logger.Warn("reload skipped", "reason", "parse")
		logger.Error("formation failed", "error", "no leaders")

		out := buf.String()
		require.Contains(t, out, "level=DEBUG")
		require.Contains(t, out, "path=teams.toml")
		require.Contains(t, out, "level=INFO")
		require.Contains(t, out, "teams=2")
		require.Contains(t, out, "level=WARN")
		require.Contains(t, out, "reason=parse")
		require.Contains(t, out, "level=ERROR")
		require.Contains(t, out, `error="no leaders"`)
	})

	t.Run("respects the handler level", func(t *testing.T) {
		logger, buf := captureLogger(slog.LevelWarn)

		logger.Debug("below the threshold")
		logger.Info("still below")
		logger.Warn("visible")

		out := buf.String()
		require.NotContains(t, out, "below")
		require.Contains(t, out, "visible")
	})

	t.Run("keeps every pair of a long record", func(t *testing.T) {
		logger, buf := captureLogger(slog.LevelInfo)

		logger.Info("settings reloaded",
			"path", "teams.toml",
			"attendees", 12,
			"num_of_teams", 3,
			"flat", false)

		out := buf.String()
		require.Contains(t, out, "settings reloaded")
		require.Contains(t, out, "attendees=12")
		require.Contains(t, out, "num_of_teams=3")
		require.Contains(t, out, "flat=false")
	})
}
