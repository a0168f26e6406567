package roster

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tetsuya-zama/guccicci/internal/logging"
	"github.com/tetsuya-zama/guccicci/types"
)

// OnSettingChanged receives the freshly loaded setting after the watched
// settings file changes on disk.
type OnSettingChanged func(setting *types.Setting)

// Watcher re-fetches a file-backed setting source whenever the settings file
// changes and hands the result to a callback.
//
// Editors typically replace files via rename and emit several events per
// save, so the watcher registers on the parent directory and debounces
// events before fetching. A fetch failure is logged and skipped; the
// previously delivered setting stays in effect.
type Watcher struct {
	source   *File
	onChange OnSettingChanged
	debounce time.Duration
	logger   types.Logger

	watcher *fsnotify.Watcher
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides the event debounce window (default: 100ms).
//
// Parameters:
//   - d: Quiet period to wait after the last event before fetching
//
// Returns:
//   - WatcherOption: Configuration option
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets a logger for reload and watch diagnostics.
//
// Parameters:
//   - logger: Logger implementation (default: no-op)
//
// Returns:
//   - WatcherOption: Configuration option
func WithLogger(logger types.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a watcher for src's settings file.
//
// Parameters:
//   - src: File source to re-fetch on change
//   - onChange: Callback receiving each successfully loaded setting
//   - opts: Optional configuration (WithDebounce, WithLogger)
//
// Returns:
//   - *Watcher: Initialized watcher; call Start to begin watching
//   - error: ErrNilSource, ErrNilCallback, or a filesystem watcher failure
//
// Example:
//
//	src := roster.NewFile("teams.toml")
//	w, err := roster.NewWatcher(src, func(s *types.Setting) {
//	    if teams, err := guccicci.Run(s); err == nil {
//	        _ = render.NewTOML().Render(os.Stdout, teams)
//	    }
//	})
func NewWatcher(src *File, onChange OnSettingChanged, opts ...WatcherOption) (*Watcher, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if onChange == nil {
		return nil, ErrNilCallback
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create filesystem watcher: %w", err)
	}

	w := &Watcher{
		source:   src,
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		logger:   logging.NewNop(),
		watcher:  fsw,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start begins watching the settings file and returns immediately. The watch
// loop runs until ctx is canceled, which also releases the underlying
// filesystem watcher.
//
// Parameters:
//   - ctx: Context governing the watch loop's lifetime
//
// Returns:
//   - error: Failure to register the watch
func (w *Watcher) Start(ctx context.Context) error {
	// Watch the parent directory, not the file: editors that save via
	// rename would otherwise silently drop a watch on the file itself.
	dir := filepath.Dir(w.source.Path())
	if err := w.watcher.Add(dir); err != nil {
		// The watch loop never starts, so its deferred Close cannot run.
		_ = w.watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Debug("watching settings file", "path", w.source.Path())

	go w.watchLoop(ctx)

	return nil
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.watcher.Close() //nolint:errcheck

	// Debounce events - editors create multiple events for a single save
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	target := filepath.Clean(w.source.Path())

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			debounce.Reset(w.debounce)

		case <-debounce.C:
			w.reload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watch error", "error", err)
		}
	}
}

// reload fetches the settings file and delivers the result. Load failures
// are logged and skipped so a half-saved file cannot kill the watch loop.
func (w *Watcher) reload(ctx context.Context) {
	setting, err := w.source.Fetch(ctx)
	if err != nil {
		w.logger.Warn("settings reload skipped", "path", w.source.Path(), "error", err)
		return
	}

	w.logger.Info("settings reloaded",
		"path", w.source.Path(),
		"attendees", len(setting.Attendees),
		"num_of_teams", setting.NumTeams,
	)

	w.onChange(setting)
}
