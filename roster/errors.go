package roster

import "errors"

// ErrNilSource indicates that no file source was provided to the watcher.
var ErrNilSource = errors.New("file source is required")

// ErrNilCallback indicates that no change callback was provided to the watcher.
var ErrNilCallback = errors.New("change callback is required")
