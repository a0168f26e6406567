package types

import "context"

// SettingSource discovers and provides the formation setting.
//
// Implementations can read various backends:
//   - File: a TOML/YAML/JSON settings file (roster.File)
//   - Static: a fixed in-memory setting for tests (roster.Static)
//   - Custom: any dynamic roster discovery logic
//
// The CLI fetches once per formation run; watch mode fetches again on every
// settings-file change.
type SettingSource interface {
	// Fetch returns the current setting.
	//
	// Implementations should:
	//   - Return an independent copy the caller may hold onto
	//   - Handle context cancellation gracefully
	//   - Return errors for unreadable or structurally invalid input
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - *Setting: The discovered setting
	//   - error: Discovery error (nil on success)
	Fetch(ctx context.Context) (*Setting, error)
}
