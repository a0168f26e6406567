// Package roster provides built-in setting source implementations.
//
// Setting sources produce the Setting a formation run consumes.
// The package includes:
//
//   - File: TOML or YAML settings file, read fresh on every Fetch
//   - Static: Fixed in-memory setting
//   - Watcher: Re-fetches a File source whenever the file changes on disk
//
// Sources check the shape of what they load (every attendee entry carries a
// named person); the domain rules (team count, leader pool size) stay with
// Setting.Validate so they apply to every setting no matter where it came from.
//
// Custom sources can be implemented by satisfying the types.SettingSource interface.
package roster
