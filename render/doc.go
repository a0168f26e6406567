// Package render provides built-in renderers for formed team sets.
//
// Renderers turn a TeamSet into output on a stream. The package includes:
//
//   - TOML: Default output, same dialect as the settings file
//   - YAML: Same document shape in YAML
//   - Table: Human-readable terminal table, optionally colorized
//
// TOML and YAML share one wire layout (a team list with leader and member
// entries), so a rendered team set can be archived and diffed across runs.
//
// Custom renderers can be implemented by satisfying the Renderer interface.
package render
