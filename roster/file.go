package roster

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/tetsuya-zama/guccicci/types"
)

// validate covers the shape of loaded settings files: every attendee entry
// carries a named person. Domain rules stay with Setting.Validate.
var validate = validator.New()

// File implements a setting source backed by a TOML or YAML settings file.
//
// Fetch reads the file fresh on every call, so a Watcher observing the file
// never serves stale content. The format is inferred from the file extension.
type File struct {
	path string
}

var _ types.SettingSource = (*File)(nil)

// NewFile creates a new file-backed setting source.
//
// The file is not touched until Fetch, so the source can be constructed
// before the file exists.
//
// Parameters:
//   - path: Settings file path (.toml, .yaml, or .yml)
//
// Returns:
//   - *File: Initialized file source
//
// Example:
//
//	src := roster.NewFile("teams.toml")
//	setting, err := src.Fetch(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	teams, err := guccicci.Run(setting)
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the settings file path.
func (f *File) Path() string {
	return f.path
}

// Fetch loads the settings file and shape-checks the decoded setting.
//
// Returns:
//   - *types.Setting: The loaded setting
//   - error: Read, parse, or shape failure, wrapped with the file path
func (f *File) Fetch(_ context.Context) (*types.Setting, error) {
	v := viper.New()
	v.SetConfigFile(f.path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", f.path, err)
	}

	var setting types.Setting
	if err := v.Unmarshal(&setting); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", f.path, err)
	}

	if err := validate.Struct(&setting); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", f.path, err)
	}

	return &setting, nil
}
