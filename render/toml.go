package render

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/tetsuya-zama/guccicci/types"
)

// TOML renders the team set in the settings-file dialect: a [[team]] array
// of tables, each with a leader table and member entries.
type TOML struct{}

var _ Renderer = (*TOML)(nil)

// NewTOML creates a new TOML renderer.
//
// Returns:
//   - *TOML: Initialized TOML renderer
//
// Example:
//
//	err := render.NewTOML().Render(os.Stdout, teams)
func NewTOML() *TOML {
	return &TOML{}
}

// Render implements Renderer.
func (*TOML) Render(w io.Writer, set *types.TeamSet) error {
	if set == nil {
		return ErrNilTeamSet
	}

	if err := toml.NewEncoder(w).Encode(newTeamSetDoc(set)); err != nil {
		return fmt.Errorf("encode teams as TOML: %w", err)
	}

	return nil
}
