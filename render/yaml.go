package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tetsuya-zama/guccicci/types"
)

// YAML renders the team set as a YAML document with the same shape as the
// TOML output.
type YAML struct{}

var _ Renderer = (*YAML)(nil)

// NewYAML creates a new YAML renderer.
//
// Returns:
//   - *YAML: Initialized YAML renderer
func NewYAML() *YAML {
	return &YAML{}
}

// Render implements Renderer.
func (*YAML) Render(w io.Writer, set *types.TeamSet) error {
	if set == nil {
		return ErrNilTeamSet
	}

	data, err := yaml.Marshal(newTeamSetDoc(set))
	if err != nil {
		return fmt.Errorf("encode teams as YAML: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write YAML output: %w", err)
	}

	return nil
}
