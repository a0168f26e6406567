package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/tetsuya-zama/guccicci/types"
)

// Format identifies an output encoding for a formed team set.
type Format string

// Supported output formats.
const (
	FormatTOML  Format = "toml"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatTOML, FormatYAML, FormatTable}
}

// Renderer writes a formed team set to an output stream.
type Renderer interface {
	// Render writes set to w in the renderer's format.
	Render(w io.Writer, set *types.TeamSet) error
}

// Sentinel errors returned by renderers.
var (
	// ErrUnknownFormat is returned when no renderer exists for a format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNilTeamSet is returned when the team set is nil.
	ErrNilTeamSet = errors.New("team set is required")
)

// New returns the default renderer for format.
//
// Table renderers come without colors here; construct NewTable with
// WithColor directly when colorized output is wanted.
//
// Parameters:
//   - format: One of FormatTOML, FormatYAML, FormatTable
//
// Returns:
//   - Renderer: Renderer for the format
//   - error: ErrUnknownFormat when the format is not recognized
func New(format Format) (Renderer, error) {
	switch format {
	case FormatTOML:
		return NewTOML(), nil
	case FormatYAML:
		return NewYAML(), nil
	case FormatTable:
		return NewTable(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// teamDoc is the wire layout of one formed team.
type teamDoc struct {
	Leader types.Person   `toml:"leader" yaml:"leader"`
	Member []types.Person `toml:"member" yaml:"member"`
}

// teamSetDoc is the document root shared by the TOML and YAML renderers.
type teamSetDoc struct {
	Team []teamDoc `toml:"team" yaml:"team"`
}

func newTeamSetDoc(set *types.TeamSet) teamSetDoc {
	teams := set.Teams()

	doc := teamSetDoc{Team: make([]teamDoc, 0, len(teams))}
	for _, team := range teams {
		doc.Team = append(doc.Team, teamDoc{
			Leader: team.Leader(),
			Member: team.Members(),
		})
	}

	return doc
}
