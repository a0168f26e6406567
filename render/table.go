package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/tetsuya-zama/guccicci/types"
)

// Table renders the team set as a human-readable terminal table with one row
// per team.
type Table struct {
	color bool
}

var _ Renderer = (*Table)(nil)

// TableOption configures a Table renderer.
type TableOption func(*Table)

// WithColor toggles ANSI colors for leader names (default: off, so piped
// output stays clean).
//
// Parameters:
//   - enabled: Whether to colorize leader names
//
// Returns:
//   - TableOption: Configuration option
func WithColor(enabled bool) TableOption {
	return func(t *Table) {
		t.color = enabled
	}
}

// NewTable creates a new table renderer.
//
// Parameters:
//   - opts: Optional configuration (WithColor)
//
// Returns:
//   - *Table: Initialized table renderer
//
// Example:
//
//	renderer := render.NewTable(render.WithColor(true))
//	err := renderer.Render(os.Stdout, teams)
func NewTable(opts ...TableOption) *Table {
	t := &Table{}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Render implements Renderer.
func (t *Table) Render(w io.Writer, set *types.TeamSet) error {
	if set == nil {
		return ErrNilTeamSet
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Team", "Leader", "Members", "Size"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, team := range set.Teams() {
		leader := team.Leader().Name
		if t.color {
			leader = color.New(color.FgGreen, color.Bold).Render(leader)
		}

		members := lo.Map(team.Members(), func(p types.Person, _ int) string { return p.Name })

		table.Append([]string{
			strconv.Itoa(i + 1),
			leader,
			strings.Join(members, ", "),
			strconv.Itoa(team.TotalSize()),
		})
	}

	table.Render()

	return nil
}
