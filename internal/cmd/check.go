package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/tetsuya-zama/guccicci/roster"
)

var checkCmd = &cobra.Command{
	Use:   "check <settings-file>",
	Short: "Validate a settings file without forming teams",
	Long: `Validate a TOML or YAML settings file without forming teams.

Check reports shape problems (unparseable file, unnamed people) and domain
problems (zero teams, not enough leader candidates) and exits non-zero on
either, so it can gate settings files in CI.

Examples:
  # Validate before the event
  guccicci check teams.toml

  # Colorized verdict
  guccicci check teams.toml --color`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkColor bool

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkColor, "color", false, "colorize the verdict")
}

func runCheck(cmd *cobra.Command, args []string) error {
	src := roster.NewFile(args[0])

	setting, err := src.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	if err := setting.Validate(); err != nil {
		return fmt.Errorf("invalid settings file %s: %w", src.Path(), err)
	}

	verdict := "ok"
	if checkColor {
		verdict = color.New(color.FgGreen, color.Bold).Render(verdict)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d attendees, %d leader candidates, %d teams)\n",
		src.Path(), verdict,
		len(setting.Attendees), len(setting.LeaderCandidates()), setting.NumTeams)

	return nil
}
