package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tetsuya-zama/guccicci/internal/logging"
	"github.com/tetsuya-zama/guccicci/types"
)

var rootCmd = &cobra.Command{
	Use:   "guccicci",
	Short: "Split a roster of attendees into teams with one leader each",
	Long: `Guccicci reads a settings file describing who is attending and who is
willing to lead, then splits everyone into the requested number of teams.
Each team gets exactly one leader, and team sizes never differ by more
than one.`,
}

var verbose bool

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("GUCCICCI")
	// Replace dots with underscores for nested keys in env vars
	// e.g., GUCCICCI_OUTPUT for output
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// newLogger builds the CLI logger. Logs go to stderr so rendered teams on
// stdout stay pipeable.
func newLogger(cmd *cobra.Command) types.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	return logging.NewSlog(slog.New(handler))
}
