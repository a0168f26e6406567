package cmd

import (
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tetsuya-zama/guccicci"
	"github.com/tetsuya-zama/guccicci/render"
	"github.com/tetsuya-zama/guccicci/roster"
	"github.com/tetsuya-zama/guccicci/shuffle"
	"github.com/tetsuya-zama/guccicci/types"
)

var formCmd = &cobra.Command{
	Use:   "form <settings-file>",
	Short: "Form teams from a settings file",
	Long: `Form teams from a TOML or YAML settings file.

The file lists attendees, marks who can lead, and sets the number of teams:

  num_of_teams = 2

  [[attendees]]
  person = { name = "alice" }
  leader = true

  [[attendees]]
  person = { name = "bob" }

Formation is random by default. Use --seed for a reproducible draw or
--no-shuffle to keep the roster order (useful when previewing a settings
file). With --watch the command re-forms teams every time the file is
saved until interrupted.

Examples:
  # Form teams and print them as TOML
  guccicci form teams.toml

  # Render a colorized table
  guccicci form teams.toml -o table --color

  # Same draw on every run
  guccicci form teams.toml --seed "sprint-42 retro"

  # Re-form teams on every save
  guccicci form teams.toml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runForm,
}

var (
	formOutput    string
	formSeed      string
	formNoShuffle bool
	formColor     bool
	formWatch     bool
)

func init() {
	rootCmd.AddCommand(formCmd)

	formCmd.Flags().StringVarP(&formOutput, "output", "o", "toml", "output format (toml/yaml/table)")
	formCmd.Flags().StringVar(&formSeed, "seed", "", "seed for a reproducible draw (number or label)")
	formCmd.Flags().BoolVar(&formNoShuffle, "no-shuffle", false, "keep roster order instead of shuffling")
	formCmd.Flags().BoolVar(&formColor, "color", false, "colorize table output")
	formCmd.Flags().BoolVarP(&formWatch, "watch", "w", false, "re-form teams when the settings file changes")

	_ = viper.BindPFlag("output", formCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("seed", formCmd.Flags().Lookup("seed"))
}

func runForm(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	shuffler := newShuffler(log)
	src := roster.NewFile(args[0])

	log.Debug("loading settings", "settings", src.Path())

	if formWatch {
		return watchAndForm(cmd, src, shuffler, renderer, log)
	}

	setting, err := src.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	return formPass(cmd.OutOrStdout(), setting, shuffler, renderer, log)
}

// formPass forms and renders one set of teams. Each pass gets its own run id
// so watch-mode reloads stay distinguishable in the logs.
func formPass(out io.Writer, setting *types.Setting, shuffler types.Shuffler, renderer render.Renderer, log types.Logger) error {
	runID := uuid.NewString()
	log.Debug("starting formation pass", "run_id", runID)

	set, err := guccicci.Form(setting, shuffler)
	if err != nil {
		return err
	}

	log.Debug("teams formed", "run_id", runID, "teams", set.Count(), "people", set.TotalPeople())

	return renderer.Render(out, set)
}

// newRenderer picks the output renderer from the flags.
func newRenderer() (render.Renderer, error) {
	format := render.Format(viper.GetString("output"))
	if format == render.FormatTable && formColor {
		return render.NewTable(render.WithColor(true)), nil
	}

	return render.New(format)
}

// newShuffler picks the shuffler for this run from the flags. A non-zero
// numeric --seed value is used directly; zero and everything non-numeric
// take the label path, since the shuffler reserves seed 0 for the
// process-global source.
func newShuffler(log types.Logger) types.Shuffler {
	if formNoShuffle {
		return shuffle.NewIdentity()
	}

	seed := viper.GetString("seed")
	if seed == "" {
		return shuffle.NewRandom()
	}

	if n, err := strconv.ParseInt(seed, 10, 64); err == nil && n != 0 {
		log.Debug("using numeric seed", "seed", n)
		return shuffle.NewRandom(shuffle.WithSeed(n))
	}

	log.Debug("using seed label", "label", seed)

	return shuffle.NewRandom(shuffle.WithSeedLabel(seed))
}

// watchAndForm renders once up front, then re-forms teams on every settings
// change until the command is interrupted.
func watchAndForm(cmd *cobra.Command, src *roster.File, shuffler types.Shuffler, renderer render.Renderer, log types.Logger) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	formOnce := func(setting *types.Setting) {
		if err := formPass(cmd.OutOrStdout(), setting, shuffler, renderer, log); err != nil {
			log.Error("formation pass failed", "error", err)
		}
	}

	setting, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	formOnce(setting)

	w, err := roster.NewWatcher(src, formOnce, roster.WithLogger(log))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}

	log.Info("watching settings file", "path", src.Path())
	<-ctx.Done()
	log.Info("stopping watch")

	return nil
}
