package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxis-cli/praxis/internal/catalog"
	"github.com/praxis-cli/praxis/internal/config"
	"github.com/praxis-cli/praxis/internal/lessons"
	"github.com/praxis-cli/praxis/internal/logging"
	"github.com/praxis-cli/praxis/internal/notes"
	"github.com/praxis-cli/praxis/internal/report"
	"github.com/praxis-cli/praxis/internal/runner"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Aliases: []string{"r"},
	Short:   "Run example units and report against their expectations",
	Long: `Run every unit in the catalog, one lesson, or a single unit, and
summarize how the observed outcomes compare with the declared
expectations. A unit that is supposed to fail and does fail counts as a
match.

Examples:
  praxis run                                  # Run everything
  praxis run --lesson ownership               # Run one lesson
  praxis run --lesson ownership --unit doubleMove
  praxis run -f json                          # Machine-readable summary
  praxis run -v                               # Include unit output`,
	RunE: runRun,
}

var (
	runLessonName string
	runUnitName   string
	runFailFast   bool
	runOutput     *OutputFlags
	rootOutput    *OutputFlags
)

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

// addRunFlags registers the selection and output flags. The root command
// carries the same set so that bare `praxis --lesson x` works.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runLessonName, "lesson", "", "Restrict the run to one lesson")
	cmd.Flags().StringVar(&runUnitName, "unit", "", "Restrict the run to one unit (requires --lesson)")
	cmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop after the first unit that does not match its expectation")

	flags := AddOutputFlags(cmd)
	if cmd == rootCmd {
		rootOutput = flags
	} else {
		runOutput = flags
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	output := runOutput
	if cmd == rootCmd {
		output = rootOutput
	}
	output.Resolve(cfg, cmd.Flags())
	if err := output.Validate(); err != nil {
		return err
	}

	lessonName := runLessonName
	if lessonName == "" {
		lessonName = cfg.Run.Lesson
	}
	unitName := runUnitName
	if unitName == "" {
		unitName = cfg.Run.Unit
	}
	if unitName != "" && lessonName == "" {
		return fmt.Errorf("--unit requires --lesson")
	}

	failFast := runFailFast
	if !cmd.Flags().Changed("fail-fast") {
		failFast = cfg.Run.FailFast
	}

	logger := newLogger(cfg)
	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	r := runner.New(cat, runner.Options{Logger: logger, FailFast: failFast})

	results, err := executeSelection(cmd.Context(), r, lessonName, unitName)
	if err != nil {
		return err
	}

	if err := report.Write(os.Stdout, results, report.Options{
		Format:  output.Format,
		Verbose: output.Verbose,
	}); err != nil {
		return err
	}

	if !runner.AllMatched(results) {
		summary := report.Summarize(results)
		return fmt.Errorf("%d of %d units did not match their expectation",
			summary.Mismatched, summary.Units)
	}

	return nil
}

// executeSelection dispatches to RunAll, RunLesson or RunUnit.
func executeSelection(ctx context.Context, r *runner.Runner, lessonName, unitName string) ([]runner.Result, error) {
	switch {
	case lessonName == "":
		return r.RunAll(ctx)
	case unitName == "":
		return r.RunLesson(ctx, lessonName)
	default:
		result, err := r.RunUnit(ctx, lessonName, unitName)
		if err != nil {
			return nil, err
		}
		return []runner.Result{result}, nil
	}
}

// buildCatalog loads the note overlays and constructs the shipped catalog.
func buildCatalog(cfg *config.Config, logger logging.Logger) (*catalog.Catalog, error) {
	overlays, err := notes.LoadDir(cfg.Notes.Dir)
	if err != nil {
		return nil, err
	}
	if len(overlays) > 0 {
		logger.Debug(context.Background(), "loaded note overlays",
			"dir", cfg.Notes.Dir, "lessons", len(overlays))
	}

	return lessons.Build(overlays)
}

func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
