package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/praxis-cli/praxis/internal/config"
	"github.com/praxis-cli/praxis/internal/logging"
	"github.com/praxis-cli/praxis/internal/report"
	"github.com/praxis-cli/praxis/internal/runner"
	"github.com/praxis-cli/praxis/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Re-run lessons whenever note overlays change",
	Long: `Lecture mode: run the selected lessons once, then watch the note
overlay directory and re-run on every change, so edits to quiz prompts
show up immediately.

Examples:
  praxis watch --notes ./notes
  praxis watch --notes ./notes --lesson ownership`,
	RunE: runWatch,
}

var (
	watchFlags  *OutputFlags
	watchLesson string
	watchNotes  string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = AddOutputFlags(watchCmd)
	watchCmd.Flags().StringVar(&watchLesson, "lesson", "", "Restrict re-runs to one lesson")
	watchCmd.Flags().StringVar(&watchNotes, "notes", "", "Directory of note overlay files to watch")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	watchFlags.Resolve(cfg, cmd.Flags())
	if err := watchFlags.Validate(); err != nil {
		return err
	}

	if watchNotes != "" {
		cfg.Notes.Dir = watchNotes
	}
	if cfg.Notes.Dir == "" {
		return fmt.Errorf("watch needs a notes directory (--notes or notes.dir in config)")
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rerun := func() {
		if err := watchRunOnce(ctx, cfg, logger); err != nil {
			logger.Error(ctx, err, "run failed")
		}
	}

	// First run before any change arrives.
	rerun()

	w, err := watcher.New(cfg.Notes.Dir, cfg.Notes.Debounce, logger, func(paths []string) {
		logger.Info(ctx, "note overlays changed, re-running", "files", len(paths))
		rerun()
	})
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	logger.Info(ctx, "watching for note changes", "dir", cfg.Notes.Dir)
	w.Start(ctx)

	return nil
}

// watchRunOnce rebuilds the catalog with the current overlays and runs the
// selection. Mismatches are reported, not fatal: lecture mode keeps going.
func watchRunOnce(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	r := runner.New(cat, runner.Options{Logger: logger})

	results, err := executeSelection(ctx, r, watchLesson, "")
	if err != nil {
		return err
	}

	return report.Write(os.Stdout, results, report.Options{
		Format:  watchFlags.Format,
		Verbose: watchFlags.Verbose,
	})
}
