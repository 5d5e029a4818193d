package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reillydonovan/aicivsim-sub000/internal/config"
	"github.com/reillydonovan/aicivsim-sub000/internal/dataset"
	"github.com/reillydonovan/aicivsim-sub000/internal/labnote"
	"github.com/reillydonovan/aicivsim-sub000/internal/logging"
	"github.com/reillydonovan/aicivsim-sub000/internal/report"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
	"github.com/reillydonovan/aicivsim-sub000/internal/score"
	"github.com/reillydonovan/aicivsim-sub000/internal/storage"
)

// #region app
// app carries the flags and the collaborators built from them once per run.
type app struct {
	configPath string
	dataset    string
	backend    string
	jsonOut    bool
	verbose    bool

	cfg       config.Config
	log       *zap.Logger
	data      *scenario.Dataset
	scorer    *score.Scorer
	assembler *report.Assembler
	out       io.Writer
	errOut    io.Writer
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.dataset != "" {
		cfg.Dataset = a.dataset
	}
	if a.backend != "" {
		cfg.Storage.Backend = storage.Backend(a.backend)
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	a.data = dataset.LoadOrEmpty(cfg.Dataset, log)
	a.scorer = score.NewScorer(cfg.Score)
	a.assembler = report.NewAssembler(a.scorer, report.WithLogger(log.Named("report")))
	return nil
}

// scenarioByID resolves id against the loaded dataset.
func (a *app) scenarioByID(id string) (*scenario.Scenario, error) {
	if len(a.data.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenario data loaded from %s", a.cfg.Dataset)
	}
	sc := a.data.Find(id)
	if sc == nil {
		return nil, fmt.Errorf("unknown scenario %q (have: %s)", id, strings.Join(a.data.IDs(), ", "))
	}
	return sc, nil
}

// yearIndex picks the trajectory position for year; zero selects the last year.
func yearIndex(sc *scenario.Scenario, year int) (int, error) {
	if year == 0 {
		return sc.Len() - 1, nil
	}
	idx := sc.IndexOfYear(year)
	if idx < 0 {
		return -1, fmt.Errorf("scenario %s has no snapshot for %d", sc.ID, year)
	}
	return idx, nil
}

// opposing resolves the comparison scenario: the explicit id, or the default
// foil for sc when id is empty. Returns nil when there is none.
func (a *app) opposing(sc *scenario.Scenario, id string) (*scenario.Scenario, error) {
	if id == "" {
		id = report.OpposingFor(sc.ID)
		if id == "" || a.data.Find(id) == nil {
			return nil, nil
		}
	}
	if id == "none" || id == sc.ID {
		return nil, nil
	}
	return a.scenarioByID(id)
}

// openNotes opens the configured blob backend and the note store over it.
// Storage failures disable the store rather than failing the command.
func (a *app) openNotes(ctx context.Context) (*labnote.Store, storage.Blob, io.Closer) {
	blob, closer, err := storage.Open(ctx, a.cfg.Storage)
	if err != nil {
		a.log.Warn("storage unavailable, lab notes disabled",
			zap.String("backend", string(a.cfg.Storage.Backend)), zap.Error(err))
		blob = nil
	}
	notes := labnote.Open(ctx, blob,
		labnote.WithKey(a.cfg.NotesKey),
		labnote.WithLogger(a.log.Named("labnote")),
	)
	return notes, blob, closer
}

// #endregion app

// #region root
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "simlab",
		Short: "Score, explain and annotate pre-computed policy scenarios",
		Long: `simlab evaluates scenario trajectories against the shared baseline year.

It computes the 0-100 composite score, classifies the era, assembles the
narrative report, compares scenarios and keeps annotated lab notes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $SIMLAB_CONFIG)")
	pf.StringVar(&a.dataset, "dataset", "", "scenario dataset JSON (overrides config)")
	pf.StringVar(&a.backend, "backend", "", "lab note storage: file, sqlite, redis, s3, memory, none")
	pf.BoolVar(&a.jsonOut, "json", false, "output as JSON instead of text")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newScoreCmd(a),
		newReportCmd(a),
		newCompareCmd(a),
		newPlaybackCmd(a),
		newScenariosCmd(a),
		newNotesCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// #endregion root
