package main

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/internal/config"
	"github.com/katalvlaran/gasgraph/internal/logging"
)

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	input      string
	directed   bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "gasgraph",
		Short:        "Gas-weighted shortest paths and centrality over transaction graphs",
		SilenceUsage: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			a.logMetrics()
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVarP(&a.input, "input", "i", "", "transaction CSV file")
	flags.BoolVar(&a.directed, "directed", false, "register edges with their sender only")

	root.AddCommand(newAnalyzeCmd(a), newExportCmd(a))

	return root
}

// setup loads the configuration, applies flags that were set explicitly and
// builds the logger. apply sets the command's own flags on the config.
func (a *app) setup(cmd *cobra.Command, apply func(*config.Config)) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("directed") {
		cfg.Directed = a.directed
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = prometheus.NewRegistry()

	return nil
}

// logMetrics writes every gathered metric family at debug level.
func (a *app) logMetrics() {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		a.logger.Debug("metric",
			zap.String("name", mf.GetName()),
			zap.Stringer("type", mf.GetType()),
			zap.Int("series", len(mf.GetMetric())),
		)
	}
}
