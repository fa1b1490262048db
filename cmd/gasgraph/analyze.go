package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/analysis"
	"github.com/katalvlaran/gasgraph/core"
	"github.com/katalvlaran/gasgraph/ingest"
	"github.com/katalvlaran/gasgraph/internal/config"
	"github.com/katalvlaran/gasgraph/report"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		source string
		target string
		mode   string
		style  string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run centrality from one source and print the ranking",
		Long: `Load the transaction CSV, run gas-weighted shortest paths from the source
address and print a summary, the top vertices by centrality and, with --path,
the cheapest route to one target.

Without --source the vertex with the most incident transactions is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.setup(cmd, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("source") {
					cfg.Source = source
				}
				if flags.Changed("mode") {
					cfg.Mode = mode
				}
				if flags.Changed("style") {
					cfg.Style = style
				}
				if flags.Changed("top") {
					cfg.Top = top
				}
			})
			if err != nil {
				return err
			}

			return a.analyze(cmd, target)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&source, "source", "s", "", "source address")
	flags.StringVar(&target, "path", "", "print the cheapest path to this address")
	flags.StringVar(&mode, "mode", "", "accumulation mode (shortest, every)")
	flags.StringVar(&style, "style", "", "table style (plain, ascii, unicode)")
	flags.IntVarP(&top, "top", "n", 0, "number of ranked vertices to print, 0 for all")

	return cmd
}

func (a *app) analyze(cmd *cobra.Command, target string) error {
	ctx := cmd.Context()
	cfg := a.cfg

	g, err := a.loadGraph(ctx)
	if err != nil {
		return err
	}

	an, err := analysis.New(g,
		analysis.WithMode(cfg.AccumulationMode()),
		analysis.WithCacheSize(cfg.CacheSize),
		analysis.WithLogger(a.logger),
		analysis.WithMetrics(analysis.NewMetrics(a.registry)),
	)
	if err != nil {
		return err
	}

	source, err := a.resolveAddress(cfg.Source)
	if err != nil {
		return err
	}
	if source == "" {
		if source, err = an.DefaultSource(); err != nil {
			return errors.Wrap(err, "select source")
		}
		a.logger.Info("source selected by degree", zap.String("source", source))
	}

	res, err := an.Analyze(ctx, source)
	if err != nil {
		return errors.Wrapf(err, "analyze from %s", source)
	}
	a.logger.Info("centrality computed",
		zap.String("source", source),
		zap.Int("reached", res.Stats.Reached),
		zap.Duration("elapsed", res.Elapsed),
	)

	style, err := report.ParseStyle(cfg.Style)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := report.WriteSummary(out, style, report.Summarize(g, res)); err != nil {
		return err
	}
	if err := report.WriteRanking(out, style, report.Rank(g, res, cfg.Top)); err != nil {
		return err
	}

	if target == "" {
		return nil
	}
	if target, err = a.resolveAddress(target); err != nil {
		return err
	}
	id, ok := g.Lookup(target)
	if !ok {
		return errors.Errorf("path target %s is not in the graph", target)
	}
	path, err := report.Path(res, id)
	if err != nil {
		return err
	}

	return report.WritePath(out, style, g, res, path)
}

// loadGraph reads the configured input into a new graph.
func (a *app) loadGraph(ctx context.Context) (*core.Graph, error) {
	cfg := a.cfg
	if cfg.Input == "" {
		return nil, errors.New("no input file: use --input or " + config.EnvInput)
	}

	start := time.Now()
	g := core.NewGraph(core.WithDirected(cfg.Directed))
	opts := append(cfg.IngestOptions(), ingest.WithLogger(a.logger))
	if _, err := ingest.LoadFile(ctx, cfg.Input, g, opts...); err != nil {
		return nil, errors.Wrapf(err, "load %s", cfg.Input)
	}
	a.logger.Debug("graph built",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Bool("directed", cfg.Directed),
		zap.Duration("elapsed", time.Since(start)),
	)

	return g, nil
}

// resolveAddress normalises hex addresses when strict addresses are enabled.
func (a *app) resolveAddress(address string) (string, error) {
	if address == "" || !a.cfg.StrictAddresses {
		return address, nil
	}

	return ingest.NormalizeAddress(address)
}
