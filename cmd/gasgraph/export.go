package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/ingest"
)

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded graph's edges as CSV",
		Long: `Load the transaction CSV and write one record per edge with the scaled
value. Use --out - for standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd, nil); err != nil {
				return err
			}
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			if out == "-" {
				err = ingest.WriteEdges(cmd.OutOrStdout(), g, a.cfg.Columns)
			} else {
				err = ingest.WriteEdgesFile(out, g, a.cfg.Columns)
			}
			if err != nil {
				return errors.Wrap(err, "export edges")
			}
			a.logger.Info("edges exported", zap.String("out", out), zap.Int("edges", g.EdgeCount()))

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
