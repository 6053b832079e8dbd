// internal/cli/filter.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gffkit-core/gff"
	"gffkit-core/hierarchy"
	"gffkit/internal/report"
)

func newFilterCmd() *cobra.Command {
	var (
		biotype string
		root    string
		outPath string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Validate gene→transcript→CDS hierarchies and optionally keep only complete ones",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			records, err := gff.Load(args[0], cfg.Delimiter)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				log.Warn("no usable records in file", zap.String("path", args[0]))
			}

			b := hierarchy.NewBuilder()
			b.BiotypeMarker = cfg.BiotypeMarker
			if biotype != "" {
				b.BiotypeMarker = biotype
			}
			if root != "" {
				b.RootType = root
			}

			res, err := b.Build(records)
			if err != nil {
				return err
			}
			if res.SkippedNoID > 0 {
				log.Warn("genes without an ID attribute were skipped",
					zap.Int("count", res.SkippedNoID))
			}

			payload := report.Hierarchy{
				Biotype:     b.BiotypeMarker,
				Summary:     res.Summary,
				SkippedNoID: res.SkippedNoID,
			}
			if outPath != "" {
				counts, err := b.WriteCompleteFile(args[0], records, res, outPath)
				if err != nil {
					return err
				}
				payload.Emitted = &counts
				log.Info("filtered file written",
					zap.String("output", counts.OutputPath),
					zap.Int("genes", counts.Genes))
			}
			return report.Write(output, cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().StringVarP(&biotype, "biotype", "b", "", "biotype marker gating gene roots (default from settings)")
	cmd.Flags().StringVar(&root, "root-type", "gene", "feature type of hierarchy roots")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write complete hierarchies to this file")
	cmd.Flags().StringVarP(&output, "output", "f", report.FormatText, "report format: text | json | yaml")
	return cmd
}
