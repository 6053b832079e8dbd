// internal/cli/clean.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gffkit-core/dialect"
	"gffkit/internal/cleaner"
	"gffkit/internal/report"
)

func newCleanCmd() *cobra.Command {
	var (
		exclude    []string
		regionType string
		outPath    string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "clean FILE",
		Short: "Drop regions (and everything on their seqIDs) by genome attribute",
		Long: `Without --exclude, clean reports the genome attribute values present in the
file. With --exclude, the matching regions and every record on their seqIDs
are removed and a cleaned copy is written.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			d := dialect.Dialect{
				Separator: cfg.Separator,
				Assigner:  cfg.Assigner,
				Format:    dialect.GFF3Like,
			}

			if len(exclude) == 0 {
				info, err := cleaner.GenomeInfo(args[0], cfg.Delimiter, d)
				if err != nil {
					return err
				}
				if info.Count == 0 {
					log.Warn("no genome attributes found", zap.String("path", args[0]))
				}
				return report.Write(output, cmd.OutOrStdout(), info)
			}

			if outPath == "" {
				outPath = args[0] + "_cleaned.gff"
			}
			sum, err := cleaner.Clean(args[0], cfg.Delimiter, d, exclude, regionType, outPath)
			if err != nil {
				return err
			}
			log.Info("cleaned file written",
				zap.String("output", sum.OutputPath),
				zap.Strings("excluded_seqids", sum.ExcludedSeqIDs))
			return report.Write(output, cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "genome attribute values to exclude (e.g. mitochondrion)")
	cmd.Flags().StringVar(&regionType, "region-type", "region", "feature type carrying the genome attribute")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default FILE_cleaned.gff)")
	cmd.Flags().StringVarP(&output, "output", "f", report.FormatText, "report format: text | json | yaml")
	return cmd
}
