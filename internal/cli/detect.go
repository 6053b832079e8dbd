// internal/cli/detect.go
package cli

import (
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gffkit-core/dialect"
	"gffkit/internal/report"
)

func newDetectCmd() *cobra.Command {
	var (
		sample int
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "detect FILE",
		Short: "Infer the attribute-column dialect of an annotation file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			det := dialect.NewDetector()
			det.SampleSize = cfg.MaxSampleSize
			if sample > 0 {
				det.SampleSize = sample
			}
			if seed != 0 {
				det.Rand = rand.New(rand.NewSource(seed))
			}

			rep, err := det.DetectFile(args[0], cfg.Delimiter)
			if err != nil {
				return err
			}
			if rep.Sampled == 0 {
				log.Warn("no usable records sampled", zap.String("path", args[0]))
			}
			d, warns := rep.Resolve()
			for _, w := range warns {
				log.Warn(w, zap.String("path", args[0]))
			}
			log.Debug("dialect resolved",
				zap.String("format", d.Format.String()),
				zap.Int("sampled", rep.Sampled))

			return report.Write(output, cmd.OutOrStdout(), report.Detection{
				Report: rep, Dialect: d, Warnings: warns,
			})
		},
	}
	cmd.Flags().IntVarP(&sample, "sample", "n", 0, "records to sample (default from settings)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reservoir sampling over the whole file (0 = head sample)")
	cmd.Flags().StringVarP(&output, "output", "f", report.FormatText, "report format: text | json | yaml")
	return cmd
}
