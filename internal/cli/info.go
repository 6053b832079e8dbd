// internal/cli/info.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gffkit-core/dialect"
	"gffkit/internal/annoinfo"
	"gffkit/internal/report"
)

func newInfoCmd() *cobra.Command {
	var (
		featuretype string
		peek        int
		output      string
	)
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Inventory the sources, feature types and attribute keys of a file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			path := args[0]
			inv := report.Inventory{Path: path}

			if inv.Sources, err = annoinfo.Sources(path, cfg.Delimiter); err != nil {
				return err
			}
			if inv.FeatureTypes, err = annoinfo.FeatureTypes(path, cfg.Delimiter); err != nil {
				return err
			}
			if inv.BySource, err = annoinfo.FeatureTypesBySource(path, cfg.Delimiter); err != nil {
				return err
			}
			if len(inv.FeatureTypes) == 0 {
				log.Warn("no usable records in file", zap.String("path", path))
			}

			if featuretype != "" {
				d := dialect.Dialect{
					Separator: cfg.Separator,
					Assigner:  cfg.Assigner,
					Format:    dialect.GFF3Like,
				}
				inv.AttributeFor = featuretype
				if inv.AttributeKeys, err = annoinfo.AttributeKeys(path, cfg.Delimiter, featuretype, d); err != nil {
					return err
				}
			}
			if peek > 0 {
				if inv.Peek, err = annoinfo.Peek(path, peek); err != nil {
					return err
				}
			}
			return report.Write(output, cmd.OutOrStdout(), inv)
		},
	}
	cmd.Flags().StringVarP(&featuretype, "featuretype", "t", "gene", "feature type whose attribute keys to list ('' to skip)")
	cmd.Flags().IntVarP(&peek, "peek", "p", 0, "also show the first N non-comment lines")
	cmd.Flags().StringVarP(&output, "output", "f", report.FormatText, "report format: text | json | yaml")
	return cmd
}
