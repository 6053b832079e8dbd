// internal/cli/diff.go
package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gffkit-core/dialect"
	"gffkit-core/gff"
	"gffkit/internal/annoinfo"
	"gffkit/internal/report"
)

func newDiffCmd() *cobra.Command {
	var (
		outPath string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "diff LABEL=FILE LABEL=FILE ...",
		Short: "Compare feature types and attribute keys across annotation files",
		Args:  minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			inputs := make([]annoinfo.Labeled, 0, len(args))
			for _, a := range args {
				label, path, ok := strings.Cut(a, "=")
				if !ok || label == "" || path == "" {
					return fmt.Errorf("%w: argument %q is not LABEL=FILE", errUsage, a)
				}
				inputs = append(inputs, annoinfo.Labeled{Label: label, Path: path})
			}

			d := dialect.Dialect{
				Separator: cfg.Separator,
				Assigner:  cfg.Assigner,
				Format:    dialect.GFF3Like,
			}
			rep, err := annoinfo.Diff(inputs, cfg.Delimiter, d)
			if err != nil {
				return err
			}

			if outPath != "" {
				err := gff.WriteFile(outPath, func(w *bufio.Writer) error {
					return report.Write(output, w, rep)
				})
				if err != nil {
					return err
				}
				log.Info("comparison written", zap.String("output", outPath))
				return nil
			}
			return report.Write(output, cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the comparison to this file instead of stdout")
	cmd.Flags().StringVarP(&output, "output", "f", report.FormatText, "report format: text | json | yaml")
	return cmd
}
