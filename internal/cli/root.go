// internal/cli/root.go

// Package cli wires the gffkit commands. Each subcommand maps onto one
// library operation; this layer owns flag parsing, logging, and report
// formatting, and nothing below it writes to the terminal.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gffkit-core/attr"
	"gffkit-core/reformat"
	"gffkit/internal/config"
	"gffkit/internal/logging"
)

// errUsage marks bad invocations so Run can map them to exit code 2.
var errUsage = errors.New("usage error")

// Run executes the CLI against explicit streams and returns a process exit
// code: 0 success, 2 usage/configuration error, 3 I/O or write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		switch {
		case errors.Is(err, errUsage),
			errors.Is(err, reformat.ErrBadTargetFormat),
			errors.Is(err, attr.ErrUnknownDialect):
			return 2
		}
		return 3
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gffkit",
		Short:         "Inspect, reformat and validate GFF/GTF annotation files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "", "settings file (default ./gffkit.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolP("quiet", "q", false, "log warnings only")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	root.AddCommand(
		newDetectCmd(),
		newReformatCmd(),
		newFilterCmd(),
		newInfoCmd(),
		newDiffCmd(),
		newCleanCmd(),
	)
	return root
}

// setup loads settings and builds the logger from the persistent flags.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	log, err := logging.New(verbose, quiet)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

// exactArgs is cobra.ExactArgs with the usage sentinel attached.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d argument(s), got %d", errUsage, n, len(args))
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs with the usage sentinel attached.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: expected at least %d argument(s), got %d", errUsage, n, len(args))
		}
		return nil
	}
}
