// Command bignum evaluates arbitrary-precision integer expressions.
//
// Usage:
//
//	bignum eval "4 13 497 powm"
//	bignum call powm 4 13 497
//	bignum convert 255 --to 16
//	bignum convert 256 --to bytes
//	bignum ops
//
// Settings are read from flags and from BIGNUM_* environment variables,
// such as BIGNUM_BASE and BIGNUM_LOG_LEVEL.
// Negative numerals must follow "--" unless an operation name precedes them.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with its own configuration.
func newRootCmd() *cobra.Command {
	cfg := newConfig()
	root := &cobra.Command{
		Use:          "bignum",
		Short:        "Arbitrary-precision integer calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.load(zapcore.AddSync(cmd.ErrOrStderr()))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = cfg.Logger.Sync()
		},
	}
	cfg.bindFlags(root.PersistentFlags())

	root.AddCommand(evalCmd(cfg))
	root.AddCommand(callCmd(cfg))
	root.AddCommand(convertCmd(cfg))
	root.AddCommand(opsCmd())
	return root
}
