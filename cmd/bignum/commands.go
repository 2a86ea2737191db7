package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/rpn"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// toBytes is the --to value that prints the big-endian magnitude in hex.
const toBytes = "bytes"

func evalCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an expression in reverse Polish notation",
		Long: `Evaluate an expression in reverse Polish notation.
Arguments are joined with spaces, so the expression may be quoted or not.
Operators are operation names, as listed by "bignum ops", and the symbols
+ - * / % ^ & | << >>.`,
		Example: `  bignum eval "4 13 497 powm"
  bignum eval 2 100 ^`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := rpn.New(cfg.Base, cfg.Logger.Named("rpn"))
			x, err := e.Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), x, cfg.Base)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func callCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <operation> <receiver> [argument]...",
		Short: "Invoke a single operation",
		Example: `  bignum call powm 4 13 497
  bignum call toBuffer 256`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			vals := make([]any, len(args)-1)
			for i, tok := range args[1:] {
				x, err := rpn.ParseNumeral(tok, cfg.Base)
				if err != nil {
					return errors.WithMessagef(err, "argument %v", i+1)
				}
				vals[i] = x
			}
			cfg.Logger.Debug("call", zap.String("op", name), zap.Strings("args", args[1:]))
			res, err := bignum.Call(name, vals[0], vals[1:]...)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, cfg.Base)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func convertCmd(cfg *config) *cobra.Command {
	var from int
	var to string
	cmd := &cobra.Command{
		Use:   "convert <numeral>",
		Short: "Convert a numeral between bases",
		Long: `Convert a numeral between bases.
--to accepts a radix from 2 to 36, or "bytes" for the hex of the big-endian
magnitude.`,
		Example: `  bignum convert ff --from 16
  bignum convert 256 --to bytes
  bignum convert --to 2 -- -255`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := from
			if src == 0 {
				src = cfg.Base
			}
			x, err := rpn.ParseNumeral(args[0], src)
			if err != nil {
				return err
			}
			cfg.Logger.Debug("convert", zap.Int("from", src), zap.String("to", to), zap.Stringer("value", x))
			if to == toBytes {
				return printResult(cmd.OutOrStdout(), x.Bytes(), 0)
			}
			base := cfg.Base
			if to != "" {
				base, err = strconv.Atoi(to)
				if err != nil {
					return errors.Wrapf(bignum.ErrBaseRange, "--to %q", to)
				}
			}
			return printResult(cmd.OutOrStdout(), x, base)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "radix of the input; defaults to --base")
	cmd.Flags().StringVar(&to, "to", "", `radix of the output or "bytes"; defaults to --base`)
	return cmd
}

func opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range bignum.Ops() {
				minArgs, maxArgs, err := bignum.Arity(name)
				if err != nil {
					return err
				}
				arity := strconv.Itoa(minArgs)
				if maxArgs != minArgs {
					arity += "-" + strconv.Itoa(maxArgs)
				}
				if _, err := fmt.Fprintf(w, "%-12s %v\n", name, arity); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// printResult writes an operation result followed by a newline.
// Integers are written in the given base and byte slices in hex.
func printResult(w io.Writer, res any, base int) error {
	var s string
	switch res := res.(type) {
	case bignum.Int:
		var err error
		s, err = res.Text(base)
		if err != nil {
			return err
		}
	case []byte:
		s = hex.EncodeToString(res)
	default:
		s = fmt.Sprint(res)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
