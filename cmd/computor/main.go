// SPDX-License-Identifier: MIT

// Command computor reduces and solves polynomial equations of degree ≤ 2.
//
//	computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
//	computor -f json "X^2 = -1" "X = 2"
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/computor"
	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/report"
)

// ErrEquationsFailed is returned when at least one equation was rejected.
var ErrEquationsFailed = errors.New("computor: some equations could not be solved")

// logger is replaced in PersistentPreRunE; tests may install zap.NewNop().
var logger = zap.NewNop()

// flags holds the command-line configuration of one invocation.
type flags struct {
	format     string
	precision  int
	variable   string
	ignoreCase bool
	epsilon    float64
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "computor [flags] EQUATION...",
		Short: "Reduce and solve polynomial equations of degree 2 or lower",
		Long: `computor reads each EQUATION, prints its reduced form and degree,
then solves it with the discriminant method (real or complex roots).

Equations use terms like "4 * X^2", "4X^2", "X", "-3.5" joined by + and -,
with exactly one '='. Quote each equation; put "--" before an equation that
starts with '-'.

Examples:
  computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
  computor -f yaml "X^2 = -1" "2X = 1"
  computor -- "-X^2 = -4"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(f.verbose)
			if err != nil {
				return err
			}
			logger = l

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", "text", "Output format: text, json or yaml")
	fl.IntVarP(&f.precision, "precision", "p", report.DefaultPrecision, "Decimals printed for roots in text output")
	fl.StringVar(&f.variable, "variable", string(polynomial.DefaultVariable), "Letter used for the unknown")
	fl.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "Accept the unknown in either case")
	fl.Float64Var(&f.epsilon, "epsilon", polynomial.DefaultEpsilon, "Zero tolerance for coefficients and discriminant (0 = exact)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

// newLogger builds the production logger: Error level, Debug with -v.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return l, nil
}

// options turns validated flags into polynomial options.
func (f *flags) options() ([]polynomial.Option, error) {
	var opts []polynomial.Option

	v, size := utf8.DecodeRuneInString(f.variable)
	if size != len(f.variable) || !isLetter(v) {
		return nil, fmt.Errorf("invalid --variable %q: want a single ASCII letter", f.variable)
	}
	opts = append(opts, polynomial.WithVariable(v))

	if f.ignoreCase {
		opts = append(opts, polynomial.WithCaseInsensitive())
	}
	if f.epsilon < 0 || math.IsNaN(f.epsilon) || math.IsInf(f.epsilon, 0) {
		return nil, fmt.Errorf("invalid --epsilon %v: want a finite non-negative number", f.epsilon)
	}
	if f.epsilon > 0 {
		opts = append(opts, polynomial.WithEpsilon(f.epsilon))
	}

	return opts, nil
}

// run solves every argument and renders them; later equations are still
// processed after a failure.
func run(cmd *cobra.Command, f *flags, equations []string) error {
	format, err := report.ParseFormat(f.format)
	if err != nil {
		return err
	}
	opts, err := f.options()
	if err != nil {
		return err
	}
	printer, err := report.NewPrinter(cmd.OutOrStdout(), format, f.precision)
	if err != nil {
		return err
	}

	failed := 0
	for _, eq := range equations {
		res, cerr := computor.Compute(eq, opts...)
		if cerr != nil {
			failed++
			logger.Error("Equation rejected", zap.String("equation", eq), zap.Error(cerr))
		} else {
			logger.Debug("Equation solved",
				zap.String("equation", eq),
				zap.String("reduced", res.Reduced),
				zap.Int("degree", res.Degree),
				zap.Stringer("kind", res.Solution.Kind))
		}
		if err := printer.Add(eq, res, cerr); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := printer.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", ErrEquationsFailed, failed, len(equations))
	}

	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
