// Command wavesolve computes a wavefront matrix from the command line.
//
// Usage:
//
//	wavesolve --order 512 --workers 8 --out matrix.txt
//
// Without --out the finished matrix is written to stdout in the frozen
// six-decimal layout. --sequential selects the baseline entry backend;
// --verbose enables per-band debug logging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wavefront"
	"github.com/katalvlaran/wavefront/matrix"
)

var (
	flagOrder      int
	flagWorkers    int
	flagOut        string
	flagSequential bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "wavesolve",
	Short: "Compute a dense symmetric matrix band-by-band along anti-diagonals",
	Long: `wavesolve builds an N×N symmetric matrix whose off-diagonal bands are
computed in strict order, with the worker budget re-partitioned every band
between concurrent entries and per-entry reductions.`,
	RunE:          runSolve,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVarP(&flagOrder, "order", "n", 0, "matrix order N (required, >= 1)")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "worker budget W (>= 2; default GOMAXPROCS)")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the matrix to this file instead of stdout")
	rootCmd.Flags().BoolVar(&flagSequential, "sequential", false, "use the sequential entry backend")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable per-band debug logging")
	_ = rootCmd.MarkFlagRequired("order")
}

// newLogger builds the stderr progress sink. Verbose runs log every band
// transition; normal runs log the end-of-run summary only.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

func runSolve(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := []wavefront.Option{wavefront.WithLogger(logger)}
	if flagWorkers > 0 {
		opts = append(opts, wavefront.WithWorkers(flagWorkers))
	}
	if flagSequential {
		opts = append(opts, wavefront.WithSequential())
	}

	m, err := wavefront.SolveContext(cmd.Context(), flagOrder, opts...)
	if err != nil {
		return err
	}

	if flagOut != "" {
		if err = matrix.Save(flagOut, m); err != nil {
			return err
		}
		logger.Info("matrix saved", zap.String("path", flagOut))

		return nil
	}

	return matrix.Fprint(os.Stdout, m)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wavesolve:", err)
		os.Exit(1)
	}
}
