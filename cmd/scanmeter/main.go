// Command scanmeter batch-scans lines of Greek iambic trimeter.
//
// It reads verse lines from the given files (or stdin), scans each one
// concurrently, and writes "scansion TAB line" to stdout in input
// order. Lines that fit no trimeter pattern are logged with their raw
// meter and marked FAILED in the output.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/aconser/greek-scansion/scan"
	"github.com/aconser/greek-scansion/trimeter"
)

var (
	// Global flags
	verbose   bool
	meterOnly bool
	jobs      int

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scanmeter [file...]",
	Short: "Scan lines of Greek iambic trimeter",
	Long: `scanmeter determines the metrical scansion of ancient Greek verse.

Each input line is scanned independently: syllable lengths are inferred
from vowel quality and consonant clusters, then the line is partitioned
into three iambic metra. Output is one "scansion TAB line" pair per
input line; unscannable lines are marked FAILED and logged together
with their raw meter.

With no file arguments, lines are read from stdin.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runScan,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&meterOnly, "meter-only", false, "print the raw meter without fitting the trimeter")
	rootCmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "number of lines scanned concurrently")
}

func runScan(cmd *cobra.Command, args []string) error {
	lines, err := readLines(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("scanning lines", zap.Int("count", len(lines)), zap.Int("jobs", jobs))

	// Every line is independent (the core is pure), so fan out freely
	// and keep input order in the results slice.
	results := make([]string, len(lines))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			results[i] = scanOne(line)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, res := range results {
		if res == "" {
			continue // blank input line
		}
		fmt.Fprintln(w, res)
	}

	return w.Flush()
}

// scanOne maps one input line to one output record; failures become
// FAILED records rather than aborting the batch.
func scanOne(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}

	if meterOnly {
		raw, err := scan.ScanLine(line, nil)
		if err != nil {
			logger.Warn("cannot scan line", zap.String("line", line), zap.Error(err))

			return "FAILED\t" + line
		}

		return raw.String() + "\t" + line
	}

	out, err := trimeter.Scan(line, nil)
	if err != nil {
		var fr *trimeter.FailureReport
		if errors.As(err, &fr) {
			logger.Warn("no trimeter partition",
				zap.String("line", fr.Line),
				zap.String("raw_meter", fr.RawMeter.String()))
		} else {
			logger.Warn("cannot scan line", zap.String("line", line), zap.Error(err))
		}

		return "FAILED\t" + line
	}

	return out + "\t" + line
}

// readLines gathers input lines from the named files, or from in when
// no files are given.
func readLines(in io.Reader, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanAll(in)
	}

	var lines []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		fileLines, err := scanAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		lines = append(lines, fileLines...)
	}

	return lines, nil
}

func scanAll(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	return lines, sc.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
