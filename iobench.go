// Package iobench measures wall-clock latency of basic file write and
// read operations under varying payload sizes, optionally dropping the
// OS page cache between write and read phases.
package iobench

import (
	"fmt"
	"io"
)

// Config holds the configuration for running benchmark suites.
type Config struct {
	TargetPath string // File the operations write to and read from
	SuitePaths []string
	Output     io.Writer
	ErrOutput  io.Writer
}

// Run executes all suites found under cfg.SuitePaths and reports each
// result as a "label:milliseconds" line. Returns the process exit code.
func Run(cfg Config) int {
	suiteFiles, err := CollectSuiteFiles(cfg.SuitePaths)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}

	if len(suiteFiles) == 0 {
		fmt.Fprintln(cfg.ErrOutput, "error: no suite files found")
		return 1
	}

	runner := NewRunner(cfg.TargetPath)
	reporter := NewReporter(cfg.Output)

	for _, suiteFile := range suiteFiles {
		suite, err := ParseSuiteFile(suiteFile)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error parsing %s: %v\n", suiteFile, err)
			return 1
		}

		results, err := runner.RunSuite(suite)
		reporter.ReportMillis(results)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error running %s: %v\n", suiteFile, err)
			return 1
		}
	}

	return 0
}

// OnceConfig holds the configuration for the single-trial sweep.
type OnceConfig struct {
	TargetPath string
	Size       int // Payload size in bytes for string/byte operations
	Lines      int // Line count for line operations
	Output     io.Writer
	ErrOutput  io.Writer
}

// RunOnce executes every operation once against the target file, write
// phases directly followed by the reads that observe them, and reports
// each duration as a "label: seconds" line. Returns the process exit
// code.
func RunOnce(cfg OnceConfig) int {
	suite := &Suite{Name: "once"}
	for _, name := range opNames {
		suite.Benchmarks = append(suite.Benchmarks, Benchmark{
			Name:   name,
			Op:     name,
			Size:   cfg.Size,
			Lines:  cfg.Lines,
			Trials: 1,
		})
	}

	runner := NewRunner(cfg.TargetPath)
	results, err := runner.RunSuite(suite)
	NewReporter(cfg.Output).ReportSeconds(results)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	return 0
}
