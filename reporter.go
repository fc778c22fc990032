package iobench

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Reporter handles reporting of benchmark results.
type Reporter struct {
	output io.Writer
	table  bool // append the aligned summary table
}

// NewReporter creates a reporter that writes to the given output. The
// summary table is only emitted when output is a terminal; piped output
// stays one label per line for downstream parsing.
func NewReporter(output io.Writer) *Reporter {
	return &Reporter{
		output: output,
		table:  isTerminal(output),
	}
}

// ReportMillis writes one "label:value" line per result in execution
// order, milliseconds with three decimal places.
func (r *Reporter) ReportMillis(rs *ResultSet) {
	for _, result := range rs.Results {
		if result.Err != nil {
			continue
		}
		fmt.Fprintf(r.output, "%s:%.3f\n", result.Benchmark.Name, millis(result.Median))
	}
	if r.table {
		r.ReportTable(rs)
	}
}

// ReportSeconds writes one "label: value s" line per result in
// execution order, seconds with six decimal places.
func (r *Reporter) ReportSeconds(rs *ResultSet) {
	for _, result := range rs.Results {
		if result.Err != nil {
			continue
		}
		fmt.Fprintf(r.output, "%s: %.6f s\n", result.Benchmark.Name, result.Median.Seconds())
	}
}

// ReportTable writes an aligned summary of a result set.
func (r *Reporter) ReportTable(rs *ResultSet) {
	fmt.Fprintf(r.output, "\n%-12s %12s %12s %12s %8s %10s\n",
		"Operation", "Median (ms)", "Min (ms)", "Max (ms)", "Trials", "MB/s")

	for _, result := range rs.Results {
		fmt.Fprintf(r.output, "%-12s %12.3f %12.3f %12.3f %8d %10.2f\n",
			result.Benchmark.Name,
			millis(result.Median),
			millis(result.MinTime),
			millis(result.MaxTime),
			len(result.Samples),
			throughput(result.Bytes, result.Median))
	}
}

// millis converts a duration to fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// throughput returns megabytes per second, or 0 when the duration is
// too small to divide by.
func throughput(bytes int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(bytes) / (1 << 20) / d.Seconds()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
