package iobench

import "time"

// Benchmark captures information about a single timed operation.
type Benchmark struct {
	Name      string // Display name; defaults to the operation name
	Op        string // Operation to run, e.g. "writeString"
	Size      int    // Payload size in bytes for string/byte operations
	Lines     int    // Line count for line operations
	Warmup    int    // Number of untimed warmup invocations
	Trials    int    // Number of measured trials
	DropCache bool   // Issue a cache-drop advisory before each measured trial
}

// Suite represents a collection of benchmarks sharing one target file.
type Suite struct {
	Name       string
	Path       string
	Benchmarks []Benchmark
}

// Result holds the outcome of running a single benchmark.
type Result struct {
	Benchmark Benchmark
	Samples   []time.Duration // One duration per measured trial, in execution order
	Median    time.Duration   // Middle value of the sorted samples
	MinTime   time.Duration
	MaxTime   time.Duration
	TotalTime time.Duration
	Bytes     int64 // Bytes processed by the last trial
	Err       error // Set when the operation itself failed
}

// ResultSet is an ordered collection of results, one per benchmark,
// in execution order.
type ResultSet struct {
	Results []Result
}

// Add appends a result, preserving execution order.
func (rs *ResultSet) Add(r Result) {
	rs.Results = append(rs.Results, r)
}

// Lookup returns the result for the given benchmark name.
func (rs *ResultSet) Lookup(name string) (Result, bool) {
	for _, r := range rs.Results {
		if r.Benchmark.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// Labels returns the benchmark names in execution order.
func (rs *ResultSet) Labels() []string {
	labels := make([]string, 0, len(rs.Results))
	for _, r := range rs.Results {
		labels = append(labels, r.Benchmark.Name)
	}
	return labels
}
