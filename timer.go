package iobench

import (
	"slices"
	"time"
)

// Op performs one file write or read and reports the number of bytes it
// processed. Returning the count forces materialization of the result
// before the clock stops.
type Op func() (int64, error)

// Measure runs op once and returns the elapsed wall-clock time together
// with the byte count op reported.
func Measure(op Op) (time.Duration, int64, error) {
	start := time.Now()
	n, err := op()
	return time.Since(start), n, err
}

// MeasureMedian runs op b.Trials times, preceded by b.Warmup untimed
// invocations. setup, when non-nil, runs before each measured trial and
// outside the timed window; it is best effort and cannot fail the trial.
// The reported median is the middle value of the sorted samples.
func MeasureMedian(b Benchmark, setup func(), op Op) Result {
	result := Result{
		Benchmark: b,
		Samples:   make([]time.Duration, 0, b.Trials),
	}

	for i := 0; i < b.Warmup; i++ {
		if _, err := op(); err != nil {
			result.Err = err
			return result
		}
	}

	for i := 0; i < b.Trials; i++ {
		if setup != nil {
			setup()
		}
		elapsed, n, err := Measure(op)
		if err != nil {
			result.Err = err
			return result
		}
		result.Samples = append(result.Samples, elapsed)
		result.TotalTime += elapsed
		result.Bytes = n
		if i == 0 || elapsed < result.MinTime {
			result.MinTime = elapsed
		}
		if elapsed > result.MaxTime {
			result.MaxTime = elapsed
		}
	}

	result.Median = median(result.Samples)
	return result
}

// median returns the middle value of the sorted samples: index n/2, so
// for an even count the upper-middle element.
func median(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}
