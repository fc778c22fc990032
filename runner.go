package iobench

import "fmt"

// opNames lists every operation in the order the single-trial sweep
// runs them: each write immediately followed by the read that observes
// its output.
var opNames = []string{
	"writeString",
	"readString",
	"writeBytes",
	"readBytes",
	"writeLine",
	"readLine",
	"writeLines",
	"readLines",
}

// KnownOp reports whether name is one of the benchmarked operations.
func KnownOp(name string) bool {
	for _, op := range opNames {
		if op == name {
			return true
		}
	}
	return false
}

// Runner executes benchmark suites against a single target file. The
// file is shared mutable state: reads observe whatever the most recent
// write left behind.
type Runner struct {
	TargetPath string
}

// NewRunner creates a runner benchmarking the file at targetPath.
func NewRunner(targetPath string) *Runner {
	return &Runner{TargetPath: targetPath}
}

// RunSuite executes all benchmarks in a suite in order. The first
// operation failure aborts the run; the partial result set is returned
// along with the error.
func (r *Runner) RunSuite(suite *Suite) (*ResultSet, error) {
	results := &ResultSet{}

	for _, b := range suite.Benchmarks {
		op, err := r.resolveOp(b)
		if err != nil {
			return results, err
		}

		var setup func()
		if b.DropCache {
			path := r.TargetPath
			setup = func() { DropCaches(path) }
		}

		result := MeasureMedian(b, setup, op)
		results.Add(result)
		if result.Err != nil {
			return results, fmt.Errorf("%s: %w", b.Name, result.Err)
		}
	}

	return results, nil
}

// resolveOp binds an operation name from a suite definition to a
// closure over the target file and its payloads. Payloads are generated
// here, outside the timed window.
func (r *Runner) resolveOp(b Benchmark) (Op, error) {
	path := r.TargetPath

	switch b.Op {
	case "writeString":
		data := TextPayload(b.Size)
		return func() (int64, error) { return WriteString(path, data) }, nil
	case "readString":
		return func() (int64, error) {
			s, err := ReadString(path)
			return int64(len(s)), err
		}, nil
	case "writeBytes":
		data := BytePayload(b.Size)
		return func() (int64, error) { return WriteBytes(path, data) }, nil
	case "readBytes":
		return func() (int64, error) {
			data, err := ReadBytes(path)
			return int64(len(data)), err
		}, nil
	case "writeLine":
		line := TextPayload(b.Size - 1)
		return func() (int64, error) { return WriteLine(path, line) }, nil
	case "readLine":
		return func() (int64, error) {
			_, n, err := ReadLine(path)
			return n, err
		}, nil
	case "writeLines":
		lines := LinePayload(b.Lines)
		return func() (int64, error) { return WriteLines(path, lines) }, nil
	case "readLines":
		return func() (int64, error) {
			lines, err := ReadLines(path)
			var n int64
			for _, line := range lines {
				n += int64(len(line)) + 1
			}
			return n, err
		}, nil
	}
	return nil, fmt.Errorf("unknown operation %q", b.Op)
}
