package iobench

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// ParseSuiteFile parses a benchmark suite from the given file path,
// dispatching on the file extension (.html, .yaml, .yml).
func ParseSuiteFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var suite *Suite
	switch ext := filepath.Ext(path); ext {
	case ".html":
		suite, err = ParseHTMLSuite(f)
	case ".yaml", ".yml":
		suite, err = ParseYAMLSuite(f)
	default:
		return nil, fmt.Errorf("unsupported suite file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	suite.Path = path
	// Use filename without extension as suite name if not set
	if suite.Name == "" {
		base := filepath.Base(path)
		suite.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return suite, nil
}

// ParseHTMLSuite parses a benchmark suite from HTML markup: a
// benchmark-suite element containing benchmark elements whose
// attributes configure each entry.
func ParseHTMLSuite(r io.Reader) (*Suite, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	suite := &Suite{
		Benchmarks: make([]Benchmark, 0),
	}

	var parseErr error
	var findElements func(*html.Node)
	findElements = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "benchmark-suite":
				for _, attr := range n.Attr {
					if attr.Key == "name" {
						suite.Name = attr.Val
					}
				}
			case "benchmark":
				b, err := parseBenchmarkElement(n)
				if err != nil && parseErr == nil {
					parseErr = err
				}
				suite.Benchmarks = append(suite.Benchmarks, b)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findElements(c)
		}
	}
	findElements(doc)

	if parseErr != nil {
		return nil, parseErr
	}
	return suite, nil
}

// parseBenchmarkElement extracts a Benchmark from a benchmark HTML element.
func parseBenchmarkElement(n *html.Node) (Benchmark, error) {
	var b Benchmark

	for _, attr := range n.Attr {
		switch attr.Key {
		case "name":
			b.Name = attr.Val
		case "op":
			b.Op = attr.Val
		case "size":
			if val, err := strconv.Atoi(attr.Val); err == nil {
				b.Size = val
			}
		case "lines":
			if val, err := strconv.Atoi(attr.Val); err == nil {
				b.Lines = val
			}
		case "trials":
			if val, err := strconv.Atoi(attr.Val); err == nil {
				b.Trials = val
			}
		case "warmup":
			if val, err := strconv.Atoi(attr.Val); err == nil {
				b.Warmup = val
			}
		case "drop-cache":
			b.DropCache = attr.Val == "true"
		}
	}

	return normalizeBenchmark(b)
}

// yamlSuite mirrors the YAML structure for parsing.
type yamlSuite struct {
	Name       string          `yaml:"name"`
	Benchmarks []yamlBenchmark `yaml:"benchmarks"`
}

type yamlBenchmark struct {
	Name      string `yaml:"name"`
	Op        string `yaml:"op"`
	Size      int    `yaml:"size"`
	Lines     int    `yaml:"lines"`
	Trials    int    `yaml:"trials"`
	Warmup    int    `yaml:"warmup"`
	DropCache bool   `yaml:"drop-cache"`
}

// ParseYAMLSuite parses a benchmark suite from a YAML document carrying
// the same fields as the HTML form.
func ParseYAMLSuite(r io.Reader) (*Suite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var ys yamlSuite
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, err
	}

	suite := &Suite{
		Name:       ys.Name,
		Benchmarks: make([]Benchmark, 0, len(ys.Benchmarks)),
	}
	for _, yb := range ys.Benchmarks {
		b, err := normalizeBenchmark(Benchmark{
			Name:      yb.Name,
			Op:        yb.Op,
			Size:      yb.Size,
			Lines:     yb.Lines,
			Trials:    yb.Trials,
			Warmup:    yb.Warmup,
			DropCache: yb.DropCache,
		})
		if err != nil {
			return nil, err
		}
		suite.Benchmarks = append(suite.Benchmarks, b)
	}
	return suite, nil
}

// normalizeBenchmark validates the operation name and fills in defaults
// for omitted fields. A zero value means "not specified"; suites cannot
// ask for zero trials or a zero-byte payload.
func normalizeBenchmark(b Benchmark) (Benchmark, error) {
	if !KnownOp(b.Op) {
		return b, fmt.Errorf("unknown operation %q", b.Op)
	}
	if b.Name == "" {
		b.Name = b.Op
	}
	if b.Size == 0 {
		b.Size = DefaultSize
	}
	if b.Lines == 0 {
		b.Lines = DefaultLines
	}
	if b.Trials == 0 {
		b.Trials = DefaultTrials
	}
	if b.Warmup == 0 {
		b.Warmup = DefaultWarmup
	}
	return b, nil
}
