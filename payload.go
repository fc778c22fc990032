package iobench

import (
	"bytes"
	"strings"
)

// Defaults shared by both run modes. The target file is reused across
// successive operations within one run: reads observe whatever the most
// recent write produced.
const (
	DefaultTargetPath = "bench_test.log"
	DefaultSize       = 10_000_000
	DefaultLines      = 1_000_000
	DefaultTrials     = 30
	DefaultWarmup     = 1
)

// fill is the byte every generated payload is made of.
const fill = 'x'

// TextPayload returns a size-byte string of the fill character.
func TextPayload(size int) string {
	return strings.Repeat(string(rune(fill)), size)
}

// BytePayload returns a size-byte slice of the fill character.
func BytePayload(size int) []byte {
	return bytes.Repeat([]byte{fill}, size)
}

// LinePayload returns n single-character lines without terminators;
// the write path appends exactly one newline per line.
func LinePayload(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = string(rune(fill))
	}
	return lines
}
