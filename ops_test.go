package iobench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func targetFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bench_test.log")
}

func TestWriteReadStringRoundTrip(t *testing.T) {
	path := targetFile(t)

	for _, size := range []int{1, 512, 10_000} {
		data := TextPayload(size)
		n, err := WriteString(path, data)
		if err != nil {
			t.Fatalf("WriteString(%d) failed: %v", size, err)
		}
		if n != int64(size) {
			t.Errorf("WriteString(%d) reported %d bytes", size, n)
		}

		got, err := ReadString(path)
		if err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}
		if len(got) != size {
			t.Errorf("read %d bytes, want %d", len(got), size)
		}
		if got != data {
			t.Errorf("read data does not match written data for size %d", size)
		}
	}
}

func TestWriteReadBytesRoundTrip(t *testing.T) {
	path := targetFile(t)

	data := BytePayload(4096)
	n, err := WriteBytes(path, data)
	if err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	if n != 4096 {
		t.Errorf("WriteBytes reported %d bytes, want 4096", n)
	}

	got, err := ReadBytes(path)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if len(got) != 4096 {
		t.Errorf("read %d bytes, want 4096", len(got))
	}
}

func TestWriteTruncatesPreviousContent(t *testing.T) {
	path := targetFile(t)

	if _, err := WriteString(path, TextPayload(1000)); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	if _, err := WriteString(path, TextPayload(10)); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}

	got, err := ReadString(path)
	if err != nil {
		t.Fatalf("ReadString failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("read %d bytes after rewrite, want 10", len(got))
	}
}

func TestWriteLinesLineCount(t *testing.T) {
	path := targetFile(t)

	lines := LinePayload(500)
	n, err := WriteLines(path, lines)
	if err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	if n != 1000 { // 500 one-byte lines plus one newline each
		t.Errorf("WriteLines reported %d bytes, want 1000", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if count := strings.Count(string(data), "\n"); count != 500 {
		t.Errorf("file has %d newlines, want 500", count)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("last line is not newline-terminated")
	}

	read, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(read) != 500 {
		t.Errorf("ReadLines returned %d lines, want 500", len(read))
	}
	for i, line := range read {
		if line != "x" {
			t.Fatalf("line %d is %q, want %q", i, line, "x")
		}
	}
}

func TestReadLineCountsLinesAndBytes(t *testing.T) {
	path := targetFile(t)

	if _, err := WriteLines(path, LinePayload(100)); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	lines, bytes, err := ReadLine(path)
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if lines != 100 {
		t.Errorf("ReadLine saw %d lines, want 100", lines)
	}
	if bytes != 200 {
		t.Errorf("ReadLine consumed %d bytes, want 200", bytes)
	}
}

func TestReadLineWithoutTrailingNewline(t *testing.T) {
	path := targetFile(t)

	if err := os.WriteFile(path, []byte("one\ntwo"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	lines, bytes, err := ReadLine(path)
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if lines != 2 {
		t.Errorf("ReadLine saw %d lines, want 2", lines)
	}
	if bytes != 7 {
		t.Errorf("ReadLine consumed %d bytes, want 7", bytes)
	}
}

func TestSingleLineRoundTrip1024(t *testing.T) {
	path := targetFile(t)

	// 1 line of 1023 filler characters plus its newline is exactly 1 KiB.
	n, err := WriteLine(path, TextPayload(1023))
	if err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}
	if n != 1024 {
		t.Errorf("WriteLine reported %d bytes, want 1024", n)
	}

	data, err := ReadBytes(path)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if len(data) != 1024 {
		t.Errorf("read %d bytes, want 1024", len(data))
	}

	lines, bytes, err := ReadLine(path)
	if err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if lines != 1 || bytes != 1024 {
		t.Errorf("ReadLine saw %d lines / %d bytes, want 1 / 1024", lines, bytes)
	}
}

func TestReadMissingFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")

	if _, err := ReadString(path); err == nil {
		t.Error("ReadString on a missing file succeeded")
	}
	if _, _, err := ReadLine(path); err == nil {
		t.Error("ReadLine on a missing file succeeded")
	}
}
