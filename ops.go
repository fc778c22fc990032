package iobench

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// writeBufSize is the buffer the write path goes through before the
// flush-and-sync that ends every write operation.
const writeBufSize = 1 << 20

// syncClose flushes w, commits f to stable storage, and closes it.
// Write operations are durable: the clock must not stop before the data
// has reached the device.
func syncClose(f *os.File, w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteString truncates path and writes data to it as text.
// Returns the number of bytes written.
func WriteString(path, data string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriterSize(f, writeBufSize)
	n, err := w.WriteString(data)
	if err != nil {
		f.Close()
		return int64(n), err
	}
	return int64(n), syncClose(f, w)
}

// ReadString reads the whole file at path into a string.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

// WriteBytes truncates path and writes data to it.
// Returns the number of bytes written.
func WriteBytes(path string, data []byte) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriterSize(f, writeBufSize)
	n, err := w.Write(data)
	if err != nil {
		f.Close()
		return int64(n), err
	}
	return int64(n), syncClose(f, w)
}

// ReadBytes reads the whole file at path into a byte slice.
func ReadBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteLine truncates path and writes a single newline-terminated line.
// Returns the number of bytes written, newline included.
func WriteLine(path, line string) (int64, error) {
	return WriteString(path, line+"\n")
}

// ReadLine reads path one line at a time until EOF.
// Returns the number of lines seen and the number of bytes consumed.
func ReadLine(path string) (lines int, bytes int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, writeBufSize)
	for {
		line, err := r.ReadString('\n')
		bytes += int64(len(line))
		if len(line) > 0 {
			lines++
		}
		if err == io.EOF {
			return lines, bytes, nil
		}
		if err != nil {
			return lines, bytes, err
		}
	}
}

// WriteLines truncates path and writes each line terminated by a single
// newline. Returns the number of bytes written.
func WriteLines(path string, lines []string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w := bufio.NewWriterSize(f, writeBufSize)
	var total int64
	for _, line := range lines {
		n, err := w.WriteString(line)
		total += int64(n)
		if err != nil {
			f.Close()
			return total, err
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return total, err
		}
		total++
	}
	return total, syncClose(f, w)
}

// ReadLines reads the whole file at path into a slice of lines, each
// stripped of its terminator.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReaderSize(f, writeBufSize)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}
