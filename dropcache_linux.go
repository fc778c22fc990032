//go:build linux

package iobench

import (
	"os"

	"golang.org/x/sys/unix"
)

// DropCaches asks the kernel to evict path's pages from the page cache
// so the next read hits storage. Best effort: dirty pages are committed
// first since fadvise skips them, and any failure leaves the cache
// as-is.
func DropCaches(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	fd := int(f.Fd())
	_ = unix.Fdatasync(fd)
	_ = unix.Fadvise(fd, 0, 0, unix.FADV_DONTNEED)
}
