//go:build darwin

package iobench

import (
	"os"

	"golang.org/x/sys/unix"
)

// DropCaches disables caching on path via F_NOCACHE after committing
// any dirty pages. Darwin has no per-file eviction call; this keeps the
// next read from being served (or re-populated) from the unified buffer
// cache. Best effort, failures ignored.
func DropCaches(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	fd := int(f.Fd())
	_ = unix.Fsync(fd)
	_, _ = unix.FcntlInt(uintptr(fd), unix.F_NOCACHE, 1)
}
