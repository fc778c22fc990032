//go:build !linux && !darwin

package iobench

// DropCaches is a no-op on platforms without a usable per-file cache
// advisory; trials proceed without an eviction guarantee.
func DropCaches(path string) {}
