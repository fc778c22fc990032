package iobench

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCollectSuiteFiles(t *testing.T) {
	dir := t.TempDir()

	touch := func(name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		return path
	}

	a := touch("a.html")
	b := touch("nested/b.yaml")
	c := touch("nested/c.yml")
	touch("notes.txt")
	touch("nested/readme.md")

	files, err := CollectSuiteFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectSuiteFiles failed: %v", err)
	}

	want := map[string]bool{a: true, b: true, c: true}
	if len(files) != len(want) {
		t.Fatalf("collected %d files %v, want 3", len(files), files)
	}
	for _, f := range files {
		if !want[f] {
			t.Errorf("collected unexpected file %s", f)
		}
	}
}

func TestCollectSuiteFilesExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.weird")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Explicitly named files are taken as-is, extension filtering only
	// applies when walking directories.
	files, err := CollectSuiteFiles([]string{path})
	if err != nil {
		t.Fatalf("CollectSuiteFiles failed: %v", err)
	}
	if !reflect.DeepEqual(files, []string{path}) {
		t.Errorf("collected %v, want %v", files, []string{path})
	}
}

func TestCollectSuiteFilesMissingPath(t *testing.T) {
	if _, err := CollectSuiteFiles([]string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("missing path accepted")
	}
}
