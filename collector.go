package iobench

import (
	"os"
	"path/filepath"
)

// CollectSuiteFiles recursively finds all suite files (.html, .yaml,
// .yml) in the given paths. Paths can be files or directories.
func CollectSuiteFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			dirFiles, err := collectFromDir(path)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		} else {
			files = append(files, path)
		}
	}
	return files, nil
}

func collectFromDir(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".html", ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
