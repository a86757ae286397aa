// Package utils provides the small path helpers the test harness
// needs: recurse into subdirectories, skip hidden entries, and
// dispatch only on files ending in the recognized extension.
package utils

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/swansonlang/s0/internal/config"
)

// WalkTestFiles recursively walks root and returns every regular file
// whose name ends in config.TestFileExt, sorted for deterministic run
// order. Hidden entries (dotfiles and dotdirs) are skipped.
func WalkTestFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if name != "." && len(name) > 0 && name[0] == '.' {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if config.HasTestFileExt(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
