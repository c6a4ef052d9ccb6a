// Package discover locates note files for an editing session.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Files walks a directory tree and returns the files whose extension
// matches one of exts, sorted by path. Hidden files and directories
// (".git", ".obsidian", dotfiles) are skipped.
func Files(dir string, exts []string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		name := info.Name()
		if strings.HasPrefix(name, ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && matches(path, exts) {
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

func matches(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
