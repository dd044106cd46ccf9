// Package scanner expands file and directory arguments into the config or
// intake files beneath them.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
}

// ConfigExtensions are the suffixes treated as domain-config files.
var ConfigExtensions = []string{".yaml", ".yml"}

// FileScanner walks directories for files with matching extensions.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Expand returns paths with every directory replaced by the matching files
// under it, in lexical order. Plain file arguments are kept as given, even
// when they do not exist, so the caller can report them.
func (s *FileScanner) Expand(paths []string, exts ...string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasExt(d.Name(), exts) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
