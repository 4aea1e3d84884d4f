package storage

import (
	"os"
	"path/filepath"
)

// CandidatePaths expands every directory with every file name, directory
// first, so all names in the preferred directory are tried before moving on.
func CandidatePaths(dirs []string, names ...string) []string {
	paths := make([]string, 0, len(dirs)*len(names))
	for _, dir := range dirs {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// PickExistingPath returns the first candidate that is an existing regular
// file. Finding nothing is a normal outcome, not an error.
func PickExistingPath(candidates []string) (string, bool) {
	for _, p := range candidates {
		info, err := os.Stat(p)
		if err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}
