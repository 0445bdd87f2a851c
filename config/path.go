package config

import (
	"path/filepath"
	"strings"

	"github.com/sprocketship/sprocketship/errors"
)

// TraversalKeys turns a procedure file's location into the ordered sequence
// of tree-lookup keys used by the resolver:
//
//	[RootKey, <dir1>, ..., <dirN>, <filename without extension>]
//
// Directory names appear in path order from the project root down. The file
// must lie under projectDir; otherwise a PathError is returned.
func TraversalKeys(path, projectDir string) ([]string, error) {
	rel, err := filepath.Rel(projectDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, errors.NewPathError(path, projectDir)
	}

	keys := []string{RootKey}
	if dir := filepath.Dir(rel); dir != "." {
		keys = append(keys, strings.Split(filepath.ToSlash(dir), "/")...)
	}
	return append(keys, Stem(path)), nil
}

// Stem returns a file's base name with the extension stripped. It encodes
// the procedure's logical name.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
