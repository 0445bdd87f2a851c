package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sprocketship/sprocketship/errors"
)

// CascadeMarker prefixes tree keys that declare cascading defaults.
const CascadeMarker = "+"

// RootKey is the fixed top-level tree key under which all procedure
// configuration lives.
const RootKey = "procedures"

// Tree is the parsed configuration document. It is loaded once per
// invocation and treated as read-only; every per-file resolution shares it.
type Tree map[string]any

// Load reads and parses a configuration file into a Tree.
func Load(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigNotFoundError(path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, errors.NewConfigUnparsableError(path, err)
	}
	return tree, nil
}

// Parse parses YAML into a Tree. The document root must be a mapping.
func Parse(data []byte) (Tree, error) {
	// Decode into the unnamed map type: yaml.v3 reuses the target map type
	// for nested mappings, and the rest of the package asserts on
	// map[string]any rather than Tree.
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return Tree(tree), nil
}

// Section returns a named top-level mapping of the tree, or nil if the key
// is absent or not a mapping.
func (t Tree) Section(key string) map[string]any {
	if section, ok := t[key].(map[string]any); ok {
		return section
	}
	return nil
}
