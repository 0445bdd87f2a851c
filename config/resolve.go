package config

import (
	"fmt"
	"sort"
	"strings"
)

// Resolver merges cascading configuration for procedure files against a
// shared, read-only Tree.
type Resolver struct {
	tree       Tree
	projectDir string
}

// NewResolver creates a resolver for the given tree and project directory.
func NewResolver(tree Tree, projectDir string) *Resolver {
	return &Resolver{tree: tree, projectDir: projectDir}
}

// Resolve walks the tree along the file's traversal keys and returns the
// fully merged configuration for that procedure.
//
// At every level visited, all CascadeMarker-prefixed entries are merged into
// the result with the marker stripped; deeper declarations overwrite
// shallower ones. The walk descends on exact key match and stops early,
// without error, when a key is absent: the tree is not required to mirror
// the filesystem, and a partial result carrying only cascading defaults is a
// valid outcome. When the full key sequence matches, the terminal node's
// plain fields are merged last and win over any cascaded value.
func (r *Resolver) Resolve(path string) (*Resolved, error) {
	keys, err := TraversalKeys(path, r.projectDir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		values:  make(map[string]any),
		sources: make(map[string]Source),
	}
	resolved.set("path", path, SourceIdentity)
	resolved.set("name", keys[len(keys)-1], SourceIdentity)

	current := map[string]any(r.tree)
	for _, key := range keys {
		for k, v := range current {
			if strings.HasPrefix(k, CascadeMarker) {
				resolved.set(strings.TrimPrefix(k, CascadeMarker), v, SourceCascade)
			}
		}

		child, ok := current[key]
		if !ok {
			return resolved, nil
		}
		childMap, ok := child.(map[string]any)
		if !ok {
			// A scalar or sequence where a mapping was expected; nothing
			// below this point can match, same as a missing key.
			return resolved, nil
		}
		current = childMap
	}

	for k, v := range current {
		if !strings.HasPrefix(k, CascadeMarker) {
			resolved.set(k, v, SourceLeaf)
		}
	}
	return resolved, nil
}

// Resolved holds the final merged configuration for one procedure.
type Resolved struct {
	values  map[string]any
	sources map[string]Source
}

// Get returns the value for a field, or nil if not set.
func (c *Resolved) Get(field string) any {
	return c.values[field]
}

// GetString returns the value for a field rendered as a string, or empty
// string if the field is absent or nil.
func (c *Resolved) GetString(field string) string {
	return toString(c.values[field])
}

// Has reports whether a field is present with a non-nil value.
func (c *Resolved) Has(field string) bool {
	v, ok := c.values[field]
	return ok && v != nil
}

// Source returns the source of a field's value.
func (c *Resolved) Source(field string) Source {
	return c.sources[field]
}

// Name returns the procedure's logical name (filename stem).
func (c *Resolved) Name() string {
	return c.GetString("name")
}

// Path returns the procedure file's on-disk path.
func (c *Resolved) Path() string {
	return c.GetString("path")
}

// All returns a copy of all field-value pairs.
func (c *Resolved) All() map[string]any {
	result := make(map[string]any, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// Keys returns all field names in sorted order.
func (c *Resolved) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeOverrides merges fields into the resolved config with the given
// source, overwriting existing values. Deploy uses this to overlay
// frontmatter metadata on top of tree-resolved fields.
func (c *Resolved) MergeOverrides(source Source, fields map[string]any) {
	for k, v := range fields {
		c.set(k, v, source)
	}
}

func (c *Resolved) set(field string, value any, source Source) {
	c.values[field] = value
	c.sources[field] = source
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}
