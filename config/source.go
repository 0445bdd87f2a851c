package config

// Source indicates where a resolved configuration value came from.
type Source string

// Configuration source constants.
const (
	// SourceIdentity indicates a value derived from the file itself
	// (the "path" and "name" fields).
	SourceIdentity Source = "identity"

	// SourceCascade indicates the value came from a "+"-prefixed cascading
	// default at some ancestor level of the tree.
	SourceCascade Source = "cascade"

	// SourceLeaf indicates the value came from the procedure's own node in
	// the tree.
	SourceLeaf Source = "leaf"

	// SourceFrontmatter indicates the value came from frontmatter embedded
	// in the procedure source file.
	SourceFrontmatter Source = "frontmatter"
)
