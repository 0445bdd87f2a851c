// Package config provides hierarchical configuration resolution for
// procedure files.
//
// A project's .sprocketship.yml holds a nested tree of settings under the
// "procedures" key. Keys prefixed with "+" declare cascading defaults that
// apply to every procedure below that level; plain keys name child
// directories or, at the deepest level, procedure files. Resolution walks
// the tree along a file's path, accumulating defaults and finishing with
// the file's own settings:
//
//	procedures:
//	  +database: default_db
//	  +schema: default_schema
//	  admin:
//	    +database: admin_db      # deeper cascade wins over the root one
//	    create_db:
//	      returns: varchar       # leaf fields win over any cascade
//
// With that tree, admin/create_db.js resolves to database=admin_db,
// schema=default_schema, returns=varchar.
//
// # Precedence
//
// From lowest to highest: shallow cascades, deeper cascades, the file's own
// tree node, frontmatter embedded in the source file (merged by the caller
// via Resolved.MergeOverrides). Every resolved field tracks its Source.
//
// The walk never fails when the tree doesn't mirror the filesystem: a
// missing intermediate key ends the walk early and yields the cascading
// defaults accumulated so far. Missing required fields only surface later,
// in Validate.
//
// # Basic Usage
//
//	tree, err := config.Load(".sprocketship.yml")
//	resolver := config.NewResolver(tree, projectDir)
//	resolved, err := resolver.Resolve("procedures/admin/create_db.js")
//	if err := config.Validate(resolved, resolved.Name()); err != nil {
//	    // CLIError with code E002/E003 and remediation hints
//	}
package config
