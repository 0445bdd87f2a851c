// Package deploy orchestrates building and deploying stored procedures.
//
// A Project wraps a directory holding .sprocketship.yml plus procedure
// source files (.js, .py). For every discovered file the project resolves
// cascading configuration, overlays frontmatter, validates, and renders the
// CREATE OR REPLACE PROCEDURE statement. A Runner then either writes the
// statements to a target directory (Build) or executes them against a
// warehouse session (Liftoff), emitting run events through the notify
// package.
//
// Failures are collected per procedure: every selected file is attempted
// before the run reports an aggregate error.
package deploy
