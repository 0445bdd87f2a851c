// Package render turns resolved procedure configuration plus a procedure
// body into a CREATE OR REPLACE PROCEDURE statement.
//
// Templates are text/template files named after the procedure language
// (javascript.sql.tmpl, python.sql.tmpl). Defaults are embedded in the
// binary; a project can override them by placing files with the same name
// under .sprocketship/templates/.
package render
