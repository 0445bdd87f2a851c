package deploy

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sprocketship/sprocketship/config"
	"github.com/sprocketship/sprocketship/errors"
	"github.com/sprocketship/sprocketship/testutil"
)

const fixtureConfig = `
snowflake:
  account: test_account
  user: test_user
  password: test_password
  role: sysadmin
  warehouse: test_warehouse

procedures:
  +database: default_db
  +schema: default_schema
  +language: javascript
  +execute_as: owner
  +returns: varchar
  admin:
    +database: admin_db
    +use_role: sysadmin
    create_database:
      args:
        - name: database_name
          type: varchar
  useradmin:
    +use_role: useradmin
    create_user:
      grant_usage:
        role:
          - analyst
`

func fixtureProject(t *testing.T) *testutil.Project {
	t.Helper()
	return testutil.NewProject(t).
		WithConfig(fixtureConfig).
		WithProcedure("admin/create_database.js", "var name = DATABASE_NAME;\nreturn name;\n").
		WithProcedure("useradmin/create_user.js", "return 'created';\n")
}

func TestLoadProject_MissingConfig(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	if err == nil {
		t.Fatal("LoadProject() error = nil, want error")
	}
	if !errors.IsConfigLoadError(err) {
		t.Errorf("IsConfigLoadError(%v) = false, want true", err)
	}
}

func TestLoadProject_BadYAML(t *testing.T) {
	fixture := testutil.NewProject(t).WithConfig("procedures: [unclosed")
	_, err := LoadProject(fixture.Dir)
	if err == nil {
		t.Fatal("LoadProject() error = nil, want error")
	}
	if !errors.IsConfigLoadError(err) {
		t.Errorf("IsConfigLoadError(%v) = false, want true", err)
	}
}

func TestDiscover(t *testing.T) {
	fixture := fixtureProject(t).
		WithProcedure("etl/load_events.py", "def main(session):\n    return 1\n").
		WithProcedure("target/sprocketship/stale.js", "leftover build output").
		WithProcedure(".hidden/skipped.js", "hidden")

	project, err := LoadProject(fixture.Dir)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}
	files, err := project.Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	var names []string
	for _, f := range files {
		rel, _ := filepath.Rel(fixture.Dir, f)
		names = append(names, filepath.ToSlash(rel))
	}
	want := []string{
		"admin/create_database.js",
		"etl/load_events.py",
		"useradmin/create_user.js",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Discover() = %v, want %v", names, want)
	}
}

func TestFilter(t *testing.T) {
	files := []string{
		"admin/create_db.js",
		"useradmin/create_user.js",
		"admin/drop_db.js",
	}

	tests := []struct {
		name         string
		only         []string
		wantSelected []string
		wantNotFound []string
	}{
		{"no filter returns all", nil, files, nil},
		{"single", []string{"create_user"}, []string{"useradmin/create_user.js"}, nil},
		{
			"multiple",
			[]string{"create_db", "drop_db"},
			[]string{"admin/create_db.js", "admin/drop_db.js"},
			nil,
		},
		{"nonexistent reported", []string{"nope"}, nil, []string{"nope"}},
		{
			"mixed",
			[]string{"create_db", "nope", "missing"},
			[]string{"admin/create_db.js"},
			[]string{"missing", "nope"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, notFound := Filter(files, tt.only)
			if !reflect.DeepEqual(selected, tt.wantSelected) {
				t.Errorf("selected = %v, want %v", selected, tt.wantSelected)
			}
			if !reflect.DeepEqual(notFound, tt.wantNotFound) {
				t.Errorf("notFound = %v, want %v", notFound, tt.wantNotFound)
			}
		})
	}
}

func TestResolveProcedure_CascadeAndLeaf(t *testing.T) {
	fixture := fixtureProject(t)
	project, err := LoadProject(fixture.Dir)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}

	resolved, body, err := project.ResolveProcedure(fixture.Path("admin", "create_database.js"))
	if err != nil {
		t.Fatalf("ResolveProcedure() error = %v", err)
	}

	if got := resolved.GetString("database"); got != "admin_db" {
		t.Errorf("database = %q, want %q (admin cascade over root cascade)", got, "admin_db")
	}
	if got := resolved.GetString("schema"); got != "default_schema" {
		t.Errorf("schema = %q, want %q", got, "default_schema")
	}
	if got := resolved.GetString("use_role"); got != "sysadmin" {
		t.Errorf("use_role = %q, want %q", got, "sysadmin")
	}
	if !strings.Contains(body, "DATABASE_NAME") {
		t.Errorf("body = %q, want the procedure source", body)
	}
}

func TestResolveProcedure_FrontmatterWins(t *testing.T) {
	fixture := fixtureProject(t).
		WithProcedure("admin/create_database.js", "/*\nexecute_as: caller\ncomment: frontmatter comment\n*/\nreturn 1;\n")

	project, err := LoadProject(fixture.Dir)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}
	resolved, body, err := project.ResolveProcedure(fixture.Path("admin", "create_database.js"))
	if err != nil {
		t.Fatalf("ResolveProcedure() error = %v", err)
	}

	if got := resolved.GetString("execute_as"); got != "caller" {
		t.Errorf("execute_as = %q, want %q", got, "caller")
	}
	if got := resolved.Source("execute_as"); got != config.SourceFrontmatter {
		t.Errorf("execute_as source = %v, want SourceFrontmatter", got)
	}
	if strings.Contains(body, "frontmatter comment") {
		t.Errorf("body still contains the frontmatter block: %q", body)
	}
}

func TestResolveProcedure_ValidationError(t *testing.T) {
	fixture := testutil.NewProject(t).
		WithConfig("procedures:\n  +database: dev\n").
		WithProcedure("broken.js", "return 1;\n")

	project, err := LoadProject(fixture.Dir)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}
	_, _, err = project.ResolveProcedure(fixture.Path("broken.js"))
	if err == nil {
		t.Fatal("ResolveProcedure() error = nil, want validation error")
	}
	if !errors.IsConfigurationError(err) {
		t.Errorf("IsConfigurationError(%v) = false, want true", err)
	}
}

func TestRender(t *testing.T) {
	fixture := fixtureProject(t)
	project, err := LoadProject(fixture.Dir)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}

	_, sql, err := project.Render(fixture.Path("admin", "create_database.js"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantLines := []string{
		`CREATE OR REPLACE PROCEDURE admin_db.default_schema.create_database("DATABASE_NAME" VARCHAR)`,
		"RETURNS varchar",
		"LANGUAGE JAVASCRIPT",
		"EXECUTE AS OWNER",
	}
	for _, line := range wantLines {
		if !strings.Contains(sql, line) {
			t.Errorf("rendered SQL missing %q:\n%s", line, sql)
		}
	}
}
