package deploy

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sprocketship/sprocketship/config"
	"github.com/sprocketship/sprocketship/frontmatter"
	"github.com/sprocketship/sprocketship/render"
)

// ConfigFileName is the project configuration file looked up under the
// project directory.
const ConfigFileName = ".sprocketship.yml"

// DefaultTarget is the build output directory, relative to the project.
const DefaultTarget = "target/sprocketship"

// Project is a directory holding procedure sources and their configuration.
type Project struct {
	Dir  string
	Tree config.Tree

	resolver *config.Resolver
	loader   *render.Loader
}

// LoadProject loads the configuration tree for a project directory.
func LoadProject(dir string) (*Project, error) {
	tree, err := config.Load(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	return &Project{
		Dir:      dir,
		Tree:     tree,
		resolver: config.NewResolver(tree, dir),
		loader:   render.NewLoader(dir),
	}, nil
}

// Discover walks the project for procedure source files (.js, .py).
// Dot-directories and the build target directory are skipped. Paths come
// back sorted for deterministic run order.
func (p *Project) Discover() ([]string, error) {
	targetRoot := filepath.Join(p.Dir, "target")

	var files []string
	err := filepath.WalkDir(p.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == p.Dir {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || path == targetRoot {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(path) {
		case ".js", ".py":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Filter selects files whose filename stem matches one of the given names.
// An empty name list selects everything. Names that match no file come back
// in notFound, sorted; the caller decides whether that is worth a warning.
func Filter(files []string, only []string) (selected []string, notFound []string) {
	if len(only) == 0 {
		return files, nil
	}

	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}

	for _, file := range files {
		stem := config.Stem(file)
		if wanted[stem] {
			selected = append(selected, file)
			delete(wanted, stem)
		}
	}

	for name := range wanted {
		notFound = append(notFound, name)
	}
	sort.Strings(notFound)
	return selected, notFound
}

// ResolveProcedure produces the fully merged, validated configuration and
// the procedure body for one source file. Frontmatter metadata is merged
// over the tree-resolved fields before validation.
func (p *Project) ResolveProcedure(path string) (*config.Resolved, string, error) {
	resolved, err := p.resolver.Resolve(path)
	if err != nil {
		return nil, "", err
	}

	fm, err := frontmatter.ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	resolved.MergeOverrides(config.SourceFrontmatter, fm.Metadata)

	if err := config.Validate(resolved, filepath.Base(path)); err != nil {
		return nil, "", err
	}
	return resolved, fm.Body, nil
}

// Render produces the CREATE OR REPLACE PROCEDURE statement for a source
// file, resolving and validating its configuration first.
func (p *Project) Render(path string) (*config.Resolved, string, error) {
	resolved, body, err := p.ResolveProcedure(path)
	if err != nil {
		return nil, "", err
	}
	sql, err := p.loader.Procedure(resolved, body)
	if err != nil {
		return nil, "", err
	}
	return resolved, sql, nil
}
