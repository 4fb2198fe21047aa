package registry

import (
	"context"
	"strings"

	"github.com/jmgilman/go/fs/core"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/matcher"
	"github.com/jmgilman/dappreg/schema"
)

const (
	metadataFile   = "metadata.json"
	errorsFile     = "errors.json"
	interfacesFile = "errors-interfaces.json"
	defaultFile    = "errors-default.json"
)

// assetExtensions lists the accepted asset extensions in lookup order.
var assetExtensions = []string{"png", "jpg", "jpeg", "svg", "webp"}

// Load reads a project repository rooted at fsys and builds a Registry.
//
// Project folders are read concurrently, up to Options.Concurrency at a time.
//
// Returns CodeLoadFailed if a document cannot be read or a project folder
// does not match its metadata id, CodeMissingAsset if a project lacks its
// icon or cover, and the schema and matcher errors of the documents.
func Load(ctx context.Context, fsys core.ReadFS, opts ...Option) (*Registry, error) {
	o := buildOptions(opts)

	if o.Validator == nil {
		v, err := schema.New()
		if err != nil {
			return nil, err
		}
		o.Validator = v
	}

	l := &loader{fs: fsys, opts: o}

	entries, err := fsys.ReadDir(".")
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeLoadFailed, "failed to read repository root")
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			dirs = append(dirs, entry.Name())
		}
	}

	// Results are stored by index so projects keep directory order.
	type result struct {
		project Project
		tables  map[string]matcher.Table
	}
	results := make([]result, len(dirs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	for i, dir := range dirs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return errors.Wrap(err, errors.CodeLoadFailed, "context cancelled")
			}

			p, projectTables, err := l.loadProject(egCtx, dir)
			if err != nil {
				return err
			}
			results[i] = result{project: p, tables: projectTables}

			o.Logger.Debug("loaded project",
				"project", p.ID(),
				"contracts", len(p.Metadata.Contracts),
				"tables", len(projectTables),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(results))
	tables := Tables{Projects: make(map[string]map[string]matcher.Table)}
	for _, r := range results {
		projects = append(projects, r.project)
		if r.tables != nil {
			tables.Projects[r.project.ID()] = r.tables
		}
	}

	if ok, err := l.exists(interfacesFile); err != nil {
		return nil, err
	} else if ok {
		if err := l.decode(ctx, schema.KindScopedErrors, interfacesFile, &tables.Interfaces); err != nil {
			return nil, err
		}
	}

	if ok, err := l.exists(defaultFile); err != nil {
		return nil, err
	} else if ok {
		if err := l.decode(ctx, schema.KindErrorMatchersMap, defaultFile, &tables.Default); err != nil {
			return nil, err
		}
	}

	reg, err := New(projects, tables, opts...)
	if err != nil {
		return nil, err
	}

	o.Logger.Info("loaded repository",
		"projects", len(projects),
		"interfaces", len(tables.Interfaces),
		"default_table", tables.Default != nil,
	)

	return reg, nil
}

type loader struct {
	fs   core.ReadFS
	opts *Options
}

func (l *loader) loadProject(ctx context.Context, dir string) (Project, map[string]matcher.Table, error) {
	var md Metadata
	if err := l.decode(ctx, schema.KindMetadata, dir+"/"+metadataFile, &md); err != nil {
		return Project{}, nil, err
	}

	if md.ID != dir {
		return Project{}, nil, errors.WithContextMap(
			errors.New(errors.CodeLoadFailed, "project folder does not match metadata id"),
			map[string]interface{}{"folder": dir, "id": md.ID},
		)
	}

	icon, err := l.findAsset(dir, "icon")
	if err != nil {
		return Project{}, nil, err
	}
	cover, err := l.findAsset(dir, "cover")
	if err != nil {
		return Project{}, nil, err
	}

	var tables map[string]matcher.Table
	errorsPath := dir + "/" + errorsFile
	if ok, err := l.exists(errorsPath); err != nil {
		return Project{}, nil, err
	} else if ok {
		if err := l.decode(ctx, schema.KindScopedErrors, errorsPath, &tables); err != nil {
			return Project{}, nil, err
		}
	}

	return Project{
		Icon:     l.assetURL(icon),
		Cover:    l.assetURL(cover),
		Metadata: md,
	}, tables, nil
}

func (l *loader) decode(ctx context.Context, kind schema.Kind, path string, target interface{}) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeLoadFailed, "failed to read document",
			map[string]interface{}{"path": path})
	}
	return l.opts.Validator.Decode(ctx, kind, path, data, target)
}

func (l *loader) exists(path string) (bool, error) {
	ok, err := l.fs.Exists(path)
	if err != nil {
		return false, errors.WrapWithContext(err, errors.CodeLoadFailed, "failed to check file",
			map[string]interface{}{"path": path})
	}
	return ok, nil
}

// findAsset returns the repository path of the first existing asset named
// base in dir.
func (l *loader) findAsset(dir, base string) (string, error) {
	for _, ext := range assetExtensions {
		path := dir + "/" + base + "." + ext
		ok, err := l.exists(path)
		if err != nil {
			return "", err
		}
		if ok {
			return path, nil
		}
	}

	return "", errors.WithContextMap(
		errors.Newf(errors.CodeMissingAsset, "missing %s file for project %s", base, dir),
		map[string]interface{}{"project": dir, "asset": base},
	)
}

func (l *loader) assetURL(path string) string {
	if l.opts.AssetBaseURL == "" {
		return path
	}
	return strings.TrimSuffix(l.opts.AssetBaseURL, "/") + "/" + path
}
