// Package repository finds and enumerates projects across the storage roots:
// the active home, the hold area, and the archive.
package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/project"
	"github.com/develmaycare/pyprojectutils/internal/settings"
	"github.com/develmaycare/pyprojectutils/internal/shell"
)

// ErrUnknownAttribute is returned when a query names an attribute that
// projects do not have.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Repository looks up and lists projects
type Repository struct {
	fs       filesystem.FileSystem
	factory  *project.Factory
	settings *settings.Settings
}

// New creates a repository
func New(fs filesystem.FileSystem, runner shell.Runner, s *settings.Settings) *Repository {
	return &Repository{
		fs:       fs,
		factory:  project.NewFactory(fs, runner, s),
		settings: s,
	}
}

// ListOptions controls project enumeration
type ListOptions struct {
	// ShowAll includes directories without a project.ini
	ShowAll bool

	// Criteria filters the result. All entries must match (AND). The
	// name, description, and title attributes match on case-insensitive
	// substrings; tag matches set membership; everything else matches
	// exactly.
	Criteria map[string]string

	Load project.LoadOptions
}

// Autoload finds a project by name, forgiving the usual differences between
// a spoken name and a directory name. It tries the name itself plus its
// lowercase, dot-to-underscore, and space-to-dash/underscore variants, in
// the given path (or the active home) first, then the hold area, then the
// archive. When nothing matches, an unloaded project for the original name
// is returned so the caller gets a uniform error path.
func (r *Repository) Autoload(ctx context.Context, name, path string, opts project.LoadOptions) *project.Project {
	if path == "" {
		path = r.settings.ProjectHome
	}

	roots := []string{path, r.settings.ProjectsOnHold, r.settings.ProjectArchive}

	for _, root := range roots {
		for _, candidate := range nameCandidates(name) {
			if !r.fs.Exists(filepath.Join(root, candidate)) {
				continue
			}

			p := r.factory.New(candidate, root)
			p.Load(ctx, opts)
			return p
		}
	}

	return r.factory.New(name, path)
}

// nameCandidates returns the directory names a project might live under,
// most literal first.
func nameCandidates(name string) []string {
	lower := strings.ToLower(name)

	candidates := []string{
		name,
		lower,
		strings.ReplaceAll(lower, ".", "_"),
		strings.ReplaceAll(lower, " ", "-"),
		strings.ReplaceAll(lower, " ", "_"),
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0]
	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		unique = append(unique, candidate)
	}

	return unique
}

// List enumerates the projects directly under path. Dotted directories and
// plain files are skipped; directories without a config are skipped unless
// ShowAll is set. A project that fails to load is still listed, carrying
// its error, so one broken directory never hides the rest.
func (r *Repository) List(ctx context.Context, path string, opts ListOptions) ([]*project.Project, error) {
	if path == "" {
		path = r.settings.ProjectHome
	}

	entries, err := r.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var projects []*project.Project
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		p := r.factory.New(entry.Name(), path)
		if !p.ConfigExists && !opts.ShowAll {
			continue
		}

		p.Load(ctx, opts.Load)

		matched, err := matchesCriteria(p, opts.Criteria)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects, nil
}

// DistinctAttributeValues lists every value the attribute takes across the
// projects under path, with the number of projects carrying each value.
func (r *Repository) DistinctAttributeValues(ctx context.Context, path, attribute string, opts ListOptions) ([]ValueCount, error) {
	// Validate up front so an unknown attribute fails before the walk
	if attribute != "tag" {
		probe := r.factory.New("probe", path)
		if _, err := attributeValue(probe, attribute); err != nil {
			return nil, err
		}
	}

	projects, err := r.List(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range projects {
		if attribute == "tag" {
			for _, tag := range p.Tags {
				counts[tag]++
			}
			continue
		}

		value, err := attributeValue(p, attribute)
		if err != nil {
			return nil, err
		}
		if value != "" {
			counts[value]++
		}
	}

	values := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		values = append(values, ValueCount{Value: value, Count: count})
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].Value < values[j].Value
	})

	return values, nil
}

// ValueCount pairs a distinct attribute value with its project count
type ValueCount struct {
	Value string
	Count int
}

func matchesCriteria(p *project.Project, criteria map[string]string) (bool, error) {
	for attribute, want := range criteria {
		switch attribute {
		case "tag":
			if !p.Tags.Contains(want) {
				return false, nil
			}
		case "name", "title", "description":
			value, err := attributeValue(p, attribute)
			if err != nil {
				return false, err
			}
			if !strings.Contains(strings.ToLower(value), strings.ToLower(want)) {
				return false, nil
			}
		default:
			value, err := attributeValue(p, attribute)
			if err != nil {
				return false, err
			}
			if value != want {
				return false, nil
			}
		}
	}

	return true, nil
}

func attributeValue(p *project.Project, attribute string) (string, error) {
	switch attribute {
	case "name":
		return p.Name, nil
	case "title":
		return p.Title, nil
	case "description":
		return p.Description, nil
	case "category":
		return p.Category, nil
	case "type":
		return p.Type, nil
	case "stage", "status":
		return string(p.Stage), nil
	case "location":
		return string(p.Location), nil
	case "org":
		return p.Org(), nil
	case "license":
		return p.License, nil
	case "version":
		return p.Version, nil
	case "scm":
		return string(p.SCM.Type), nil
	case "branch":
		return p.SCM.Branch, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, attribute)
	}
}
