// Package deps locates and parses a project's dependency manifest,
// independent of which packaging ecosystem it targets.
package deps

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/models"
	"github.com/develmaycare/pyprojectutils/internal/packaging"
)

// manifestLocations are checked in fixed order relative to the project
// root; the first one found wins and no merging occurs across files.
var manifestLocations = []string{
	filepath.Join("deploy", "requirements", "packages.ini"),
	filepath.Join("requirements", "packages.ini"),
	"requirements.ini",
}

// rawRequirementsFile is the flat fallback when no structured manifest exists
const rawRequirementsFile = "requirements.pip"

// Mode distinguishes how dependencies were resolved
type Mode int

const (
	// ModeNone means no manifest of any kind was found
	ModeNone Mode = iota

	// ModeStructured means a packages.ini-style manifest was parsed
	ModeStructured

	// ModeRaw means a flat requirements file was read line by line
	ModeRaw
)

// Resolution is the outcome of resolving a project's dependencies. Callers
// must handle both the structured and the raw mode.
type Resolution struct {
	Mode         Mode
	ManifestPath string

	// Packages is populated in structured mode
	Packages packaging.List

	// Raw is populated in raw mode with unstructured dependency strings
	Raw []string
}

// Filter narrows structured packages by environment and/or manager. Raw
// resolutions pass through unchanged.
func (r *Resolution) Filter(env models.Environment, manager packaging.Manager) *Resolution {
	if r.Mode != ModeStructured {
		return r
	}

	return &Resolution{
		Mode:         r.Mode,
		ManifestPath: r.ManifestPath,
		Packages:     r.Packages.Filter(env, manager),
	}
}

// Resolver finds and parses dependency manifests
type Resolver struct {
	fs filesystem.FileSystem
}

// NewResolver creates a resolver
func NewResolver(fs filesystem.FileSystem) *Resolver {
	return &Resolver{fs: fs}
}

// Resolve finds the project's dependency manifest under root and parses it.
// A missing manifest is not an error: the resolution simply reports ModeNone
// (or ModeRaw when only a flat requirements file exists). A malformed
// structured manifest is returned as an error for the caller to downgrade.
func (r *Resolver) Resolve(root string) (*Resolution, error) {
	for _, location := range manifestLocations {
		path := filepath.Join(root, location)
		if !r.fs.Exists(path) {
			continue
		}

		doc, err := config.Load(r.fs, path, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load dependency manifest: %w", err)
		}

		return &Resolution{
			Mode:         ModeStructured,
			ManifestPath: path,
			Packages:     packaging.FromDocument(doc),
		}, nil
	}

	rawPath := filepath.Join(root, rawRequirementsFile)
	if r.fs.Exists(rawPath) {
		data, err := r.fs.ReadFile(rawPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", rawPath, err)
		}

		resolution := &Resolution{Mode: ModeRaw, ManifestPath: rawPath}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			resolution.Raw = append(resolution.Raw, line)
		}
		return resolution, nil
	}

	return &Resolution{Mode: ModeNone}, nil
}
