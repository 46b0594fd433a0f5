package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/develmaycare/pyprojectutils/internal/models"
	"github.com/develmaycare/pyprojectutils/internal/project"
)

// Archive moves the named project into the archive root and returns its new
// path. The project is found with the same forgiving lookup Autoload uses.
// A dirty working tree blocks archival unless force is set, since archived
// projects tend to never be looked at again.
func (r *Repository) Archive(ctx context.Context, name string, force bool) (string, error) {
	p := r.Autoload(ctx, name, "", project.LoadOptions{})
	if p.Exists() && p.SCM.IsDirty() && !force {
		return "", fmt.Errorf("project has uncommitted changes, use force to archive anyway: %s", p.Name)
	}

	return r.move(ctx, name, r.settings.ProjectArchive, models.LocationArchive)
}

// Hold moves the named project into the hold root and returns its new path
func (r *Repository) Hold(ctx context.Context, name string) (string, error) {
	return r.move(ctx, name, r.settings.ProjectsOnHold, models.LocationHold)
}

// Enable moves the named project back into the active home and returns its
// new path.
func (r *Repository) Enable(ctx context.Context, name string) (string, error) {
	return r.move(ctx, name, r.settings.ProjectHome, models.LocationActive)
}

func (r *Repository) move(ctx context.Context, name, targetRoot string, target models.Location) (string, error) {
	p := r.Autoload(ctx, name, "", project.LoadOptions{})
	if !p.Exists() {
		return "", fmt.Errorf("project does not exist: %s", name)
	}

	if p.Location == target {
		return "", fmt.Errorf("project is already %s: %s", target, p.Name)
	}

	if err := r.fs.MkdirAll(targetRoot, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", targetRoot, err)
	}

	newRoot := filepath.Join(targetRoot, p.Name)
	if r.fs.Exists(newRoot) {
		return "", fmt.Errorf("target already exists: %s", newRoot)
	}

	if err := r.fs.Rename(p.Root, newRoot); err != nil {
		return "", fmt.Errorf("failed to move %s: %w", p.Name, err)
	}

	return newRoot, nil
}
