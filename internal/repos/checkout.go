package repos

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
)

// Checkout clones the repo into a directory under path, named after the
// repo, and returns the clone's root. An existing directory of that name is
// an input error; a clone is never merged into prior contents.
func Checkout(ctx context.Context, fs filesystem.FileSystem, repo *Repo, path string) (string, error) {
	target := filepath.Join(path, repo.Name)
	if fs.Exists(target) {
		return "", fmt.Errorf("target already exists: %s", target)
	}

	_, err := gogit.PlainCloneContext(ctx, target, false, &gogit.CloneOptions{
		URL: repo.CloneURL(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to clone %s: %w", repo, err)
	}

	return target, nil
}
