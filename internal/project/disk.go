package project

import (
	"bytes"
	"io/fs"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/dustin/go-humanize"
)

// vcsDirs are always excluded from disk accounting; their object stores can
// dwarf the working tree and say nothing about the project itself.
var vcsDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// diskUsage sums the sizes of all files under the root, honoring the
// project's .gitignore when present, and returns a human-readable figure.
// Walk errors degrade to "TBD" rather than failing the load.
func (p *Project) diskUsage() string {
	ignore := p.loadGitIgnore()

	var total uint64
	err := p.fs.WalkDir(p.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(p.Root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if entry.IsDir() {
			if _, vcs := vcsDirs[entry.Name()]; vcs {
				return filepath.SkipDir
			}
		}

		if ignore != nil {
			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() {
			return nil
		}

		info, infoErr := p.fs.Stat(path)
		if infoErr != nil {
			return nil
		}
		total += uint64(info.Size())

		return nil
	})
	if err != nil {
		return "TBD"
	}

	return humanize.Bytes(total)
}

func (p *Project) loadGitIgnore() gitignore.GitIgnore {
	ignorePath := filepath.Join(p.Root, ".gitignore")
	if !p.fs.Exists(ignorePath) {
		return nil
	}

	data, err := p.fs.ReadFile(ignorePath)
	if err != nil {
		return nil
	}

	return gitignore.New(bytes.NewReader(data), p.Root, nil)
}
