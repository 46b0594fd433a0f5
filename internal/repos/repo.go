// Package repos models remote repositories and their local metadata. Each
// known repo is described by a <name>.ini sidecar under the repo meta path,
// so the toolkit remembers repos that are not currently checked out.
package repos

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/filesystem"
)

// Host identifiers for the supported providers
const (
	HostGitHub    = "github"
	HostBitbucket = "bitbucket"
)

// Repo describes one remote repository
type Repo struct {
	Name        string
	Host        string
	User        string
	Type        string
	Private     bool
	Description string
	HasIssues   bool
	HasWiki     bool

	// Project links the repo to a local project name when they differ
	Project string
}

// NewRepo creates a repo with the usual defaults: git on the given host,
// issue tracking on.
func NewRepo(name, host, user string) *Repo {
	if host == "" {
		host = HostGitHub
	}

	return &Repo{
		Name:      name,
		Host:      host,
		User:      user,
		Type:      "git",
		HasIssues: true,
	}
}

// CloneURL derives the SSH clone URL for the repo
func (r *Repo) CloneURL() string {
	switch r.Host {
	case HostBitbucket:
		return fmt.Sprintf("git@bitbucket.org:%s/%s.git", r.User, r.Name)
	default:
		return fmt.Sprintf("git@github.com:%s/%s.git", r.User, r.Name)
	}
}

func (r *Repo) String() string {
	return fmt.Sprintf("%s/%s", r.User, r.Name)
}

// Store reads and writes repo.ini sidecars under the repo meta path
type Store struct {
	fs       filesystem.FileSystem
	metaPath string
}

// NewStore creates a sidecar store
func NewStore(fs filesystem.FileSystem, metaPath string) *Store {
	return &Store{fs: fs, metaPath: metaPath}
}

// Path returns the sidecar path for a repo name
func (s *Store) Path(name string) string {
	return filepath.Join(s.metaPath, name+".ini")
}

// Load reads the sidecar for the named repo. A missing sidecar surfaces as
// an error wrapping config.ErrNotFound.
func (s *Store) Load(name string) (*Repo, error) {
	doc, err := config.Load(s.fs, s.Path(name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load repo metadata: %w", err)
	}

	section, ok := doc.Section("repo")
	if !ok {
		return nil, fmt.Errorf("repo metadata has no [repo] section: %s", s.Path(name))
	}

	return &Repo{
		Name:        section.GetDefault("name", name),
		Host:        section.GetDefault("host", HostGitHub),
		User:        section.GetDefault("user", ""),
		Type:        section.GetDefault("type", "git"),
		Private:     parseBool(section.GetDefault("private", "no")),
		Description: section.GetDefault("description", ""),
		HasIssues:   parseBool(section.GetDefault("issues", "yes")),
		HasWiki:     parseBool(section.GetDefault("wiki", "no")),
		Project:     section.GetDefault("project", ""),
	}, nil
}

// Save writes the sidecar for the repo, creating the meta path as needed
func (s *Store) Save(repo *Repo) error {
	if err := s.fs.MkdirAll(s.metaPath, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.metaPath, err)
	}

	section := config.NewSection("repo")
	section.Set("name", repo.Name)
	section.Set("host", repo.Host)
	section.Set("user", repo.User)
	section.Set("type", repo.Type)
	section.Set("private", formatBool(repo.Private))
	section.Set("issues", formatBool(repo.HasIssues))
	section.Set("wiki", formatBool(repo.HasWiki))
	if repo.Description != "" {
		section.Set("description", repo.Description)
	}
	if repo.Project != "" {
		section.Set("project", repo.Project)
	}

	doc := config.NewDocument(s.Path(repo.Name))
	doc.AddSection(section)

	if err := doc.Write(s.fs); err != nil {
		return fmt.Errorf("failed to save repo metadata: %w", err)
	}
	return nil
}

// List enumerates every repo with a sidecar, sorted by file name
func (s *Store) List() ([]*Repo, error) {
	if !s.fs.Exists(s.metaPath) {
		return nil, nil
	}

	entries, err := s.fs.ReadDir(s.metaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.metaPath, err)
	}

	var repos []*Repo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ini") {
			continue
		}

		repo, err := s.Load(strings.TrimSuffix(entry.Name(), ".ini"))
		if err != nil {
			continue
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
