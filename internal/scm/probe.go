// Package scm detects which version control system manages a project root
// and derives working-tree state from it.
package scm

import (
	"context"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/shell"
)

// Type identifies a version control system
type Type string

const (
	TypeGit  Type = "git"
	TypeHg   Type = "hg"
	TypeSvn  Type = "svn"
	TypeNone Type = "none"
)

// BranchUnknown is reported when a branch name cannot be determined, e.g.
// a detached git HEAD.
const BranchUnknown = "unknown"

// State is the result of a single probe. Type, Dirty, and Branch are always
// consistent with each other as of one Probe call; they are never updated
// piecemeal.
type State struct {
	Type Type

	// Dirty is nil when the working tree state could not be determined
	Dirty *bool

	// Branch is empty when the VCS does not expose one (svn, none)
	Branch string
}

// Recognized reports whether a VCS was detected at all
func (s State) Recognized() bool {
	return s.Type != TypeNone
}

// IsDirty reports a definite dirty working tree; an unknown state counts
// as clean here.
func (s State) IsDirty() bool {
	return s.Dirty != nil && *s.Dirty
}

// Probe inspects project roots for VCS state. git is read through an
// in-process repository binding; hg and svn fall back to their command-line
// clients.
type Probe struct {
	fs     filesystem.FileSystem
	runner shell.Runner
}

// NewProbe creates a probe
func NewProbe(fs filesystem.FileSystem, runner shell.Runner) *Probe {
	return &Probe{fs: fs, runner: runner}
}

// Probe determines the VCS type and working-tree state for root.
//
// Detection follows a fixed priority: .git, then .hg, then .svn; the first
// match wins even when several control directories coexist. Errors while
// reading state (not while detecting the type) degrade to Dirty == nil
// rather than failing the caller.
func (p *Probe) Probe(ctx context.Context, root string) State {
	switch {
	case p.fs.Exists(filepath.Join(root, ".git")):
		return p.probeGit(root)
	case p.fs.Exists(filepath.Join(root, ".hg")):
		return p.probeHg(ctx, root)
	case p.fs.Exists(filepath.Join(root, ".svn")):
		return p.probeSvn(ctx, root)
	default:
		return State{Type: TypeNone}
	}
}

func (p *Probe) probeGit(root string) State {
	state := State{Type: TypeGit, Branch: BranchUnknown}

	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return state
	}

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		state.Branch = head.Name().Short()
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return state
	}

	status, err := worktree.Status()
	if err != nil {
		return state
	}

	dirty := !status.IsClean()
	state.Dirty = &dirty
	return state
}

func (p *Probe) probeHg(ctx context.Context, root string) State {
	state := State{Type: TypeHg}

	// Quiet status prints one line per modified/added/removed file, so a
	// clean tree yields empty output.
	if output, err := p.runner.Run(ctx, root, "hg", "status", "-q"); err == nil {
		dirty := strings.TrimSpace(output) != ""
		state.Dirty = &dirty
	}

	if output, err := p.runner.Run(ctx, root, "hg", "branch"); err == nil {
		state.Branch = strings.TrimSpace(output)
	}

	return state
}

func (p *Probe) probeSvn(ctx context.Context, root string) State {
	state := State{Type: TypeSvn}

	if output, err := p.runner.Run(ctx, root, "svn", "status"); err == nil {
		dirty := strings.TrimSpace(output) != ""
		state.Dirty = &dirty
	}

	// Branch detection is not reliably derivable from a working copy.
	return state
}
