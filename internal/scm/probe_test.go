package scm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/shell"
)

func TestProbe_NoControlDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/plain")

	probe := NewProbe(fs, shell.NewMockRunner())
	state := probe.Probe(context.Background(), "/work/plain")

	require.Equal(t, TypeNone, state.Type)
	require.False(t, state.Recognized())
	require.Nil(t, state.Dirty)
}

func TestProbe_GitDetectionDegradesWhenUnreadable(t *testing.T) {
	// The control directory exists only in the mock, so the repository
	// binding cannot open it; type detection must still hold and the
	// unknown state must stay unknown rather than turning into clean.
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme/.git")

	probe := NewProbe(fs, shell.NewMockRunner())
	state := probe.Probe(context.Background(), "/work/acme")

	require.Equal(t, TypeGit, state.Type)
	require.Equal(t, BranchUnknown, state.Branch)
	require.Nil(t, state.Dirty)
	require.False(t, state.IsDirty())
}

func TestProbe_PriorityPrefersGit(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme/.git")
	fs.AddDir("/work/acme/.hg")

	probe := NewProbe(fs, shell.NewMockRunner())
	state := probe.Probe(context.Background(), "/work/acme")

	require.Equal(t, TypeGit, state.Type)
}

func TestProbe_HgDirtyAndBranch(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme/.hg")

	runner := shell.NewMockRunner()
	runner.Script("hg status -q", shell.MockResponse{Output: "M projects.py\n"})
	runner.Script("hg branch", shell.MockResponse{Output: "default\n"})

	probe := NewProbe(fs, runner)
	state := probe.Probe(context.Background(), "/work/acme")

	require.Equal(t, TypeHg, state.Type)
	require.NotNil(t, state.Dirty)
	require.True(t, *state.Dirty)
	require.Equal(t, "default", state.Branch)
}

func TestProbe_HgClean(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme/.hg")

	runner := shell.NewMockRunner()
	runner.Script("hg status -q", shell.MockResponse{Output: ""})
	runner.Script("hg branch", shell.MockResponse{Output: "default\n"})

	probe := NewProbe(fs, runner)
	state := probe.Probe(context.Background(), "/work/acme")

	require.NotNil(t, state.Dirty)
	require.False(t, *state.Dirty)
}

func TestProbe_HgMissingClientLeavesDirtyUnknown(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme/.hg")

	runner := shell.NewMockRunner()
	runner.Script("hg status -q", shell.MockResponse{NotFound: true})
	runner.Script("hg branch", shell.MockResponse{NotFound: true})

	probe := NewProbe(fs, runner)
	state := probe.Probe(context.Background(), "/work/acme")

	require.Equal(t, TypeHg, state.Type)
	require.Nil(t, state.Dirty)
	require.Equal(t, "", state.Branch)
}

func TestProbe_SvnHasNoBranch(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme/.svn")

	runner := shell.NewMockRunner()
	runner.Script("svn status", shell.MockResponse{Output: "M       projects.py\n"})

	probe := NewProbe(fs, runner)
	state := probe.Probe(context.Background(), "/work/acme")

	require.Equal(t, TypeSvn, state.Type)
	require.NotNil(t, state.Dirty)
	require.True(t, *state.Dirty)
	require.Equal(t, "", state.Branch)
}
