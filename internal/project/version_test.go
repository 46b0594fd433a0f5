package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
)

func bumpFixture(t *testing.T, version string) *Project {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme")
	fs.AddFile("/work/acme/VERSION.txt", []byte(version+"\n"))

	p := testFactory(fs).New("acme", "")
	require.True(t, p.Load(context.Background(), LoadOptions{}))
	return p
}

func TestParseBumpPart(t *testing.T) {
	part, err := ParseBumpPart(" Minor ")
	require.NoError(t, err)
	require.Equal(t, BumpMinor, part)

	_, err = ParseBumpPart("banana")
	require.Error(t, err)
}

func TestBumpVersion_PatchDropsPreRelease(t *testing.T) {
	p := bumpFixture(t, "1.2.3-d")

	next, err := p.BumpVersion(BumpPatch, "")
	require.NoError(t, err)
	require.Equal(t, "1.2.4", next)
	require.Equal(t, "1.2.4", p.Version)

	data, err := p.fs.ReadFile("/work/acme/VERSION.txt")
	require.NoError(t, err)
	require.Equal(t, "1.2.4\n", string(data))
}

func TestBumpVersion_MinorResetsPatch(t *testing.T) {
	p := bumpFixture(t, "1.2.3")

	next, err := p.BumpVersion(BumpMinor, "d")
	require.NoError(t, err)
	require.Equal(t, "1.3.0-d", next)
}

func TestBumpVersion_MajorResetsEverything(t *testing.T) {
	p := bumpFixture(t, "1.2.3")

	next, err := p.BumpVersion(BumpMajor, "")
	require.NoError(t, err)
	require.Equal(t, "2.0.0", next)
}

func TestBumpVersion_RejectsNonSemanticVersion(t *testing.T) {
	p := bumpFixture(t, "one-point-oh")

	_, err := p.BumpVersion(BumpPatch, "")
	require.Error(t, err)
}

func TestBumpVersion_DefaultVersionBumps(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/fresh")

	p := testFactory(fs).New("fresh", "")
	require.True(t, p.Load(context.Background(), LoadOptions{}))
	require.Equal(t, "0.1.0-d", p.Version)

	next, err := p.BumpVersion(BumpPatch, "")
	require.NoError(t, err)
	require.Equal(t, "0.1.1", next)
}
