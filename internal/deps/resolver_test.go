package deps

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
)

const manifest = `[django]
env = base
version = >=1.10
`

func TestResolve_PrefersDeployManifest(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/deploy/requirements/packages.ini", []byte(manifest))
	fs.AddFile("/work/acme/requirements/packages.ini", []byte("[other]\n"))
	fs.AddFile("/work/acme/requirements.ini", []byte("[another]\n"))

	resolution, err := NewResolver(fs).Resolve("/work/acme")
	require.NoError(t, err)
	require.Equal(t, ModeStructured, resolution.Mode)
	require.Equal(t, "/work/acme/deploy/requirements/packages.ini", resolution.ManifestPath)
	require.Len(t, resolution.Packages, 1)
	require.Equal(t, "django", resolution.Packages[0].Name)
}

func TestResolve_FallsThroughManifestLocations(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/requirements.ini", []byte(manifest))

	resolution, err := NewResolver(fs).Resolve("/work/acme")
	require.NoError(t, err)
	require.Equal(t, ModeStructured, resolution.Mode)
	require.Equal(t, "/work/acme/requirements.ini", resolution.ManifestPath)
}

func TestResolve_RawFallbackSkipsCommentsAndBlanks(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/requirements.pip", []byte("# comment\n\ndjango>=1.10\nrequests\n"))

	resolution, err := NewResolver(fs).Resolve("/work/acme")
	require.NoError(t, err)
	require.Equal(t, ModeRaw, resolution.Mode)
	require.Equal(t, []string{"django>=1.10", "requests"}, resolution.Raw)
}

func TestResolve_StructuredManifestWinsOverRaw(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/requirements.ini", []byte(manifest))
	fs.AddFile("/work/acme/requirements.pip", []byte("django\n"))

	resolution, err := NewResolver(fs).Resolve("/work/acme")
	require.NoError(t, err)
	require.Equal(t, ModeStructured, resolution.Mode)
}

func TestResolve_NothingFound(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/acme")

	resolution, err := NewResolver(fs).Resolve("/work/acme")
	require.NoError(t, err)
	require.Equal(t, ModeNone, resolution.Mode)
	require.Empty(t, resolution.Packages)
	require.Empty(t, resolution.Raw)
}

func TestResolve_MalformedManifestPropagates(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/requirements.ini", []byte("[broken\n"))

	_, err := NewResolver(fs).Resolve("/work/acme")
	require.Error(t, err)
}
