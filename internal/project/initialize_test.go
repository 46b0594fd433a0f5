package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/models"
)

func TestInitialize_ScaffoldsNewProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	p := testFactory(fs).New("acme-widgets", "")
	p.Title = "Acme Widgets"
	p.Description = "A widget management system."
	p.License = "mit"

	require.NoError(t, p.Initialize(InitializeOptions{}))

	require.True(t, fs.Exists("/work/acme-widgets/project.ini"))
	require.True(t, fs.Exists("/work/acme-widgets/README.markdown"))
	require.True(t, fs.Exists("/work/acme-widgets/.gitignore"))
	require.True(t, fs.Exists("/work/acme-widgets/DESCRIPTION.txt"))
	require.True(t, fs.Exists("/work/acme-widgets/LICENSE.txt"))
	require.True(t, fs.Exists("/work/acme-widgets/requirements.pip"))
	require.True(t, fs.Exists("/work/acme-widgets/VERSION.txt"))

	version, err := fs.ReadFile("/work/acme-widgets/VERSION.txt")
	require.NoError(t, err)
	require.Equal(t, models.DefaultVersion+"\n", string(version))

	readme, err := fs.ReadFile("/work/acme-widgets/README.markdown")
	require.NoError(t, err)
	require.Contains(t, string(readme), "# Acme Widgets")

	// The scaffolded config loads back
	loaded := testFactory(fs).New("acme-widgets", "")
	require.True(t, loaded.Load(context.Background(), LoadOptions{}))
	require.Equal(t, "Acme Widgets", loaded.Title)
	require.Equal(t, models.StagePlanning, loaded.Stage)
}

func TestInitialize_IsIdempotent(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/README.markdown", []byte("hand-written readme\n"))
	fs.AddFile("/work/acme/VERSION.txt", []byte("2.0.0\n"))

	p := testFactory(fs).New("acme", "")
	p.Title = "Acme"

	require.NoError(t, p.Initialize(InitializeOptions{}))
	require.NoError(t, p.Initialize(InitializeOptions{}))

	readme, err := fs.ReadFile("/work/acme/README.markdown")
	require.NoError(t, err)
	require.Equal(t, "hand-written readme\n", string(readme))

	version, err := fs.ReadFile("/work/acme/VERSION.txt")
	require.NoError(t, err)
	require.Equal(t, "2.0.0\n", string(version))
}

func TestInitialize_SkipsOptionalFilesWithoutInput(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	p := testFactory(fs).New("bare", "")
	require.NoError(t, p.Initialize(InitializeOptions{}))

	require.False(t, fs.Exists("/work/bare/DESCRIPTION.txt"))
	require.False(t, fs.Exists("/work/bare/LICENSE.txt"))
	require.True(t, fs.Exists("/work/bare/project.ini"))
}

func TestInitialize_PrivateLicenseReservesAllRights(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	p := testFactory(fs).New("internal-tool", "")
	p.License = "private"

	require.NoError(t, p.Initialize(InitializeOptions{}))

	license, err := fs.ReadFile("/work/internal-tool/LICENSE.txt")
	require.NoError(t, err)
	require.Contains(t, string(license), "All rights reserved")
}
