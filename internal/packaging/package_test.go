package packaging

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/models"
)

const sampleManifest = `[django]
env = base
manager = pip
title = Django
version = >=1.10
home = http://djangoproject.com

[postgresql]
env = live staging
manager = apt
title = PostgreSQL

[sass]
env = development
manager = gem
version = 3.4.0
`

func loadManifest(t *testing.T) List {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/requirements.ini", []byte(sampleManifest))

	doc, err := config.Load(fs, "/work/acme/requirements.ini", nil)
	require.NoError(t, err)

	return FromDocument(doc)
}

func TestParseManager_DefaultsToPip(t *testing.T) {
	require.Equal(t, ManagerPip, ParseManager(""))
	require.Equal(t, ManagerPip, ParseManager("something-else"))
	require.Equal(t, ManagerApt, ParseManager(" APT "))
}

func TestLookupManager_RejectsUnknownValues(t *testing.T) {
	manager, ok := LookupManager(" Brew ")
	require.True(t, ok)
	require.Equal(t, ManagerBrew, manager)

	_, ok = LookupManager("xyz")
	require.False(t, ok)

	_, ok = LookupManager("")
	require.False(t, ok)
}

func TestNewPackageFromSection_DefaultsToBaseEnvironment(t *testing.T) {
	section := config.NewSection("requests")
	p := NewPackageFromSection(section)

	require.Equal(t, "requests", p.Name)
	require.Equal(t, "requests", p.Title)
	require.Equal(t, ManagerPip, p.Manager)
	require.Equal(t, []models.Environment{models.BaseEnvironment}, p.Envs)
}

func TestNewPackageFromSection_SplitsEnvironments(t *testing.T) {
	packages := loadManifest(t)
	require.Len(t, packages, 3)

	postgresql := packages[1]
	require.Equal(t, "postgresql", postgresql.Name)
	require.True(t, postgresql.InEnv(models.LiveEnvironment))
	require.True(t, postgresql.InEnv(models.StagingEnvironment))
	require.False(t, postgresql.InEnv(models.BaseEnvironment))
}

func TestPackage_Command_PerManager(t *testing.T) {
	tests := []struct {
		name    string
		pkg     *Package
		command string
	}{
		{
			name:    "pip with version",
			pkg:     &Package{Name: "django", Manager: ManagerPip, Version: ">=1.10"},
			command: "pip install django>=1.10",
		},
		{
			name:    "apt",
			pkg:     &Package{Name: "postgresql", Manager: ManagerApt},
			command: "apt-get install -y postgresql",
		},
		{
			name:    "brew with version",
			pkg:     &Package{Name: "wget", Manager: ManagerBrew, Version: "1.19"},
			command: "brew install wget 1.19",
		},
		{
			name:    "gem with version",
			pkg:     &Package{Name: "sass", Manager: ManagerGem, Version: "3.4.0"},
			command: "gem install --version 3.4.0 sass",
		},
		{
			name:    "npm with version",
			pkg:     &Package{Name: "gulp", Manager: ManagerNpm, Version: "4.0.0"},
			command: "npm install gulp@4.0.0",
		},
		{
			name:    "explicit cmd wins",
			pkg:     &Package{Name: "weird", Manager: ManagerPip, Cmd: "make install"},
			command: "make install",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, err := tt.pkg.Command()
			require.NoError(t, err)
			require.Equal(t, tt.command, command)
		})
	}
}

func TestPackage_Plain_EditableInstallNeedsSCM(t *testing.T) {
	p := &Package{Name: "mylib", Manager: ManagerPip, Egg: "mylib"}

	_, err := p.Plain()
	require.Error(t, err)
	require.Contains(t, err.Error(), "scm is required")
}

func TestPackage_Plain_EditableInstallFromGitHub(t *testing.T) {
	p := &Package{
		Name:    "mylib",
		Manager: ManagerPip,
		Egg:     "mylib",
		SCM:     "http://github.com/example/mylib",
		Branch:  "develop",
	}

	plain, err := p.Plain()
	require.NoError(t, err)
	require.Equal(t, "-e git+http://github.com/example/mylib.git@develop#egg=mylib", plain)
}

func TestPackage_Plain_EditableInstallFromBitbucket(t *testing.T) {
	p := &Package{
		Name:    "mylib",
		Manager: ManagerPip,
		Egg:     "mylib",
		SCM:     "http://bitbucket.org/example/mylib",
	}

	plain, err := p.Plain()
	require.NoError(t, err)
	require.Equal(t, "-e git+http://bitbucket.org/example/mylib/get/master.zip#egg=mylib", plain)
}

func TestList_Filter_CombinesEnvAndManager(t *testing.T) {
	packages := loadManifest(t)

	require.Len(t, packages.Filter(models.LiveEnvironment, ""), 1)
	require.Len(t, packages.Filter("", ManagerGem), 1)
	require.Empty(t, packages.Filter(models.LiveEnvironment, ManagerGem))
	require.Len(t, packages.Filter("", ""), 3)
}
