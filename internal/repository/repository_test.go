package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/project"
	"github.com/develmaycare/pyprojectutils/internal/settings"
	"github.com/develmaycare/pyprojectutils/internal/shell"
)

func testSettings() *settings.Settings {
	return &settings.Settings{
		ProjectHome:    "/work",
		ProjectArchive: "/work/.archive",
		ProjectsOnHold: "/work/.hold",
		RepoMetaPath:   "/work/.repos",
		DeveloperCode:  "UNK",
		DeveloperName:  "Unidentified",
		DefaultSCM:     "github",
	}
}

func testRepository(fs filesystem.FileSystem) *Repository {
	return New(fs, shell.NewMockRunner(), testSettings())
}

func addProject(fs *filesystem.MockFileSystem, root, config string) {
	fs.AddFile(root+"/project.ini", []byte(config))
}

func TestAutoload_NormalizesNameAliases(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/acme_widgets", "[project]\ntitle = Acme Widgets\n")

	repo := testRepository(fs)

	// "Acme.Widgets" lowercases to acme.widgets, then dots become
	// underscores, which is the directory on disk.
	p := repo.Autoload(context.Background(), "Acme.Widgets", "", project.LoadOptions{})
	require.True(t, p.IsLoaded())
	require.Equal(t, "acme_widgets", p.Name)
	require.Equal(t, "Acme Widgets", p.Title)
}

func TestAutoload_SpacesBecomeDashesBeforeUnderscores(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/acme-widgets", "[project]\ntitle = Dashed\n")
	addProject(fs, "/work/acme_widgets", "[project]\ntitle = Underscored\n")

	p := testRepository(fs).Autoload(context.Background(), "Acme Widgets", "", project.LoadOptions{})
	require.Equal(t, "acme-widgets", p.Name)
}

func TestAutoload_FallsBackToHoldAndArchive(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/.archive/relic", "[project]\ntitle = Relic\n")

	p := testRepository(fs).Autoload(context.Background(), "Relic", "", project.LoadOptions{})
	require.True(t, p.IsLoaded())
	require.Equal(t, "/work/.archive/relic", p.Root)
}

func TestAutoload_MissReturnsUnloadedProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work")

	p := testRepository(fs).Autoload(context.Background(), "Ghost", "", project.LoadOptions{})
	require.False(t, p.IsLoaded())
	require.False(t, p.Exists())
	require.Equal(t, "Ghost", p.Name)
}

func TestList_SkipsDottedAndConfigless(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/alpha", "[project]\ntitle = Alpha\n")
	fs.AddDir("/work/no-config")
	fs.AddDir("/work/.hidden")
	fs.AddFile("/work/stray.txt", []byte("not a project"))

	repo := testRepository(fs)

	projects, err := repo.List(context.Background(), "", ListOptions{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "alpha", projects[0].Name)

	all, err := repo.List(context.Background(), "", ListOptions{ShowAll: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestList_BrokenProjectIsStillListed(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/good", "[project]\ntitle = Good\n")
	addProject(fs, "/work/bad", "[unclosed\n")

	projects, err := testRepository(fs).List(context.Background(), "", ListOptions{})
	require.NoError(t, err)
	require.Len(t, projects, 2)

	require.Equal(t, "bad", projects[0].Name)
	require.True(t, projects[0].HasError())
	require.False(t, projects[1].HasError())
}

func TestList_CriteriaCombineWithAnd(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/crm", "[project]\ntitle = Acme CRM\ncategory = django\ntags = django, crm\n")
	addProject(fs, "/work/site", "[project]\ntitle = Acme Site\ncategory = django\ntags = django\n")
	addProject(fs, "/work/tool", "[project]\ntitle = Tooling\ncategory = cli\n")

	repo := testRepository(fs)

	byCategory, err := repo.List(context.Background(), "", ListOptions{
		Criteria: map[string]string{"category": "django"},
	})
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	both, err := repo.List(context.Background(), "", ListOptions{
		Criteria: map[string]string{"category": "django", "tag": "crm"},
	})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "crm", both[0].Name)
}

func TestList_TitleMatchesSubstringCaseInsensitive(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/crm", "[project]\ntitle = Acme CRM\n")
	addProject(fs, "/work/tool", "[project]\ntitle = Tooling\n")

	matches, err := testRepository(fs).List(context.Background(), "", ListOptions{
		Criteria: map[string]string{"title": "acme"},
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "crm", matches[0].Name)
}

func TestList_UnknownCriteriaAttribute(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/crm", "[project]\ntitle = Acme CRM\n")

	_, err := testRepository(fs).List(context.Background(), "", ListOptions{
		Criteria: map[string]string{"flavor": "grape"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownAttribute))
}

func TestDistinctAttributeValues_CountsAndSorts(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/a", "[project]\ncategory = django\n")
	addProject(fs, "/work/b", "[project]\ncategory = django\n")
	addProject(fs, "/work/c", "[project]\ncategory = cli\n")

	values, err := testRepository(fs).DistinctAttributeValues(context.Background(), "", "category", ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []ValueCount{
		{Value: "cli", Count: 1},
		{Value: "django", Count: 2},
	}, values)
}

func TestDistinctAttributeValues_TagCountsMembership(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	addProject(fs, "/work/a", "[project]\ntags = django, crm\n")
	addProject(fs, "/work/b", "[project]\ntags = django\n")

	values, err := testRepository(fs).DistinctAttributeValues(context.Background(), "", "tag", ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []ValueCount{
		{Value: "crm", Count: 1},
		{Value: "django", Count: 2},
	}, values)
}

func TestDistinctAttributeValues_UnknownAttribute(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work")

	_, err := testRepository(fs).DistinctAttributeValues(context.Background(), "", "flavor", ListOptions{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownAttribute))
}
