package project

import (
	"context"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
)

func loadAcme(t *testing.T) *Project {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme-widgets/project.ini", []byte(acmeConfig))
	fs.AddFile("/work/acme-widgets/VERSION.txt", []byte("1.2.3\n"))
	fs.AddFile("/work/acme-widgets/requirements.ini", []byte("[django]\nenv = base\ntitle = Django\nversion = >=1.10\n"))

	p := testFactory(fs).New("acme-widgets", "")
	require.True(t, p.Load(context.Background(), LoadOptions{}))
	return p
}

func TestProject_ToCSV(t *testing.T) {
	p := loadAcme(t)

	row := p.ToCSV(false)
	require.Equal(t, `acme-widgets,"Acme Widgets",django,website,ACME,1.2.3,development,active,TBD,none,,unknown,"CRM,django"`, row)

	withHeader := p.ToCSV(true)
	lines := strings.Split(withHeader, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, CSVHeader(), lines[0])
	require.Equal(t, row, lines[1])
}

func TestProject_ToMarkdown(t *testing.T) {
	p := loadAcme(t)

	markdown, err := p.ToMarkdown()
	require.NoError(t, err)
	snaps.MatchSnapshot(t, markdown)
}

func TestProject_ToTxt(t *testing.T) {
	p := loadAcme(t)
	snaps.MatchSnapshot(t, p.ToTxt())
}

func TestProject_ToStat_PlainHasNoEscapes(t *testing.T) {
	p := loadAcme(t)

	stat := p.ToStat(false)
	require.Contains(t, stat, "Acme Widgets")
	require.Contains(t, stat, "Version: 1.2.3")
	require.NotContains(t, stat, "\x1b[")
}

func TestProject_DirectoryTree(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/work/acme/docs/index.md", []byte("x"))
	fs.AddFile("/work/acme/main.py", []byte("x"))
	fs.AddDir("/work/acme/.git")

	p := testFactory(fs).New("acme", "")
	require.True(t, p.Load(context.Background(), LoadOptions{}))

	tree, err := p.DirectoryTree()
	require.NoError(t, err)
	require.Contains(t, tree, "docs/")
	require.Contains(t, tree, "    index.md")
	require.Contains(t, tree, "main.py")
	require.NotContains(t, tree, ".git")
}

func TestProject_DirtyLabel(t *testing.T) {
	p := loadAcme(t)
	require.Equal(t, "unknown", p.DirtyLabel())

	dirty := true
	p.SCM.Dirty = &dirty
	require.Equal(t, "yes", p.DirtyLabel())

	dirty = false
	require.Equal(t, "no", p.DirtyLabel())
}
