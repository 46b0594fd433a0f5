package project

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/develmaycare/pyprojectutils/internal/deps"
)

var (
	statTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	statDirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	statCleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))
)

// DirtyLabel renders the three-valued dirty state for display
func (p *Project) DirtyLabel() string {
	if p.SCM.Dirty == nil {
		return "unknown"
	}
	if *p.SCM.Dirty {
		return "yes"
	}
	return "no"
}

// ToMarkdown renders the full project record as a Markdown document:
// attributes, any extra config sections, and the dependency report.
func (p *Project) ToMarkdown() (string, error) {
	var a []string
	a = append(a, fmt.Sprintf("# %s", p.Title))
	a = append(a, "")

	if p.Description != "" {
		a = append(a, p.Description)
		a = append(a, "")
	}

	a = append(a, "## Attributes")
	a = append(a, "")
	a = append(a, fmt.Sprintf("*name*: %s  ", p.Name))
	a = append(a, fmt.Sprintf("*category*: %s  ", p.Category))
	a = append(a, fmt.Sprintf("*type*: %s  ", p.Type))
	a = append(a, fmt.Sprintf("*stage*: %s  ", p.Stage))
	a = append(a, fmt.Sprintf("*version*: %s  ", p.Version))
	a = append(a, fmt.Sprintf("*org*: %s  ", p.Org()))

	if p.License != "" {
		a = append(a, fmt.Sprintf("*license*: %s  ", p.License))
	}

	if len(p.Tags) > 0 {
		a = append(a, fmt.Sprintf("*tags*: %s  ", p.Tags))
	}

	if p.SCM.Recognized() {
		a = append(a, fmt.Sprintf("*scm*: %s  ", p.SCM.Type))
		if p.SCM.Branch != "" {
			a = append(a, fmt.Sprintf("*branch*: %s  ", p.SCM.Branch))
		}
		a = append(a, fmt.Sprintf("*dirty*: %s  ", p.DirtyLabel()))
	}

	a = append(a, fmt.Sprintf("*disk*: %s  ", p.Disk))
	a = append(a, "")

	for _, name := range p.SectionNames() {
		section, _ := p.Section(name)
		a = append(a, section.ToMarkdown())
	}

	requirements, err := p.requirementsMarkdown()
	if err != nil {
		return "", err
	}
	if requirements != "" {
		a = append(a, requirements)
	}

	if len(p.Languages) > 0 {
		a = append(a, "## Languages")
		a = append(a, "")
		for _, language := range sortedLanguages(p.Languages) {
			count := p.Languages[language]
			a = append(a, fmt.Sprintf("- %s: %d files, %d lines", language, count.Files, count.Lines))
		}
		a = append(a, "")
	}

	return strings.Join(a, "\n"), nil
}

func (p *Project) requirementsMarkdown() (string, error) {
	resolution, err := p.Requirements("", "")
	if err != nil {
		// A broken manifest should not take the whole report down
		return "", nil
	}

	switch resolution.Mode {
	case deps.ModeStructured:
		var a []string
		a = append(a, "## Requirements")
		a = append(a, "")
		for _, pkg := range resolution.Packages {
			block, err := pkg.ToMarkdown()
			if err != nil {
				return "", err
			}
			a = append(a, block)
		}
		return strings.Join(a, "\n"), nil
	case deps.ModeRaw:
		var a []string
		a = append(a, "## Requirements")
		a = append(a, "")
		for _, line := range resolution.Raw {
			a = append(a, "    "+line)
		}
		a = append(a, "")
		return strings.Join(a, "\n"), nil
	default:
		return "", nil
	}
}

// CSVHeader is the column list matching ToCSV's field order
func CSVHeader() string {
	return "name,title,category,type,org,version,stage,location,disk,scm,branch,dirty,tags"
}

// ToCSV renders the project as one CSV row. Titles may contain commas, so
// they are quoted; the remaining fields never do.
func (p *Project) ToCSV(includeHeader bool) string {
	row := strings.Join([]string{
		p.Name,
		fmt.Sprintf("%q", p.Title),
		p.Category,
		p.Type,
		p.Org(),
		p.Version,
		string(p.Stage),
		string(p.Location),
		p.Disk,
		string(p.SCM.Type),
		p.SCM.Branch,
		p.DirtyLabel(),
		fmt.Sprintf("%q", p.Tags.String()),
	}, ",")

	if includeHeader {
		return CSVHeader() + "\n" + row
	}
	return row
}

// ToStat renders a short status block for one project, optionally colored
func (p *Project) ToStat(color bool) string {
	label := func(s string) string { return s }
	title := label
	dirty := label

	if color {
		label = func(s string) string { return statLabelStyle.Render(s) }
		title = func(s string) string { return statTitleStyle.Render(s) }
		dirty = func(s string) string {
			if p.SCM.IsDirty() {
				return statDirtyStyle.Render(s)
			}
			return statCleanStyle.Render(s)
		}
	}

	var a []string
	a = append(a, title(p.Title))
	a = append(a, fmt.Sprintf("%s %s", label("Name:"), p.Name))
	a = append(a, fmt.Sprintf("%s %s", label("Version:"), p.Version))
	a = append(a, fmt.Sprintf("%s %s", label("Stage:"), p.Stage))

	if p.SCM.Recognized() {
		a = append(a, fmt.Sprintf("%s %s", label("SCM:"), p.SCM.Type))
		if p.SCM.Branch != "" {
			a = append(a, fmt.Sprintf("%s %s", label("Branch:"), p.SCM.Branch))
		}
		a = append(a, fmt.Sprintf("%s %s", label("Dirty:"), dirty(p.DirtyLabel())))
	}

	a = append(a, fmt.Sprintf("%s %s", label("Disk:"), p.Disk))
	return strings.Join(a, "\n")
}

// ToTxt renders the project as a plain text block
func (p *Project) ToTxt() string {
	var a []string
	a = append(a, p.Title)
	a = append(a, strings.Repeat("=", len(p.Title)))
	a = append(a, "")

	if p.Description != "" {
		a = append(a, p.Description)
		a = append(a, "")
	}

	a = append(a, fmt.Sprintf("name: %s", p.Name))
	a = append(a, fmt.Sprintf("category: %s", p.Category))
	a = append(a, fmt.Sprintf("type: %s", p.Type))
	a = append(a, fmt.Sprintf("stage: %s", p.Stage))
	a = append(a, fmt.Sprintf("version: %s", p.Version))
	a = append(a, fmt.Sprintf("org: %s", p.Org()))
	a = append(a, fmt.Sprintf("disk: %s", p.Disk))

	if p.SCM.Recognized() {
		a = append(a, fmt.Sprintf("scm: %s", p.SCM.Type))
	}

	if len(p.Tags) > 0 {
		a = append(a, fmt.Sprintf("tags: %s", p.Tags))
	}

	return strings.Join(a, "\n")
}

// DirectoryTree renders an indented listing of the project's files, skipping
// VCS control directories. It is the only serializer helper that touches the
// filesystem.
func (p *Project) DirectoryTree() (string, error) {
	var a []string

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

		depth := strings.Count(rel, string(filepath.Separator))
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		a = append(a, strings.Repeat("    ", depth)+name)

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk %s: %w", p.Root, err)
	}

	return strings.Join(a, "\n"), nil
}

func sortedLanguages(languages map[string]LanguageCount) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
