// Package project implements the Project aggregate: a directory representing
// one managed software project, optionally described by a project.ini file,
// enriched with derived facts (SCM state, disk usage, dependencies, version).
package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/deps"
	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"github.com/develmaycare/pyprojectutils/internal/models"
	"github.com/develmaycare/pyprojectutils/internal/packaging"
	"github.com/develmaycare/pyprojectutils/internal/scm"
	"github.com/develmaycare/pyprojectutils/internal/settings"
	"github.com/develmaycare/pyprojectutils/internal/shell"
)

// ConfigFileName is the per-project configuration file
const ConfigFileName = "project.ini"

// VersionFileName is the sidecar holding the raw version string
const VersionFileName = "VERSION.txt"

// FileFlags records which well-known sidecar files exist under the root
type FileFlags struct {
	Readme       bool
	License      bool
	Gitignore    bool
	Manifest     bool
	Requirements bool
	Setup        bool
	Version      bool
	Makefile     bool
}

// LanguageCount is the per-language result of a line-counting pass
type LanguageCount struct {
	Files int
	Lines int
}

// RepoInfo is the typed form of a [repo] config section
type RepoInfo struct {
	Host string
	User string
	Name string
	Type string
}

// LoadOptions controls the expensive, opt-in parts of Load
type LoadOptions struct {
	// IncludeDisk computes disk usage with a full subtree walk
	IncludeDisk bool

	// IncludeCLOC counts code lines per language via the cloc tool
	IncludeCLOC bool
}

// Project is the aggregate root. Construct with Factory.New, then call Load
// once to populate derived state. Instances are not safe for concurrent
// mutation; each lookup or listing builds fresh ones.
type Project struct {
	// Name is the directory basename and the stable identity key
	Name string

	// Root is the absolute directory path
	Root string

	Title       string
	Category    string
	Type        string
	Stage       models.Stage
	Location    models.Location
	Description string
	License     string
	Tags        models.Tags

	// Version is never empty after Load; it defaults to "0.1.0-d" when
	// no VERSION.txt exists.
	Version string

	// BusinessOrg and ClientOrg are nil when not configured; use
	// Business() and Client() for never-nil access.
	BusinessOrg *models.Organization
	ClientOrg   *models.Organization

	// AuthorOrg and PublisherOrg only matter for documentation projects
	AuthorOrg    *models.Organization
	PublisherOrg *models.Organization

	// SCM is the working-tree state as of the Load-time probe
	SCM scm.State

	// Disk is human-readable disk usage, "TBD" unless requested
	Disk string

	// Languages maps language name to file/line counts; populated only
	// when line counting was requested.
	Languages map[string]LanguageCount

	// ConfigExists reflects the presence of project.ini at load time,
	// independent of whether parsing later succeeded.
	ConfigExists bool

	Files FileFlags
	Repo  *RepoInfo

	// Links holds the [urls] section as category -> URL
	Links map[string]string

	isLoaded bool
	errMsg   string
	sections map[string]*config.Section

	fs       filesystem.FileSystem
	runner   shell.Runner
	probe    *scm.Probe
	resolver *deps.Resolver
	settings *settings.Settings
}

// Factory builds Project instances with their collaborators attached
type Factory struct {
	fs       filesystem.FileSystem
	runner   shell.Runner
	settings *settings.Settings
}

// NewFactory creates a project factory
func NewFactory(fs filesystem.FileSystem, runner shell.Runner, s *settings.Settings) *Factory {
	return &Factory{fs: fs, runner: runner, settings: s}
}

// New constructs an unloaded project. path defaults to the configured
// project home.
func (f *Factory) New(name, path string) *Project {
	if path == "" {
		path = f.settings.ProjectHome
	}

	root := filepath.Join(path, name)

	return &Project{
		Name:         name,
		Root:         root,
		Category:     "uncategorized",
		Type:         "project",
		Stage:        models.StageUnknown,
		Disk:         "TBD",
		ConfigExists: f.fs.Exists(filepath.Join(root, ConfigFileName)),
		sections:     make(map[string]*config.Section),
		fs:           f.fs,
		runner:       f.runner,
		probe:        scm.NewProbe(f.fs, f.runner),
		resolver:     deps.NewResolver(f.fs),
		settings:     f.settings,
	}
}

// Exists reports whether the project root exists. Evaluated dynamically
// because the root may be created after the instance.
func (p *Project) Exists() bool {
	return p.fs.Exists(p.Root)
}

// IsLoaded reports whether the last Load succeeded
func (p *Project) IsLoaded() bool {
	return p.isLoaded
}

// HasError reports whether Load recorded a recoverable problem, such as a
// malformed config file.
func (p *Project) HasError() bool {
	return p.errMsg != ""
}

// Error returns the recorded error message, if any
func (p *Project) Error() string {
	return p.errMsg
}

// PathExists reports whether the named file or directory exists relative
// to the project root.
func (p *Project) PathExists(elem ...string) bool {
	return p.fs.Exists(filepath.Join(append([]string{p.Root}, elem...)...))
}

// ConfigPath returns the absolute path of the project config file
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, ConfigFileName)
}

// Load populates all derived state. It returns false, with the error
// message recorded, when the root does not exist. A missing or malformed
// config never fails the load; it is downgraded to HasError.
func (p *Project) Load(ctx context.Context, opts LoadOptions) bool {
	if !p.Exists() {
		p.isLoaded = false
		p.errMsg = fmt.Sprintf("project root does not exist: %s", p.Root)
		return false
	}

	p.ConfigExists = p.fs.Exists(p.ConfigPath())
	p.loadConfig()

	if p.Title == "" {
		p.Title = p.Name
	}

	p.Location = p.locate()
	p.SCM = p.probe.Probe(ctx, p.Root)
	p.loadVersion()
	p.Files = p.fileFlags()

	if opts.IncludeDisk {
		p.Disk = p.diskUsage()
	}

	if opts.IncludeCLOC {
		p.Languages = p.countLines(ctx)
	}

	p.isLoaded = true
	return true
}

// loadConfig reads project.ini and distributes known sections into typed
// fields. Anything unrecognized stays available through Section.
func (p *Project) loadConfig() {
	doc, err := config.Load(p.fs, p.ConfigPath(), nil)
	if err != nil {
		// Missing config is the normal state for unmanaged directories;
		// only a real parse failure is worth flagging.
		if !errors.Is(err, config.ErrNotFound) {
			p.errMsg = err.Error()
		}
		return
	}

	for _, section := range doc.Sections() {
		p.applySection(section)
	}
}

func (p *Project) applySection(section *config.Section) {
	switch section.Name {
	case "project":
		p.applyProjectSection(section)
	case "business":
		p.BusinessOrg = organizationFromSection(models.OrganizationBusiness, section)
	case "client":
		p.ClientOrg = organizationFromSection(models.OrganizationClient, section)
	case "author":
		p.AuthorOrg = organizationFromSection(models.OrganizationAuthor, section)
	case "publisher":
		p.PublisherOrg = organizationFromSection(models.OrganizationPublisher, section)
	case "repo":
		p.Repo = &RepoInfo{
			Host: section.GetDefault("host", ""),
			User: section.GetDefault("user", ""),
			Name: section.GetDefault("name", p.Name),
			Type: section.GetDefault("type", ""),
		}
	case "urls":
		p.Links = section.Context()
	default:
		p.sections[section.Name] = section
	}
}

func (p *Project) applyProjectSection(section *config.Section) {
	p.Title = section.GetDefault("title", p.Title)
	p.Category = section.GetDefault("category", p.Category)
	p.Type = section.GetDefault("type", p.Type)
	p.Description = section.GetDefault("description", p.Description)
	p.License = section.GetDefault("license", p.License)

	if len(section.Tags) > 0 {
		p.Tags = section.Tags
	}

	// Schema migration: stage is authoritative, but configs written
	// before the rename only carry the legacy status key.
	stage, hasStage := section.Get("stage")
	status, hasStatus := section.Get("status")
	switch {
	case hasStage:
		p.Stage = models.Stage(stage)
	case hasStatus:
		p.Stage = models.Stage(status)
	}
}

func organizationFromSection(orgType models.OrganizationType, section *config.Section) *models.Organization {
	org := models.NewOrganization(orgType,
		section.GetDefault("name", ""),
		section.GetDefault("code", ""))
	org.Contact = section.GetDefault("contact", "")
	return org
}

// locate determines which storage root currently holds the project
func (p *Project) locate() models.Location {
	parent := filepath.Dir(p.Root)
	switch parent {
	case p.settings.ProjectArchive:
		return models.LocationArchive
	case p.settings.ProjectsOnHold:
		return models.LocationHold
	default:
		return models.LocationActive
	}
}

func (p *Project) loadVersion() {
	path := filepath.Join(p.Root, VersionFileName)
	if data, err := p.fs.ReadFile(path); err == nil {
		p.Version = strings.TrimSpace(string(data))
	}
	if p.Version == "" {
		p.Version = models.DefaultVersion
	}
}

func (p *Project) fileFlags() FileFlags {
	return FileFlags{
		Readme:       p.PathExists("README.markdown"),
		License:      p.PathExists("LICENSE.txt"),
		Gitignore:    p.PathExists(".gitignore"),
		Manifest:     p.PathExists("MANIFEST.in"),
		Requirements: p.PathExists("requirements.pip"),
		Setup:        p.PathExists("setup.py"),
		Version:      p.PathExists(VersionFileName),
		Makefile:     p.PathExists("Makefile"),
	}
}

// Section returns a generic config section that was not promoted to a
// typed field.
func (p *Project) Section(name string) (*config.Section, bool) {
	section, ok := p.sections[name]
	return section, ok
}

// Sections returns the names of the generic sections in sorted order
func (p *Project) SectionNames() []string {
	names := make([]string, 0, len(p.sections))
	for name := range p.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Business returns the configured business, or the operator's own developer
// identity so callers never need a nil check.
func (p *Project) Business() *models.Organization {
	if p.BusinessOrg != nil {
		return p.BusinessOrg
	}
	return models.NewOrganization(models.OrganizationBusiness,
		p.settings.DeveloperName, p.settings.DeveloperCode)
}

// Client returns the configured client, or a placeholder organization
func (p *Project) Client() *models.Organization {
	if p.ClientOrg != nil {
		return p.ClientOrg
	}
	return models.NewOrganization(models.OrganizationClient, "Unidentified", "UNK")
}

// Org returns the owning organization code: the client's when configured,
// else the business's, else the "???" sentinel for "no owner recorded".
func (p *Project) Org() string {
	if p.ClientOrg != nil {
		return p.ClientOrg.Code
	}
	if p.BusinessOrg != nil {
		return p.BusinessOrg.Code
	}
	return "???"
}

// Slug derives a URL-safe reference from the title
func (p *Project) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Title), " ", "-")
}

// Requirements resolves the project's dependencies, filtered by environment
// and/or manager when given.
func (p *Project) Requirements(env, manager string) (*deps.Resolution, error) {
	resolution, err := p.resolver.Resolve(p.Root)
	if err != nil {
		return nil, err
	}
	return resolution.Filter(env, depManager(manager)), nil
}

// depManager converts a CLI manager flag into a filter value. The empty
// string must stay empty to mean "any manager" rather than the pip default.
func depManager(manager string) packaging.Manager {
	if manager == "" {
		return ""
	}
	return packaging.ParseManager(manager)
}

// TruncatedTitle shortens the title to at most limit characters, counting
// the ellipsis itself against the limit. Characters, not bytes, so a
// multi-byte title is never cut mid-rune.
func (p *Project) TruncatedTitle(limit int, ellipsis string) string {
	title := []rune(p.Title)
	if len(title) <= limit {
		return p.Title
	}

	keep := limit - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return ellipsis
	}
	return string(title[:keep]) + ellipsis
}

func (p *Project) String() string {
	if p.Title != "" {
		return p.Title
	}
	if p.Name != "" {
		return p.Name
	}
	return "Untitled Project"
}
