// Package packaging models dependency entries parsed from a packages.ini
// manifest. Each entry targets a package manager which governs how its
// install command and requirements-file representation are rendered.
package packaging

import (
	"fmt"
	"strings"

	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/models"
)

// Manager is a packaging ecosystem
type Manager string

const (
	ManagerPip  Manager = "pip"
	ManagerApt  Manager = "apt"
	ManagerBrew Manager = "brew"
	ManagerGem  Manager = "gem"
	ManagerNpm  Manager = "npm"
)

// Managers lists every recognized packaging ecosystem
var Managers = []Manager{ManagerPip, ManagerApt, ManagerBrew, ManagerGem, ManagerNpm}

// LookupManager resolves a caller-supplied manager name. Unlike ParseManager
// it reports unrecognized values instead of defaulting, so a typo in a
// filter does not silently become pip.
func LookupManager(s string) (Manager, bool) {
	m := Manager(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Managers {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// ParseManager normalizes a manager value from config. Unrecognized or empty
// values fall back to pip, the manifest default.
func ParseManager(s string) Manager {
	switch Manager(strings.ToLower(strings.TrimSpace(s))) {
	case ManagerApt:
		return ManagerApt
	case ManagerBrew:
		return ManagerBrew
	case ManagerGem:
		return ManagerGem
	case ManagerNpm:
		return ManagerNpm
	default:
		return ManagerPip
	}
}

// Package is a single dependency entry.
//
//	[django]
//	docs = http://docs.djangoproject.com
//	env = base
//	home = http://djangoproject.com
//	note = We use this all the time.
//	scm = http://github.com/django/django
//	title = Django
//	version = >=1.10
type Package struct {
	Name    string
	Title   string
	Manager Manager

	// Envs lists the deployment environments the package applies to.
	// Defaults to the base environment.
	Envs []models.Environment

	Version string
	Branch  string
	Docs    string
	Egg     string
	Home    string
	Note    string
	SCM     string

	// Cmd overrides install command generation entirely when set
	Cmd string
}

// NewPackageFromSection builds a package from a manifest section
func NewPackageFromSection(section *config.Section) *Package {
	p := &Package{
		Name:    section.Name,
		Title:   section.GetDefault("title", section.Name),
		Manager: ParseManager(section.GetDefault("manager", string(ManagerPip))),
		Version: section.GetDefault("version", ""),
		Branch:  section.GetDefault("branch", ""),
		Cmd:     section.GetDefault("cmd", ""),
		Docs:    section.GetDefault("docs", ""),
		Egg:     section.GetDefault("egg", ""),
		Home:    section.GetDefault("home", ""),
		Note:    section.GetDefault("note", ""),
		SCM:     section.GetDefault("scm", ""),
	}

	for _, env := range strings.Fields(section.GetDefault("env", models.BaseEnvironment)) {
		p.Envs = append(p.Envs, env)
	}

	return p
}

// InEnv reports whether the package applies to the given environment
func (p *Package) InEnv(env models.Environment) bool {
	for _, candidate := range p.Envs {
		if candidate == env {
			return true
		}
	}
	return false
}

// HasLinks reports whether any of the home/docs/scm URLs are set
func (p *Package) HasLinks() bool {
	return p.Docs != "" || p.Home != "" || p.SCM != ""
}

// Command returns the console command that installs the package. An explicit
// cmd from the manifest bypasses generation for any manager.
func (p *Package) Command() (string, error) {
	if p.Cmd != "" {
		return p.Cmd, nil
	}

	switch p.Manager {
	case ManagerApt:
		return fmt.Sprintf("apt-get install -y %s%s", p.Name, p.Version), nil
	case ManagerBrew:
		if p.Version != "" {
			return fmt.Sprintf("brew install %s %s", p.Name, p.Version), nil
		}
		return fmt.Sprintf("brew install %s", p.Name), nil
	case ManagerGem:
		if p.Version != "" {
			return fmt.Sprintf("gem install --version %s %s", p.Version, p.Name), nil
		}
		return fmt.Sprintf("gem install %s", p.Name), nil
	case ManagerNpm:
		if p.Version != "" {
			return fmt.Sprintf("npm install %s@%s", p.Name, p.Version), nil
		}
		return fmt.Sprintf("npm install %s", p.Name), nil
	default:
		if p.Egg != "" {
			plain, err := p.Plain()
			if err != nil {
				return "", err
			}
			return "pip install " + plain, nil
		}
		return fmt.Sprintf("pip install %s%s", p.Name, p.Version), nil
	}
}

// Plain returns the requirements-file representation of the package. For pip
// packages with an egg this is an editable VCS install; the scm URL is then
// required and its absence is an input error.
func (p *Package) Plain() (string, error) {
	if p.Manager != ManagerPip || p.Egg == "" {
		return p.Name, nil
	}

	if p.SCM == "" {
		return "", fmt.Errorf("scm is required to use an egg with the %s package", p.Name)
	}

	var b strings.Builder
	b.WriteString("-e git+")

	if strings.Contains(p.SCM, "bitbucket") {
		b.WriteString(p.SCM)
		b.WriteString("/get/master.zip")
	} else {
		b.WriteString(p.SCM)
		b.WriteString(".git")
		if p.Branch != "" {
			b.WriteString("@" + p.Branch)
		}
	}

	b.WriteString("#egg=" + p.Egg)
	return b.String(), nil
}

// ToMarkdown renders the package for a requirements report
func (p *Package) ToMarkdown() (string, error) {
	command, err := p.Command()
	if err != nil {
		return "", err
	}

	var a []string
	a = append(a, fmt.Sprintf("**%s**", p.Title))
	a = append(a, "")

	if p.Note != "" {
		a = append(a, p.Note)
		a = append(a, "")
	}

	if len(p.Envs) > 1 {
		a = append(a, fmt.Sprintf("Part of these environments: *%s*", strings.Join(p.Envs, ", ")))
	} else {
		a = append(a, fmt.Sprintf("Part of the *%s* environment.", strings.Join(p.Envs, "")))
	}
	a = append(a, "")

	if p.HasLinks() {
		a = append(a, "Links:")
		a = append(a, "")
		if p.Home != "" {
			a = append(a, fmt.Sprintf("- [Home](%s)", p.Home))
		}
		if p.Docs != "" {
			a = append(a, fmt.Sprintf("- [Documentation](%s)", p.Docs))
		}
		if p.SCM != "" {
			a = append(a, fmt.Sprintf("- [Source Code](%s)", p.SCM))
		}
		a = append(a, "")
	}

	a = append(a, "To install manually:")
	a = append(a, "")
	a = append(a, "    "+command)
	a = append(a, "")

	return strings.Join(a, "\n"), nil
}

func (p *Package) String() string {
	return p.Name
}
