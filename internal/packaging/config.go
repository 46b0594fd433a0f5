package packaging

import (
	"github.com/develmaycare/pyprojectutils/internal/config"
	"github.com/develmaycare/pyprojectutils/internal/models"
)

// List is an ordered collection of packages
type List []*Package

// Filter narrows the list by environment membership and/or manager equality.
// Both conditions must hold when both are given; empty values match all.
func (l List) Filter(env models.Environment, manager Manager) List {
	var filtered List
	for _, p := range l {
		if env != "" && !p.InEnv(env) {
			continue
		}
		if manager != "" && p.Manager != manager {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// FromDocument interprets every section of a packages.ini document as a
// package entry.
func FromDocument(doc *config.Document) List {
	sections := doc.Sections()
	packages := make(List, 0, len(sections))
	for _, section := range sections {
		packages = append(packages, NewPackageFromSection(section))
	}
	return packages
}
