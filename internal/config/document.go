package config

import (
	"fmt"
	"strings"

	"github.com/develmaycare/pyprojectutils/internal/filesystem"
	"gopkg.in/ini.v1"
)

// Document is a parsed INI configuration file: an ordered collection of
// sections. Loading is all-or-nothing; a failed parse leaves no partial
// section state behind.
type Document struct {
	Path string

	sections []*Section
	byName   map[string]*Section
}

// NewDocument creates an empty document for the given path
func NewDocument(path string) *Document {
	return &Document{
		Path:   path,
		byName: make(map[string]*Section),
	}
}

// Load reads and parses the INI file at path. A missing file yields an error
// wrapping ErrNotFound; malformed content yields a *ParseError. When context
// is non-nil, ${VAR} placeholders in values are substituted before storage.
func Load(fs filesystem.FileSystem, path string, context map[string]string) (*Document, error) {
	if !fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	doc := NewDocument(path)
	for _, iniSection := range file.Sections() {
		// The implicit DEFAULT section only matters when it has keys.
		if iniSection.Name() == ini.DefaultSection && len(iniSection.Keys()) == 0 {
			continue
		}

		section := NewSection(iniSection.Name())
		for _, key := range iniSection.Keys() {
			section.Set(key.Name(), expand(key.Value(), context))
		}
		doc.AddSection(section)
	}

	return doc, nil
}

// expand substitutes ${VAR} placeholders from context. Unrecognized
// placeholders are left intact.
func expand(value string, context map[string]string) string {
	if context == nil || !strings.Contains(value, "${") {
		return value
	}

	for key, replacement := range context {
		value = strings.ReplaceAll(value, "${"+key+"}", replacement)
	}
	return value
}

// AddSection appends a section, replacing any existing section of that name
func (d *Document) AddSection(section *Section) {
	if existing, ok := d.byName[section.Name]; ok {
		for i, s := range d.sections {
			if s == existing {
				d.sections[i] = section
				break
			}
		}
	} else {
		d.sections = append(d.sections, section)
	}
	d.byName[section.Name] = section
}

// Section returns the named section and whether it exists
func (d *Document) Section(name string) (*Section, bool) {
	section, ok := d.byName[name]
	return section, ok
}

// Sections returns all sections in document order
func (d *Document) Sections() []*Section {
	return append([]*Section(nil), d.sections...)
}

// String serializes the document back to INI format
func (d *Document) String() string {
	blocks := make([]string, 0, len(d.sections))
	for _, section := range d.sections {
		blocks = append(blocks, section.String())
	}
	return strings.Join(blocks, "\n")
}

// Write serializes the document to its path
func (d *Document) Write(fs filesystem.FileSystem) error {
	if err := fs.WriteFile(d.Path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Path, err)
	}
	return nil
}
