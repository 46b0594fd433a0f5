package config

import (
	"fmt"
	"strings"

	"github.com/develmaycare/pyprojectutils/internal/models"
)

// Section is a generic named group of key/value pairs from an INI file.
// Key order is preserved so a document serializes back the way it was read.
type Section struct {
	Name string

	// Tags holds the split form of the special "tags" key, which is
	// comma-separated in every section it appears in.
	Tags models.Tags

	keys   []string
	values map[string]string
}

// NewSection creates an empty section
func NewSection(name string) *Section {
	return &Section{
		Name:   name,
		values: make(map[string]string),
	}
}

// Set stores a key/value pair. The "tags" key is split into the Tags set
// instead of being stored verbatim.
func (s *Section) Set(key, value string) {
	if key == "tags" {
		s.Tags = models.ParseTags(value)
		return
	}

	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key and whether it was present
func (s *Section) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// GetDefault returns the value for key, or fallback when absent
func (s *Section) GetDefault(key, fallback string) string {
	if value, ok := s.values[key]; ok {
		return value
	}
	return fallback
}

// Keys returns the section's keys in document order
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Context returns the section as a plain map copy
func (s *Section) Context() map[string]string {
	context := make(map[string]string, len(s.values))
	for key, value := range s.values {
		context[key] = value
	}
	return context
}

// String serializes the section as an INI block
func (s *Section) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", s.Name)
	for _, key := range s.keys {
		fmt.Fprintf(&b, "%s = %s\n", key, s.values[key])
	}
	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, "tags = %s\n", s.Tags)
	}
	return b.String()
}

// ToMarkdown renders the section as a Markdown block
func (s *Section) ToMarkdown() string {
	var a []string
	a = append(a, fmt.Sprintf("## %s", titleCase(s.Name)))
	a = append(a, "")

	if description, ok := s.Get("description"); ok {
		a = append(a, description)
		a = append(a, "")
	}

	for _, key := range s.keys {
		if key == "description" {
			continue
		}
		a = append(a, fmt.Sprintf("*%s*: %s  ", key, s.values[key]))
	}

	if len(s.Tags) > 0 {
		a = append(a, fmt.Sprintf("*tags*: %s  ", s.Tags))
	}

	a = append(a, "")
	return strings.Join(a, "\n")
}

// titleCase capitalizes the first letter of the section name for display
func titleCase(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// ToText renders the section as plain text
func (s *Section) ToText() string {
	var a []string
	a = append(a, titleCase(s.Name)+":")

	for _, key := range s.keys {
		a = append(a, fmt.Sprintf("%s (%s)", key, s.values[key]))
	}

	if len(s.Tags) > 0 {
		a = append(a, fmt.Sprintf("tags (%s)", s.Tags))
	}

	return strings.Join(a, " ")
}
