package models

import (
	"sort"
	"strings"
)

// Tags is a set of project or package tags. Order is normalized so two tag
// sets with the same members render identically.
type Tags []string

// ParseTags splits a comma-separated tag value into a normalized set.
// Whitespace is trimmed and empty entries and duplicates are dropped.
func ParseTags(value string) Tags {
	seen := make(map[string]struct{})
	var tags Tags

	for _, raw := range strings.Split(value, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	sort.Strings(tags)
	return tags
}

// Contains reports whether the tag is a member of the set
func (t Tags) Contains(tag string) bool {
	for _, candidate := range t {
		if candidate == tag {
			return true
		}
	}
	return false
}

// String joins the tags back into the comma-separated wire form
func (t Tags) String() string {
	return strings.Join(t, ",")
}
