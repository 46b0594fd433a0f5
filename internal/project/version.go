package project

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// BumpPart selects which version component BumpVersion increments
type BumpPart string

const (
	BumpMajor BumpPart = "major"
	BumpMinor BumpPart = "minor"
	BumpPatch BumpPart = "patch"
)

// ParseBumpPart validates a bump part from the command line
func ParseBumpPart(s string) (BumpPart, error) {
	switch BumpPart(strings.ToLower(strings.TrimSpace(s))) {
	case BumpMajor:
		return BumpMajor, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpPatch:
		return BumpPatch, nil
	default:
		return "", fmt.Errorf("unrecognized version part: %s", s)
	}
}

// BumpVersion increments the selected component of the project version and
// writes the result back to VERSION.txt. Bumping a component resets the
// lower components and drops any pre-release suffix, unless a new suffix is
// given. The new version string is returned.
func (p *Project) BumpVersion(part BumpPart, preRelease string) (string, error) {
	current := p.Version
	if current == "" {
		p.loadVersion()
		current = p.Version
	}

	if !semver.IsValid("v" + current) {
		return "", fmt.Errorf("current version is not semantic: %s", current)
	}

	major, minor, patch, err := splitVersion(current)
	if err != nil {
		return "", err
	}

	switch part {
	case BumpMajor:
		major, minor, patch = major+1, 0, 0
	case BumpMinor:
		minor, patch = minor+1, 0
	case BumpPatch:
		patch++
	default:
		return "", fmt.Errorf("unrecognized version part: %s", part)
	}

	next := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if preRelease != "" {
		next += "-" + preRelease
	}

	if !semver.IsValid("v" + next) {
		return "", fmt.Errorf("bumped version is not semantic: %s", next)
	}

	path := filepath.Join(p.Root, VersionFileName)
	if err := p.fs.WriteFile(path, []byte(next+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	p.Version = next
	return next, nil
}

// splitVersion breaks major.minor.patch out of a version string, ignoring
// any pre-release or build suffix.
func splitVersion(version string) (major, minor, patch int, err error) {
	core := version
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("version must have three components: %s", version)
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		n, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("version component is not a number: %s", part)
		}
		numbers[i] = n
	}

	return numbers[0], numbers[1], numbers[2], nil
}
