package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test group names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters group names by pattern using wildcard matching.
// Supports patterns like "crabdb_*" or "*shell*"; a pattern without wildcards matches as a substring.
func (f *Filter) FilterByName(groups []string, pattern string) []string {
	if pattern == "" {
		return groups
	}

	var filtered []string
	for _, group := range groups {
		if f.Match(group, pattern) {
			filtered = append(filtered, group)
		}
	}
	return filtered
}

// Match reports whether a single name matches the pattern
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// filepath.Match handles * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to an ordered substring match of the parts between wildcards,
	// so "*User*Test" still matches names filepath.Match rejects.
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
