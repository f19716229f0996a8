package domain

import "sort"

// GroupSet is a deduplicated set of test group identifiers.
// It also remembers which files declared each group.
type GroupSet struct {
	sources map[string][]string
}

// NewGroupSet creates an empty GroupSet
func NewGroupSet() *GroupSet {
	return &GroupSet{sources: make(map[string][]string)}
}

// Add inserts a group declared in path. Re-adding a group only records the extra source.
func (s *GroupSet) Add(group, path string) {
	paths := s.sources[group]
	for _, p := range paths {
		if p == path {
			return
		}
	}
	s.sources[group] = append(paths, path)
}

// Len returns the number of distinct groups
func (s *GroupSet) Len() int {
	return len(s.sources)
}

// Sources returns the files that declared the group, in insertion order
func (s *GroupSet) Sources(group string) []string {
	return s.sources[group]
}

// Sorted returns the groups in lexicographic order so generated runners are reproducible
func (s *GroupSet) Sorted() []string {
	groups := make([]string, 0, len(s.sources))
	for group := range s.sources {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}
