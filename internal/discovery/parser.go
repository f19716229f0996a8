package discovery

import (
	"regexp"

	"fossilgen/internal/domain"
)

// Parser extracts test group declarations from source text
type Parser struct {
	pattern *regexp.Regexp
}

// NewParser creates a Parser that matches MARKER(identifier)
func NewParser(marker string) *Parser {
	return &Parser{
		pattern: regexp.MustCompile(regexp.QuoteMeta(marker) + `\((\w+)\)`),
	}
}

// FindGroups returns every group named in content, in order of appearance and with duplicates.
// The match is purely textual: declarations inside comments or disabled blocks are returned too.
func (p *Parser) FindGroups(content string) []string {
	matches := p.pattern.FindAllStringSubmatch(content, -1)

	groups := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) > 1 {
			groups = append(groups, match[1])
		}
	}
	return groups
}

// CollectInto adds the groups declared in file to set
func (p *Parser) CollectInto(set *domain.GroupSet, file domain.SourceFile) {
	for _, group := range p.FindGroups(file.Content) {
		set.Add(group, file.Path)
	}
}
