package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"fossilgen/internal/config"
	"fossilgen/internal/discovery"
	"fossilgen/internal/domain"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	filter *discovery.Filter
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to the terminal
func NewFormatter(cfg *config.Config, filter *discovery.Filter) *Formatter {
	return &Formatter{
		config: cfg,
		filter: filter,
		out:    color.Output,
	}
}

// SetOutput redirects the formatter's output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// Break prints an empty line
func (f *Formatter) Break() {
	fmt.Fprintln(f.out)
}

const (
	tableTop    = "┌─────────────────────────────────┬─────────────────────────────┐"
	tableMiddle = "├─────────────────────────────────┼─────────────────────────────┤"
	tableBottom = "└─────────────────────────────────┴─────────────────────────────┘"
)

// PrintSummary displays the statistics of a generation run
func (f *Formatter) PrintSummary(manifest *domain.Manifest) {
	meta := manifest.Meta

	// Print header
	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                  Fossil Test Runner Generation                ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	type row struct {
		label string
		value string
		color *color.Color
	}
	rows := []row{
		{"Root", meta.Root, white},
		{"Output Dir", meta.OutputDir, white},
	}
	for _, r := range manifest.Results {
		groupColor := green
		if len(r.Groups) == 0 {
			groupColor = yellow
		}
		rows = append(rows,
			row{r.Flavor.Name + " Runner", r.Flavor.OutputFile, white},
			row{r.Flavor.Name + " Source Files", fmt.Sprintf("%d", len(r.Files)), white},
			row{r.Flavor.Name + " Test Groups", fmt.Sprintf("%d", len(r.Groups)), groupColor},
		)
	}
	rows = append(rows,
		row{"Duration", fmt.Sprintf("%.3fs", meta.DurationSeconds), white},
		row{"Timestamp", meta.Timestamp, white},
	)

	// Print table
	fmt.Fprintln(f.out, tableTop)
	for i, r := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", r.label)
		r.color.Fprintf(f.out, "%-27s", r.value)
		fmt.Fprint(f.out, " │\n")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, tableMiddle)
		}
	}
	fmt.Fprintln(f.out, tableBottom)

	// Print summary line
	fmt.Fprintln(f.out)
	for _, r := range manifest.Results {
		if len(r.Groups) == 0 {
			yellow.Fprintf(f.out, "! No test groups found in %s sources, %s has no imports\n", r.Flavor.Name, r.Flavor.OutputFile)
		}
	}
	green.Fprintf(f.out, "✓ Generated %d runner(s) with %d test group(s)\n", meta.Flavors, meta.TotalGroups)
}

// PrintGroupList prints the groups of one flavor, either flat or as a tree of files and the groups they declare.
// Groups are narrowed by the configured name filter.
func (f *Formatter) PrintGroupList(flavor domain.Flavor, groups *domain.GroupSet, files []string) {
	pattern := f.config.Flags.NameFilter
	names := f.filter.FilterByName(groups.Sorted(), pattern)

	if f.config.Flags.GroupsOnly {
		if len(names) == 0 {
			yellow.Fprintf(f.out, "No test groups found in %s sources\n", flavor.Name)
			return
		}
		green.Fprintf(f.out, "Found %d test group(s) in %s sources:\n\n", len(names), flavor.Name)
		for i, name := range names {
			cyan.Fprintf(f.out, "%s%s\n", branch(i == len(names)-1), name)
		}
		return
	}

	// Invert the set: file -> groups it declares
	byFile := make(map[string][]string)
	for _, name := range names {
		for _, path := range groups.Sources(name) {
			byFile[path] = append(byFile[path], name)
		}
	}

	shown := files
	if pattern != "" {
		shown = nil
		for _, path := range files {
			if len(byFile[path]) > 0 {
				shown = append(shown, path)
			}
		}
	}

	if len(shown) == 0 {
		yellow.Fprintf(f.out, "No %s test files found\n", flavor.Name)
		return
	}

	green.Fprintf(f.out, "Found %d %s test file(s) with %d test group(s):\n\n", len(shown), flavor.Name, len(names))
	for i, path := range shown {
		isLastFile := i == len(shown)-1
		cyan.Fprintf(f.out, "%s%s\n", branch(isLastFile), f.relPath(path))

		fileGroups := byFile[path]
		sort.Strings(fileGroups)
		if len(fileGroups) == 0 {
			fmt.Fprintf(f.out, "%s%s\n", childPrefix(isLastFile, true), red.Sprint("(no test groups found)"))
			continue
		}
		for j, name := range fileGroups {
			fmt.Fprintf(f.out, "%s%s\n", childPrefix(isLastFile, j == len(fileGroups)-1), yellow.Sprint(name))
		}
	}
}

// relPath returns a path relative to the root for cleaner display
func (f *Formatter) relPath(path string) string {
	return relativeTo(f.config.Root, path)
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func branch(isLast bool) string {
	if isLast {
		return "└── "
	}
	return "├── "
}

func childPrefix(isLastParent, isLast bool) string {
	if isLastParent {
		return "    " + branch(isLast)
	}
	return "│   " + branch(isLast)
}
