package ui

import (
	"bytes"
	"strings"
	"testing"

	"fossilgen/internal/config"
	"fossilgen/internal/discovery"
	"fossilgen/internal/domain"

	"github.com/fatih/color"
)

func newTestFormatter(t *testing.T, flags config.Flags) (*Formatter, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	cfg := config.New()
	cfg.Root = "/src/tests"
	cfg.Flags = flags

	var buf bytes.Buffer
	f := NewFormatter(cfg, discovery.NewFilter())
	f.SetOutput(&buf)
	return f, &buf
}

func sampleGroups() (*domain.GroupSet, []string) {
	set := domain.NewGroupSet()
	set.Add("c_math_tests", "/src/tests/with_c/test_math.c")
	set.Add("c_string_tests", "/src/tests/with_c/test_str.c")
	set.Add("c_shared_tests", "/src/tests/with_c/test_math.c")
	set.Add("c_shared_tests", "/src/tests/with_c/test_str.c")
	files := []string{
		"/src/tests/with_c/test_empty.c",
		"/src/tests/with_c/test_math.c",
		"/src/tests/with_c/test_str.c",
	}
	return set, files
}

func TestFormatter_PrintGroupList(t *testing.T) {
	set, files := sampleGroups()

	t.Run("tree of files and groups", func(t *testing.T) {
		f, buf := newTestFormatter(t, config.Flags{})
		f.PrintGroupList(domain.FlavorC, set, files)

		want := `Found 3 C test file(s) with 3 test group(s):

├── with_c/test_empty.c
│   └── (no test groups found)
├── with_c/test_math.c
│   ├── c_math_tests
│   └── c_shared_tests
└── with_c/test_str.c
    ├── c_shared_tests
    └── c_string_tests
`
		if got := buf.String(); got != want {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("filter hides files without matching groups", func(t *testing.T) {
		f, buf := newTestFormatter(t, config.Flags{NameFilter: "*string*"})
		f.PrintGroupList(domain.FlavorC, set, files)

		got := buf.String()
		if strings.Contains(got, "test_empty.c") || strings.Contains(got, "test_math.c") {
			t.Errorf("expected only test_str.c, got:\n%s", got)
		}
		if !strings.Contains(got, "c_string_tests") || strings.Contains(got, "c_shared_tests") {
			t.Errorf("expected only the string group, got:\n%s", got)
		}
	})

	t.Run("groups only", func(t *testing.T) {
		f, buf := newTestFormatter(t, config.Flags{GroupsOnly: true})
		f.PrintGroupList(domain.FlavorC, set, files)

		want := `Found 3 test group(s) in C sources:

├── c_math_tests
├── c_shared_tests
└── c_string_tests
`
		if got := buf.String(); got != want {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		f, buf := newTestFormatter(t, config.Flags{})
		f.PrintGroupList(domain.FlavorCpp, domain.NewGroupSet(), nil)

		if !strings.Contains(buf.String(), "No C++ test files found") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})
}

func TestFormatter_PrintSummary(t *testing.T) {
	f, buf := newTestFormatter(t, config.Flags{})

	manifest := &domain.Manifest{
		Meta: domain.ManifestMeta{
			Root:            "/src/tests",
			OutputDir:       "/src/tests",
			Flavors:         2,
			TotalFiles:      2,
			TotalGroups:     2,
			DurationSeconds: 0.012,
			Timestamp:       "2026-10-19T10:00:00Z",
		},
		Results: []domain.GenerationResult{
			{Flavor: domain.FlavorC, Groups: []string{"addition", "concat"}, Files: []string{"a", "b"}},
			{Flavor: domain.FlavorCpp, Groups: []string{}, Files: []string{}},
		},
	}
	f.PrintSummary(manifest)

	got := buf.String()
	for _, want := range []string{
		"│ C Runner                        │ unit_runner.c               │",
		"│ C Test Groups                   │ 2                           │",
		"│ C++ Test Groups                 │ 0                           │",
		"│ Duration                        │ 0.012s                      │",
		"! No test groups found in C++ sources, unit_runner.cpp has no imports",
		"✓ Generated 2 runner(s) with 2 test group(s)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}
