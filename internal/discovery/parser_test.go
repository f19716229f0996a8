package discovery

import (
	"testing"

	"fossilgen/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestParser_FindGroups(t *testing.T) {
	parser := NewParser("FOSSIL_TEST_GROUP")

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "single group",
			content:  "FOSSIL_TEST_GROUP(c_crabql_tests) {\n}\n",
			expected: []string{"c_crabql_tests"},
		},
		{
			name:     "duplicates are kept",
			content:  "FOSSIL_TEST_GROUP(addition)\nFOSSIL_TEST_GROUP(addition)\n",
			expected: []string{"addition", "addition"},
		},
		{
			name:     "line comment still counts",
			content:  "// FOSSIL_TEST_GROUP(ghost)\n",
			expected: []string{"ghost"},
		},
		{
			name:     "disabled block still counts",
			content:  "#if 0\nFOSSIL_TEST_GROUP(disabled)\n#endif\n",
			expected: []string{"disabled"},
		},
		{
			name:     "whitespace breaks the match",
			content:  "FOSSIL_TEST_GROUP( spaced )\nFOSSIL_TEST_GROUP (gap)\n",
			expected: []string{},
		},
		{
			name:     "non word characters break the match",
			content:  "FOSSIL_TEST_GROUP(a-b)\nFOSSIL_TEST_GROUP()\n",
			expected: []string{},
		},
		{
			name:     "other fossil macros are ignored",
			content:  "FOSSIL_TEST_SUITE(suite)\nFOSSIL_TEST_CASE(case)\nFOSSIL_TEST_EXPORT(export);\n",
			expected: []string{},
		},
		{
			name:     "several on one line",
			content:  "FOSSIL_TEST_GROUP(one)FOSSIL_TEST_GROUP(two)",
			expected: []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.FindGroups(tt.content)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FindGroups() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_CustomMarker(t *testing.T) {
	parser := NewParser("GROUP.X")

	got := parser.FindGroups("GROUP.X(kept) GROUPzX(dropped)")
	if diff := cmp.Diff([]string{"kept"}, got); diff != "" {
		t.Errorf("FindGroups() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_CollectInto(t *testing.T) {
	parser := NewParser("FOSSIL_TEST_GROUP")

	files := []domain.SourceFile{
		{Path: "with_c/test_math.c", Content: "FOSSIL_TEST_GROUP(addition)\nFOSSIL_TEST_GROUP(addition)\n"},
		{Path: "with_c/test_str.c", Content: "FOSSIL_TEST_GROUP(concat)\n"},
	}

	set := domain.NewGroupSet()
	for _, file := range files {
		parser.CollectInto(set, file)
	}
	if diff := cmp.Diff([]string{"addition", "concat"}, set.Sorted()); diff != "" {
		t.Errorf("CollectInto() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"with_c/test_math.c"}, set.Sources("addition")); diff != "" {
		t.Errorf("Sources() mismatch (-want +got):\n%s", diff)
	}
}
