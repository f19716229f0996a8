package emitter

import "text/template"

// banner frames the section titles of a generated runner
const banner = "// * * * * * * * * * * * * * * * * * * * * * * * *"

// runnerTemplate renders the header, export list, main opening, import list and closing block.
// Export and import lines are newline-joined with no trailing newline of their own.
var runnerTemplate = template.Must(template.New("runner").Parse(`
// Generated Fossil Logic Test Runner ({{.Flavor}})
#include <fossil/unittest/framework.h>

{{.Banner}}
// * Fossil Logic Test List
{{.Banner}}
{{range $i, $group := .Groups}}{{if $i}}
{{end}}FOSSIL_TEST_EXPORT({{$group}});{{end}}
{{.Banner}}
// * Fossil Logic Test Runner ({{.Flavor}})
{{.Banner}}
int main(int argc, char **argv) {
    FOSSIL_TEST_CREATE(argc, argv);
{{range $i, $group := .Groups}}{{if $i}}
{{end}}    FOSSIL_TEST_IMPORT({{$group}});{{end}}
    FOSSIL_TEST_RUN();
    return FOSSIL_TEST_ERASE();
} // end of main
`))

type runnerData struct {
	Flavor string
	Banner string
	Groups []string
}
