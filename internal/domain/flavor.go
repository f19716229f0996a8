package domain

// Flavor is a generation target: which sources feed it and where its runner goes
type Flavor struct {
	Name       string `toml:"name" json:"name"`           // Display label used in the runner banner
	Extension  string `toml:"extension" json:"extension"` // Source file extension, including the dot
	OutputFile string `toml:"output" json:"output"`       // Runner file name written to the output directory
}

// FlavorC is the C runner target
var FlavorC = Flavor{
	Name:       "C",
	Extension:  ".c",
	OutputFile: "unit_runner.c",
}

// FlavorCpp is the C++ runner target
var FlavorCpp = Flavor{
	Name:       "C++",
	Extension:  ".cpp",
	OutputFile: "unit_runner.cpp",
}

// DefaultFlavors returns the flavors generated on a plain run, in order
func DefaultFlavors() []Flavor {
	return []Flavor{FlavorC, FlavorCpp}
}
