package cli

import "fossilgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	Root       string
	OutputDir  string
	ConfigFile string
	Only       string
	Manifest   string
	Quiet      bool
	NameFilter string
	GroupsOnly bool
	Flavor     string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Root:       f.Root,
		OutputDir:  f.OutputDir,
		ConfigFile: f.ConfigFile,
		Only:       f.Only,
		Manifest:   f.Manifest,
		Quiet:      f.Quiet,
		NameFilter: f.NameFilter,
		GroupsOnly: f.GroupsOnly,
		Flavor:     f.Flavor,
	}
}
