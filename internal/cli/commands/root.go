package commands

import (
	"fossilgen/internal/cli"
	"fossilgen/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the fossilgen command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fossilgen",
		Short: "Fossil test runner generator",
		Long: `Generates unit_runner.c and unit_runner.cpp for Fossil Logic test suites.
Scans with_<language>/test_<name>.<ext> sources for FOSSIL_TEST_GROUP declarations and registers every group in the runner.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies and register them
	cmds := NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}
