package commands

import (
	"fossilgen/internal/cli"
	"fossilgen/internal/config"
	"fossilgen/internal/discovery"
	"fossilgen/internal/storage"
	"fossilgen/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	View     *ViewCommand
	Report   *ReportCommand
}

// NewCommands creates all commands with dependencies.
// Scan stages are built per run, once flags and config files have been applied.
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, filter)
	viewer := ui.NewGroupViewer(cfg, filter)

	return &Commands{
		Generate: NewGenerateCommand(cfg, jsonStorage, formatter),
		List:     NewListCommand(cfg, formatter),
		View:     NewViewCommand(cfg, viewer),
		Report:   NewReportCommand(cfg, jsonStorage, formatter),
	}
}

// Register registers all commands with cobra.
// Running the root command without a subcommand generates the runners.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.Root, "root", "r", "", "Directory to scan for test sources (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a TOML config file (default: fossilgen.toml in the root, if present)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Generate command, also the root's default action
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the C and C++ test runners",
		Long:  "Scan with_*/test_* sources for FOSSIL_TEST_GROUP declarations and write unit_runner.c and unit_runner.cpp",
		Args:  cobra.NoArgs,
		RunE:  c.Generate.Execute,
	}
	for _, cmd := range []*cobra.Command{rootCmd, generateCmd} {
		cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Directory the runners are written to, relative to the root (default: the root)")
		cmd.Flags().StringVar(&flags.Only, "only", "", "Generate a single flavor (c or cpp)")
		cmd.Flags().StringVar(&flags.Manifest, "manifest", "", "Write a JSON manifest of the run to this path")
		cmd.Flags().Lookup("manifest").NoOptDefVal = config.DefaultManifestFile
		cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Do not print progress or the summary")
	}
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Generate.Execute
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test groups",
		Long:  "Scan and list the test files and test groups of each flavor without writing any runner",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter groups by name pattern (supports wildcards, e.g., 'c_*' or '*shell*')")
	listCmd.Flags().StringVar(&flags.Only, "only", "", "List a single flavor (c or cpp)")
	listCmd.Flags().BoolVarP(&flags.GroupsOnly, "groups", "g", false, "List test groups instead of test files")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse discovered test groups interactively",
		Long:  "Display the test groups of one flavor and the files declaring them in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	viewCmd.Flags().StringVar(&flags.Flavor, "flavor", "c", "Flavor to browse (c or cpp)")
	viewCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter groups by name pattern (supports wildcards, e.g., 'c_*' or '*shell*')")
	rootCmd.AddCommand(viewCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show the statistics of the last generation",
		Long:  "Display the manifest written by 'generate --manifest'",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	reportCmd.Flags().StringVar(&flags.Manifest, "manifest", "", "Path of the manifest to read, relative to the root (default: fossilgen-manifest.json)")
	rootCmd.AddCommand(reportCmd)
}
