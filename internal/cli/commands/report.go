package commands

import (
	"fossilgen/internal/config"
	"fossilgen/internal/storage"
	"fossilgen/internal/ui"

	"github.com/spf13/cobra"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.ManifestPath == "" {
		rc.config.ManifestPath = config.DefaultManifestFile
	}

	manifest, err := rc.storage.Load()
	if err != nil {
		return err
	}

	rc.formatter.PrintSummary(manifest)
	return nil
}
