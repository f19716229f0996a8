package commands

import (
	"fmt"
	"time"

	"fossilgen/internal/config"
	"fossilgen/internal/pipeline"
	"fossilgen/internal/storage"
	"fossilgen/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	storage   *storage.JSONStorage
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, st *storage.JSONStorage, formatter *ui.Formatter) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	p := pipeline.NewFromConfig(gc.config)
	if !gc.config.Flags.Quiet {
		p.SetProgress(ui.NewProgressBar())
	}

	start := time.Now()
	results, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	manifest := gc.storage.BuildManifest(results, time.Since(start))
	if gc.config.ManifestPath != "" {
		if err := gc.storage.SaveManifest(manifest); err != nil {
			return fmt.Errorf("failed to save manifest: %w", err)
		}
	}

	if !gc.config.Flags.Quiet {
		gc.formatter.PrintSummary(manifest)
	}
	return nil
}
