package commands

import (
	"fossilgen/internal/config"
	"fossilgen/internal/pipeline"
	"fossilgen/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	flavor, err := vc.config.FindFlavor(vc.config.Flags.Flavor)
	if err != nil {
		return err
	}

	groups, _, err := pipeline.NewFromConfig(vc.config).Discover(cmd.Context(), flavor)
	if err != nil {
		return err
	}

	return vc.viewer.View(flavor, groups)
}
