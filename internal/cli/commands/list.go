package commands

import (
	"fossilgen/internal/config"
	"fossilgen/internal/pipeline"
	"fossilgen/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	p := pipeline.NewFromConfig(lc.config)

	for i, flavor := range lc.config.Flavors {
		groups, files, err := p.Discover(cmd.Context(), flavor)
		if err != nil {
			return err
		}

		if i > 0 {
			lc.formatter.Break()
		}
		lc.formatter.PrintGroupList(flavor, groups, files)
	}
	return nil
}
