package ui

import (
	"fmt"
	"io"
	"os"

	"fossilgen/internal/domain"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar reports scanning progress, one bar per flavor pass
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
	flavor string
}

// NewProgressBar creates a new progress bar writing to stderr
func NewProgressBar() *ProgressBar {
	return &ProgressBar{writer: os.Stderr}
}

// Start begins a spinner for the flavor; the number of sources is not known up front
func (p *ProgressBar) Start(flavor domain.Flavor) {
	p.flavor = flavor.Name
	p.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(describe(p.flavor, 0, 0)),
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.writer, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Update updates the bar with the files scanned and groups found so far
func (p *ProgressBar) Update(files, groups int) {
	if p.bar == nil {
		return
	}
	p.bar.Add(1)
	p.bar.Describe(describe(p.flavor, files, groups))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar = nil
}

func describe(flavor string, files, groups int) string {
	return color.CyanString("Scanning %s sources: ", flavor) +
		color.GreenString("[files: %d", files) +
		" | " +
		color.YellowString("groups: %d]", groups)
}
