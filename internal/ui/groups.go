package ui

import (
	"fmt"
	"strings"

	"fossilgen/internal/config"
	"fossilgen/internal/discovery"
	"fossilgen/internal/domain"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GroupViewer browses discovered test groups in an interactive TUI
type GroupViewer struct {
	config *config.Config
	filter *discovery.Filter
}

// NewGroupViewer creates a new GroupViewer
func NewGroupViewer(cfg *config.Config, filter *discovery.Filter) *GroupViewer {
	return &GroupViewer{
		config: cfg,
		filter: filter,
	}
}

// View lists the flavor's groups on the left and details of the selected group on the right
func (gv *GroupViewer) View(flavor domain.Flavor, groups *domain.GroupSet) error {
	names := gv.filter.FilterByName(groups.Sorted(), gv.config.Flags.NameFilter)
	if len(names) == 0 {
		color.Yellow("No test groups found in %s sources", flavor.Name)
		return nil
	}

	app := tview.NewApplication()

	// List of groups (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, name := range names {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, name), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Group details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s Test Groups (%d) | Use ↑↓ to navigate, → to view details, ← to go back, [yellow]q[white] or Ctrl+C to exit ", flavor.Name, len(names)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(names) {
			detailsView.SetText(gv.formatGroupDetails(flavor, names[index], groups.Sources(names[index])))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatGroupDetails formats a group for display using tview color tags
func (gv *GroupViewer) formatGroupDetails(flavor domain.Flavor, name string, sources []string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[green]Group: %s[white]\n\n", name)

	fmt.Fprintf(&builder, "[cyan]Declared in:[white]\n")
	for _, path := range sources {
		fmt.Fprintf(&builder, "  %s\n", tview.Escape(relativeTo(gv.config.Root, path)))
	}
	fmt.Fprintf(&builder, "\n")

	fmt.Fprintf(&builder, "[yellow]%s:[white]\n", flavor.OutputFile)
	fmt.Fprintf(&builder, "  %s\n", tview.Escape(fmt.Sprintf("FOSSIL_TEST_EXPORT(%s);", name)))
	fmt.Fprintf(&builder, "  %s\n", tview.Escape(fmt.Sprintf("FOSSIL_TEST_IMPORT(%s);", name)))

	return builder.String()
}
