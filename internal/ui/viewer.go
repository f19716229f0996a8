package ui

import "fossilgen/internal/domain"

// Viewer displays discovered test groups interactively
type Viewer interface {
	View(flavor domain.Flavor, groups *domain.GroupSet) error
}
