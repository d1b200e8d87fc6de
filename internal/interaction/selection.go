package interaction

import "github.com/vovakirdan/gridsim/internal/tile"

// Selection is the overlay state drawn over a tile during a drag.
type Selection uint8

const (
	SelectPlain Selection = iota // cursor marker, no preview
	SelectBuildable
	SelectUnbuildable
	SelectDestroy
)

// String returns the string representation of a selection.
func (s Selection) String() string {
	switch s {
	case SelectPlain:
		return "Plain"
	case SelectBuildable:
		return "Buildable"
	case SelectUnbuildable:
		return "Unbuildable"
	case SelectDestroy:
		return "Destroy"
	default:
		return "Unknown"
	}
}

// OverlayCell is one classified tile of the selection overlay.
type OverlayCell struct {
	Pos       tile.Pos
	Selection Selection
}
