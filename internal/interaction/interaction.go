// Package interaction implements the tile editing tools: atomic per-tile
// edits (TileInteraction), the spatial strategies that apply them across a
// drag gesture (InteractionShape) and the selection overlay that previews
// whether each edit would be accepted.
//
// The edit path and the overlay path are both written against the same
// acceptance predicates in this file, so a tile shown as buildable is
// exactly a tile the edit would write.
package interaction

import (
	"fmt"

	"github.com/vovakirdan/gridsim/internal/tile"
)

// Kind tags the variant held by a TileInteraction.
type Kind uint8

const (
	KindReplaceGround Kind = iota
	KindBuildCover
	KindDemolishCover
	KindBuildRoad
)

// String returns the string representation of an interaction kind.
func (k Kind) String() string {
	switch k {
	case KindReplaceGround:
		return "ReplaceGround"
	case KindBuildCover:
		return "BuildCover"
	case KindDemolishCover:
		return "DemolishCover"
	case KindBuildRoad:
		return "BuildRoad"
	default:
		return "Unknown"
	}
}

// TileInteraction is one atomic, stateless edit applied to a single tile.
// Only the field matching Kind is meaningful.
type TileInteraction struct {
	Kind     Kind
	Ground   tile.Ground   // KindReplaceGround
	Cover    tile.Cover    // KindBuildCover
	Quarters tile.Quarters // KindBuildRoad
}

// ReplaceGround swaps the tile's ground when its current cover allows it.
func ReplaceGround(g tile.Ground) TileInteraction {
	return TileInteraction{Kind: KindReplaceGround, Ground: g}
}

// BuildCover places c on an empty tile whose ground accepts it.
func BuildCover(c tile.Cover) TileInteraction {
	return TileInteraction{Kind: KindBuildCover, Cover: c}
}

// DemolishCover clears whatever cover the tile holds.
func DemolishCover() TileInteraction {
	return TileInteraction{Kind: KindDemolishCover}
}

// BuildRoad lays road quarters, merging into an existing road.
func BuildRoad(q tile.Quarters) TileInteraction {
	return TileInteraction{Kind: KindBuildRoad, Quarters: q}
}

// String returns a string representation of the interaction.
func (ti TileInteraction) String() string {
	switch ti.Kind {
	case KindReplaceGround:
		return fmt.Sprintf("ReplaceGround(%s)", ti.Ground)
	case KindBuildCover:
		return fmt.Sprintf("BuildCover(%s)", ti.Cover)
	case KindBuildRoad:
		return fmt.Sprintf("BuildRoad(%v)", ti.Quarters)
	default:
		return ti.Kind.String()
	}
}

// emptyRoad is the reference cover used for road legality checks.
var emptyRoad = tile.Road(tile.Quarters{})

// groundAccepts reports whether t may take ground g.
func groundAccepts(t tile.Tile, g tile.Ground) bool {
	return t.Cover.CanGoOnGround(g)
}

// coverAccepts reports whether c may be built on t.
func coverAccepts(t tile.Tile, c tile.Cover) bool {
	return t.Cover.IsNone() && c.CanGoOnGround(t.Ground)
}

// roadGroundAccepts reports whether t's ground can carry road at all.
func roadGroundAccepts(t tile.Tile) bool {
	return emptyRoad.CanGoOnGround(t.Ground)
}

// roadAccepts reports whether road can be laid on or merged into t.
func roadAccepts(t tile.Tile) bool {
	return roadGroundAccepts(t) && (t.Cover.IsNone() || t.Cover.IsRoad())
}

// Apply performs the edit on t. Illegal edits leave t untouched; that is a
// normal outcome, not an error. Reports whether t changed.
func (ti TileInteraction) Apply(t *tile.Tile) bool {
	before := *t

	switch ti.Kind {
	case KindReplaceGround:
		if groundAccepts(*t, ti.Ground) {
			t.Ground = ti.Ground
		}
	case KindBuildCover:
		if coverAccepts(*t, ti.Cover) {
			t.Cover = ti.Cover
		}
	case KindDemolishCover:
		t.Cover = tile.NoCover
	case KindBuildRoad:
		if !roadGroundAccepts(*t) {
			return false
		}
		switch t.Cover.Kind {
		case tile.CoverNone:
			t.Cover = tile.Road(ti.Quarters)
		case tile.CoverRoad:
			t.Cover.Quarters = t.Cover.Quarters.Merge(ti.Quarters)
		}
	}

	return *t != before
}

// Classify previews ti against t without mutating it.
func (ti TileInteraction) Classify(t tile.Tile) Selection {
	switch ti.Kind {
	case KindReplaceGround:
		if ti.Ground != t.Ground && groundAccepts(t, ti.Ground) {
			return SelectBuildable
		}
	case KindBuildCover:
		if coverAccepts(t, ti.Cover) {
			return SelectBuildable
		}
	case KindDemolishCover:
		if !t.Cover.IsNone() {
			return SelectDestroy
		}
	case KindBuildRoad:
		if roadAccepts(t) {
			return SelectBuildable
		}
	}
	return SelectUnbuildable
}
