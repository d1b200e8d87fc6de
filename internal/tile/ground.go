// Package tile provides the tile data model for the grid editor: terrain
// (Ground), occupants (Cover), directional road quarters and the fixed-size
// Grid that holds them. The placement rules between cover and ground live
// here so every caller shares them.
// This package is UI-agnostic and has no external dependencies.
package tile

// Ground is the base terrain of a tile.
type Ground uint8

const (
	Grass Ground = iota
	Water
	Bricks
	Gravel
	LeafLitter
	Swamp
	Sand
)

// Grounds lists every ground in declaration order.
var Grounds = [...]Ground{Grass, Water, Bricks, Gravel, LeafLitter, Swamp, Sand}

// String returns the string representation of a ground.
func (g Ground) String() string {
	switch g {
	case Grass:
		return "Grass"
	case Water:
		return "Water"
	case Bricks:
		return "Bricks"
	case Gravel:
		return "Gravel"
	case LeafLitter:
		return "LeafLitter"
	case Swamp:
		return "Swamp"
	case Sand:
		return "Sand"
	default:
		return "Unknown"
	}
}

// IsLand reports whether the ground can carry land-based cover.
func (g Ground) IsLand() bool {
	switch g {
	case Grass, Bricks, Gravel, LeafLitter, Sand:
		return true
	default:
		return false
	}
}

// IsWater reports whether the ground is a body of water.
// IsLand and IsWater are not complements; a ground may be neither.
func (g Ground) IsWater() bool {
	switch g {
	case Water, Swamp:
		return true
	default:
		return false
	}
}

// IsFertile reports whether plants can grow on the ground.
func (g Ground) IsFertile() bool {
	switch g {
	case Grass, LeafLitter, Swamp:
		return true
	default:
		return false
	}
}

// ParseGround converts a case-sensitive ground name (as returned by String)
// back into a Ground.
func ParseGround(s string) (Ground, bool) {
	for _, g := range Grounds {
		if g.String() == s {
			return g, true
		}
	}
	return 0, false
}
