package tile

import "fmt"

// Tile is a single grid cell: one ground and exactly one cover.
// Tile itself does not enforce cover/ground legality; edit operations do.
type Tile struct {
	Ground Ground
	Cover  Cover
}

// NewTile returns the initial tile state: grass with no cover.
func NewTile() Tile {
	return Tile{Ground: Grass, Cover: NoCover}
}

// Legal reports whether the tile's cover may sit on its ground.
func (t Tile) Legal() bool {
	return t.Cover.CanGoOnGround(t.Ground)
}

// String returns a string representation of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("{%s, %s}", t.Ground, t.Cover)
}
