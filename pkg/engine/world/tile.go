// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileKind is what was carved into a cell.
type TileKind uint8

// Tile kinds
const (
	TileEmpty TileKind = iota
	TileFloor
	TileWall
	TileDoor
	TileHiddenDoor
	TileTunnel
	TileExit
)

// String returns the string representation of a tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileHiddenDoor:
		return "hidden door"
	case TileTunnel:
		return "tunnel"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Walkable reports whether an actor may step onto a tile of this kind.
func (k TileKind) Walkable() bool {
	return k == TileFloor || k == TileDoor || k == TileTunnel
}

// Traversable reports whether the tile is part of the carved layout a player
// can path through. Unlike Walkable it includes the exit, which is a goal
// rather than an obstacle when reasoning about level connectivity.
func (k TileKind) Traversable() bool {
	return k.Walkable() || k == TileExit
}

// WallLike reports whether the tile renders as part of a wall run.
// Hidden doors look like walls until discovered.
func (k TileKind) WallLike() bool {
	return k == TileWall || k == TileHiddenDoor
}

// Tile is a single cell of the grid.
type Tile struct {
	Kind TileKind

	// Discovered is sticky: once seen, always remembered.
	Discovered bool
	// Visible is recomputed every player turn and implies Discovered.
	Visible bool
}

// See marks the tile visible and discovered.
func (t *Tile) See() {
	t.Visible = true
	t.Discovered = true
}

// Hide clears the visible flag and leaves discovery alone.
func (t *Tile) Hide() {
	t.Visible = false
}
