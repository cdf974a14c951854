package world

// Grid represents the game map as a dense row-major tile slice
type Grid struct {
	tiles  []Tile
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions; every tile starts empty
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.tiles = make([]Tile, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetTile returns the tile at the given position, or nil if out of bounds
func (g *Grid) GetTile(x, y int) *Tile {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return &g.tiles[x+y*g.width]
}

// Kind returns the kind of the tile at x/y. Out-of-bounds positions read as empty.
func (g *Grid) Kind(x, y int) TileKind {
	t := g.GetTile(x, y)
	if t == nil {
		return TileEmpty
	}
	return t.Kind
}

// Carve sets the kind of the tile at x/y. Returns false if out of bounds.
func (g *Grid) Carve(x, y int, kind TileKind) bool {
	t := g.GetTile(x, y)
	if t == nil {
		return false
	}
	t.Kind = kind
	return true
}

// RevealDoor turns a hidden door into a plain door. It is the only kind
// change allowed once a level has been generated.
func (g *Grid) RevealDoor(x, y int) bool {
	t := g.GetTile(x, y)
	if t == nil || t.Kind != TileHiddenDoor {
		return false
	}
	t.Kind = TileDoor
	return true
}

// ForEachTile iterates over all tiles in the grid, calling the provided function for each
func (g *Grid) ForEachTile(fn func(x, y int, t *Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, &g.tiles[x+y*g.width])
		}
	}
}

// Count returns how many tiles have the given kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].Kind == kind {
			n++
		}
	}
	return n
}
