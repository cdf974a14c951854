package generator

import (
	"math/rand"

	"darkdelve/pkg/engine/rng"
	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/world"
)

// carver turns typed rooms into tiles.
type carver struct {
	w          *world.World
	r          *rand.Rand
	hiddenOdds int
}

// carveRooms draws every full room: walls on the border, floor inside.
func (c *carver) carveRooms() {
	g := c.w.Grid
	for _, room := range c.w.Rooms {
		if room.Kind != world.RoomFull {
			continue
		}
		for y := room.AY; y <= room.BY; y++ {
			for x := room.AX; x <= room.BX; x++ {
				kind := engineworld.TileFloor
				if x == room.AX || x == room.BX || y == room.AY || y == room.BY {
					kind = engineworld.TileWall
				}
				g.Carve(x, y, kind)
			}
		}
	}
}

// carveConnections links rooms in shuffled order. A neighbour that is
// optional and already linked is left alone so side rooms stay dead ends.
func (c *carver) carveConnections() {
	rooms := c.w.Rooms
	for _, i := range c.w.Order {
		if rooms[i].Kind == world.RoomNone {
			continue
		}
		for _, j := range c.w.Order {
			if i == j {
				continue
			}
			if !rooms[j].Essential && rooms[j].Connected {
				continue
			}
			face := c.w.Adjacency.Get(i, j)
			if face == world.FaceNone {
				continue
			}
			if c.connect(i, j, face) {
				rooms[j].Connected = true
				if rooms[i].Essential {
					rooms[i].Connected = true
				}
			}
		}
	}
}

// connect carves the link from room i to room j across i's given face and
// reports whether anything was carved. Two full rooms get a door at a random
// spot on i's west or north wall; the mirrored east and south cases are left
// to the other room's turn. A tunnel room runs a corridor from the midpoint of
// the shared edge to its own centre.
func (c *carver) connect(i, j int, face world.Face) bool {
	a, b := c.w.Rooms[i], c.w.Rooms[j]

	if a.Kind == world.RoomFull && b.Kind == world.RoomFull {
		switch face {
		case world.FaceWest:
			lo, hi := max(a.AY, b.AY)+1, min(a.BY, b.BY)-1
			c.w.Grid.Carve(a.AX, rng.Between(c.r, lo, hi), c.doorKind(a, b))
			return true
		case world.FaceNorth:
			lo, hi := max(a.AX, b.AX)+1, min(a.BX, b.BX)-1
			c.w.Grid.Carve(rng.Between(c.r, lo, hi), a.AY, c.doorKind(a, b))
			return true
		}
		return false
	}
	if a.Kind != world.RoomTunnel {
		return false
	}

	edge := engineworld.TileTunnel
	if b.Kind == world.RoomFull {
		edge = engineworld.TileDoor
	}
	mx, my := a.Center()

	switch face {
	case world.FaceWest, world.FaceEast:
		y := (max(a.AY, b.AY) + 1 + min(a.BY, b.BY) - 1) / 2
		if face == world.FaceWest {
			c.w.Grid.Carve(a.AX, y, edge)
			c.hline(a.AX+1, mx, y)
		} else {
			c.w.Grid.Carve(a.BX, y, edge)
			c.hline(mx, a.BX-1, y)
		}
		c.vline(mx, y, my)
	case world.FaceNorth, world.FaceSouth:
		x := (max(a.AX, b.AX) + 1 + min(a.BX, b.BX) - 1) / 2
		if face == world.FaceNorth {
			c.w.Grid.Carve(x, a.AY, edge)
			c.vline(x, a.AY+1, my)
		} else {
			c.w.Grid.Carve(x, a.BY, edge)
			c.vline(x, my, a.BY-1)
		}
		c.hline(x, mx, my)
	default:
		return false
	}
	return true
}

// doorKind picks the door tile between two full rooms. Doors into optional
// rooms may be hidden; doors along the critical path never are.
func (c *carver) doorKind(a, b world.Room) engineworld.TileKind {
	if c.hiddenOdds > 0 && !(a.Essential && b.Essential) && rng.OneIn(c.r, c.hiddenOdds) {
		return engineworld.TileHiddenDoor
	}
	return engineworld.TileDoor
}

// hline carves tunnel from x0 to x1 inclusive on row y, in either order
func (c *carver) hline(x0, x1, y int) {
	for x := min(x0, x1); x <= max(x0, x1); x++ {
		c.w.Grid.Carve(x, y, engineworld.TileTunnel)
	}
}

// vline carves tunnel from y0 to y1 inclusive on column x, in either order
func (c *carver) vline(x, y0, y1 int) {
	for y := min(y0, y1); y <= max(y0, y1); y++ {
		c.w.Grid.Carve(x, y, engineworld.TileTunnel)
	}
}
