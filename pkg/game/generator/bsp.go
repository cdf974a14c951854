package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/engine/rng"
	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/world"
)

// BSPGenerator generates levels using Binary Space Partitioning
type BSPGenerator struct {
	Params Params
}

// NewBSP returns a BSP generator for the given parameters
func NewBSP(p Params) *BSPGenerator {
	return &BSPGenerator{Params: p}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Generate creates a new level. The same seed always yields the same level.
func (g *BSPGenerator) Generate(r *rand.Rand) *world.World {
	p := g.Params
	w := &world.World{
		Grid: engineworld.NewGrid(p.Width, p.Height),
	}

	w.Rooms = partition(p, r)
	w.Adjacency = buildAdjacency(w.Rooms)
	w.Order, w.Start, w.Finish = criticalPath(w.Rooms, w.Adjacency, r)
	assignKinds(w.Rooms, r)

	c := &carver{w: w, r: r, hiddenOdds: p.HiddenDoorOdds}
	c.carveRooms()
	c.carveConnections()

	place(w, p, r)

	logger.Debug("level generated",
		"generator", g.Name(),
		"rooms", len(w.Rooms),
		"full", w.CountRooms(world.RoomFull),
		"tunnel", w.CountRooms(world.RoomTunnel),
		"removed", w.CountRooms(world.RoomRemoved),
		"actors", len(w.Actors),
		"hidden_doors", w.Grid.Count(engineworld.TileHiddenDoor),
	)
	if err := Verify(w); err != nil {
		logger.Warning("generated level failed verification", "error", err)
	}
	return w
}

// partition splits the left half of the board into rooms. Children share
// the split line. Room indices are allocated depth-first: a room's first
// half is fully split before its second half.
func partition(p Params, r *rand.Rand) []world.Room {
	rooms := make([]world.Room, 0, p.MaxRooms)
	rooms = append(rooms, world.Room{AX: 0, AY: 0, BX: p.Width / 2, BY: p.Height - 1, From: world.NoRoom})

	limit := 2*p.MinRoomSize + 1
	pending := stack.New[int]()
	pending.Push(0)

	for pending.Size() > 0 {
		index := pending.Pop()
		if len(rooms) >= p.MaxRooms-1 {
			break
		}

		room := rooms[index]
		width, height := room.Width(), room.Height()
		if width <= limit && height <= limit {
			continue
		}

		splitX := width > height
		if width == height {
			splitX = r.Intn(2) == 0
		}

		second := room
		if splitX {
			at := room.AX - 1 + p.MinRoomSize + rng.Int(r, width-2*p.MinRoomSize)
			rooms[index].BX = at
			second.AX = at
		} else {
			at := room.AY - 1 + p.MinRoomSize + rng.Int(r, height-2*p.MinRoomSize)
			rooms[index].BY = at
			second.AY = at
		}
		rooms = append(rooms, second)

		pending.Push(len(rooms) - 1)
		pending.Push(index)
	}
	return rooms
}

// buildAdjacency records, for every ordered pair, which side of i touches j
// with more than two cells of overlap.
func buildAdjacency(rooms []world.Room) *world.Adjacency {
	adj := world.NewAdjacency(len(rooms))
	for i := range rooms {
		for j := range rooms {
			if i == j {
				continue
			}
			adj.Set(i, j, touching(rooms[i], rooms[j]))
		}
	}
	return adj
}

func touching(a, b world.Room) world.Face {
	face := world.FaceNone
	if a.AY < b.BY-1 && a.BY > b.AY+1 {
		switch {
		case a.AX == b.BX:
			face = world.FaceWest
		case a.BX == b.AX:
			face = world.FaceEast
		}
	}
	if a.AX < b.BX-1 && a.BX > b.AX+1 {
		face = world.FaceNone
		switch {
		case a.AY == b.BY:
			face = world.FaceNorth
		case a.BY == b.AY:
			face = world.FaceSouth
		}
	}
	return face
}

// criticalPath shuffles the rooms, labels them with sweep costs from the
// first one, and marks the chain back from the last room reached as essential.
func criticalPath(rooms []world.Room, adj *world.Adjacency, r *rand.Rand) (order []int, start, finish int) {
	order = make([]int, len(rooms))
	for i := range order {
		order[i] = i
	}
	r.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	start = order[0]
	rooms[start].Kind = world.RoomFull
	rooms[start].Essential = true
	rooms[start].Cost = 1
	rooms[start].Connected = true

	finish = start
	for cost := 1; ; cost++ {
		found := false
		for _, i := range order {
			if rooms[i].Cost != cost {
				continue
			}
			for _, j := range order {
				if i == j || rooms[j].Cost != 0 || adj.Get(i, j) == world.FaceNone {
					continue
				}
				rooms[j].Cost = cost + 1
				rooms[j].From = i
				finish = j
				found = true
			}
		}
		if !found {
			break
		}
	}

	rooms[finish].Kind = world.RoomFull
	rooms[finish].Essential = true
	for i := finish; rooms[i].Cost > 1; i = rooms[i].From {
		rooms[i].Essential = true
	}
	return order, start, finish
}

// assignKinds types every room the path did not already type.
// Essential rooms are never removed.
func assignKinds(rooms []world.Room, r *rand.Rand) {
	for i := range rooms {
		room := &rooms[i]
		if room.Kind != world.RoomNone {
			continue
		}
		if room.Essential {
			if r.Intn(3) == 0 {
				room.Kind = world.RoomTunnel
			} else {
				room.Kind = world.RoomFull
			}
			continue
		}
		switch r.Intn(4) {
		case 0:
			room.Kind = world.RoomTunnel
		case 1:
			room.Kind = world.RoomRemoved
		default:
			room.Kind = world.RoomFull
		}
	}
}

// place puts the player in the start room, one hostile per full room, and
// the exit in the finish room.
func place(w *world.World, p Params, r *rand.Rand) {
	var full []int
	for i := range w.Rooms {
		if w.Rooms[i].Kind == world.RoomFull {
			full = append(full, i)
		}
	}

	count := min(len(full)+1, p.MaxActors)
	w.Actors = make([]world.Actor, 0, count)

	x, y := interiorCell(w.Rooms[w.Start], r)
	w.Actors = append(w.Actors, entities.Spawn(world.ActorPlayer, x, y, r))

	for len(w.Actors) < count {
		room := w.Rooms[full[r.Intn(len(full))]]
		x, y := interiorCell(room, r)
		w.Actors = append(w.Actors, entities.Spawn(world.ActorOrk, x, y, r))
	}

	ex, ey := interiorCell(w.Rooms[w.Finish], r)
	w.Grid.Carve(ex, ey, engineworld.TileExit)
}

// interiorCell returns a uniformly random cell strictly inside the room's walls
func interiorCell(room world.Room, r *rand.Rand) (x, y int) {
	x = rng.Between(r, room.AX+1, room.BX-1)
	y = rng.Between(r, room.AY+1, room.BY-1)
	return x, y
}
