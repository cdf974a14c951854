package world

import "darkdelve/pkg/engine/world"

// World is one generated level. Regenerating builds a fresh World and swaps
// it in whole; nothing is shared between epochs.
type World struct {
	Grid      *world.Grid
	Rooms     []Room
	Actors    []Actor
	Adjacency *Adjacency

	// Order is the shuffled room order used for the path sweep and carving.
	Order  []int
	Start  int
	Finish int
}

// Player returns the player actor
func (w *World) Player() *Actor {
	return &w.Actors[PlayerIndex]
}

// LivingActorAt returns the index of a living actor at x/y other than skip, or -1.
func (w *World) LivingActorAt(x, y, skip int) int {
	for i := range w.Actors {
		if i == skip {
			continue
		}
		a := &w.Actors[i]
		if a.Alive() && a.X == x && a.Y == y {
			return i
		}
	}
	return -1
}

// RoomAt returns the index of the first full room whose rectangle
// contains x/y, or -1.
func (w *World) RoomAt(x, y int) int {
	for i := range w.Rooms {
		if w.Rooms[i].Kind == RoomFull && w.Rooms[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// CountRooms returns how many rooms have the given kind
func (w *World) CountRooms(kind RoomKind) int {
	n := 0
	for i := range w.Rooms {
		if w.Rooms[i].Kind == kind {
			n++
		}
	}
	return n
}

// LivingHostiles returns how many non-player actors are still alive
func (w *World) LivingHostiles() int {
	n := 0
	for i := range w.Actors {
		if i != PlayerIndex && w.Actors[i].Alive() {
			n++
		}
	}
	return n
}
