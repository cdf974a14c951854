package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/world"
)

// Reachable returns the keys (x + y*width) of every traversable tile
// 4-connected to x/y, including x/y itself when traversable.
func Reachable(g *engineworld.Grid, x, y int) mapset.Set[int] {
	seen := mapset.New[int]()
	if !g.Kind(x, y).Traversable() {
		return seen
	}

	key := func(x, y int) int { return x + y*g.Width() }
	q := queue.New[[2]int]()
	q.Enqueue([2]int{x, y})
	seen.Put(key(x, y))

	for !q.Empty() {
		pos := q.Dequeue()
		for _, d := range engineworld.AllDirections() {
			dx, dy := d.Delta()
			nx, ny := pos[0]+dx, pos[1]+dy
			if !g.Kind(nx, ny).Traversable() || seen.Has(key(nx, ny)) {
				continue
			}
			seen.Put(key(nx, ny))
			q.Enqueue([2]int{nx, ny})
		}
	}
	return seen
}

// Verify checks a generated level is playable: one exit, the player inside
// the start room, every actor standing inside a full room, and every
// essential room connected and reachable from the player over floor, door
// and tunnel tiles.
func Verify(w *world.World) error {
	if len(w.Actors) == 0 {
		return fmt.Errorf("no player")
	}
	if n := w.Grid.Count(engineworld.TileExit); n != 1 {
		return fmt.Errorf("want exactly one exit, found %d", n)
	}

	player := w.Player()
	start := w.Rooms[w.Start]
	if start.Kind != world.RoomFull || !start.Contains(player.X, player.Y) {
		return fmt.Errorf("player at (%d,%d) is not inside full start room %d", player.X, player.Y, w.Start)
	}

	for i, a := range w.Actors {
		if w.RoomAt(a.X, a.Y) < 0 || !w.Grid.Kind(a.X, a.Y).Traversable() {
			return fmt.Errorf("actor %d at (%d,%d) is not inside a full room", i, a.X, a.Y)
		}
	}

	reach := Reachable(w.Grid, player.X, player.Y)
	width := w.Grid.Width()
	for i, room := range w.Rooms {
		if !room.Essential || room.Kind == world.RoomRemoved {
			continue
		}
		if !room.Connected {
			return fmt.Errorf("essential room %d is not connected", i)
		}
		x, y := room.Center()
		if room.Kind == world.RoomFull {
			x, y = room.AX+1, room.AY+1
		}
		if !reach.Has(x + y*width) {
			return fmt.Errorf("essential room %d (%s) unreachable from the player", i, room.Kind)
		}
	}
	return nil
}
