package gameplay

import (
	"testing"

	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
	"darkdelve/pkg/game/world"
)

// roomWorld builds a level that is one full room filling a width x height
// board, with the player at px/py.
func roomWorld(t *testing.T, width, height, px, py int) *world.World {
	t.Helper()
	g := engineworld.NewGrid(width, height)
	room := world.Room{AX: 0, AY: 0, BX: width - 1, BY: height - 1, Kind: world.RoomFull, Cost: 1, From: world.NoRoom, Essential: true, Connected: true}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			kind := engineworld.TileFloor
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				kind = engineworld.TileWall
			}
			g.Carve(x, y, kind)
		}
	}
	return &world.World{
		Grid:      g,
		Rooms:     []world.Room{room},
		Adjacency: world.NewAdjacency(1),
		Order:     []int{0},
		Actors: []world.Actor{{
			X: px, Y: py, Kind: world.ActorPlayer, Level: 1,
			Health: 100, MaxHealth: 100, Speed: 50,
			Strength: 10, Defense: 3, Accuracy: 80, Evasion: 20,
		}},
	}
}

// addOrk appends a hostile at x/y and returns its index
func addOrk(w *world.World, x, y int) int {
	w.Actors = append(w.Actors, world.Actor{
		X: x, Y: y, Kind: world.ActorOrk, Level: 1,
		Health: 20, MaxHealth: 20, Speed: 25,
		Strength: 8, Defense: 3, Accuracy: 70, Evasion: 20,
	})
	return len(w.Actors) - 1
}

// newTestGame wraps a hand-built level in a session
func newTestGame(w *world.World) *state.Game {
	g := state.NewGame(generator.DefaultGenerator, 1)
	g.World = w
	g.Epoch = 1
	return g
}

// discovered returns the set of discovered tile keys
func discovered(g *engineworld.Grid) map[int]bool {
	out := make(map[int]bool)
	g.ForEachTile(func(x, y int, tile *engineworld.Tile) {
		if tile.Discovered {
			out[x+y*g.Width()] = true
		}
	})
	return out
}
