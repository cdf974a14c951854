// Package gameplay provides core game logic: the turn scheduler, actor AI,
// movement and combat.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/state"
)

// Interact moves actor i by dx/dy, or attacks whoever living stands there.
// Walls, empty space and the exit block silently. A player walking into a
// hidden door uncovers it instead of moving, and the game pauses.
func Interact(g *state.Game, i, dx, dy int) {
	w := g.World
	a := &w.Actors[i]
	x, y := a.X+dx, a.Y+dy
	if !w.Grid.IsValidPosition(x, y) {
		return
	}

	if j := w.LivingActorAt(x, y, i); j >= 0 {
		Fight(g, i, j)
		return
	}

	kind := w.Grid.Kind(x, y)
	switch {
	case kind.Walkable():
		a.X, a.Y = x, y
	case kind == engineworld.TileHiddenDoor && a.IsPlayer():
		w.Grid.RevealDoor(x, y)
		logMessage(g, gotext.Get("You discover a hidden door."))
		g.Pause()
	}
}

// logMessage sets the status line
func logMessage(g *state.Game, msg string) {
	g.SetStatus(msg)
}
