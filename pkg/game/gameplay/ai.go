package gameplay

import (
	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/world"
)

// DecideMove returns the step actor i wants to take. An actor orthogonally
// next to the player steps into it; otherwise it patrols north, east,
// south, west by turn. Steps off the board are dropped.
func DecideMove(w *world.World, i int) (dx, dy int) {
	a := &w.Actors[i]
	p := w.Player()

	switch {
	case p.X == a.X && (p.Y == a.Y-1 || p.Y == a.Y+1):
		dy = p.Y - a.Y
	case p.Y == a.Y && (p.X == a.X-1 || p.X == a.X+1):
		dx = p.X - a.X
	default:
		patrol := engineworld.AllDirections()
		dx, dy = patrol[a.Turn%len(patrol)].Delta()
	}

	if !w.Grid.IsValidPosition(a.X+dx, a.Y+dy) {
		return 0, 0
	}
	return dx, dy
}
