// Package generator builds levels: it partitions the board into rooms,
// picks a critical path through them, carves walls, doors and tunnels,
// and places the player, the hostiles and the exit.
package generator

import (
	"math/rand"

	"darkdelve/pkg/game/world"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(r *rand.Rand) *world.World
	Name() string
}

// Params are the generation tunables.
type Params struct {
	Width, Height int
	MinRoomSize   int
	// MaxRooms caps the room table; partitioning stops once it is nearly full.
	MaxRooms int
	// MaxActors caps the actor table, player included.
	MaxActors int
	// HiddenDoorOdds makes one in N doors to an optional room hidden. Zero disables hidden doors.
	HiddenDoorOdds int
}

// DefaultParams returns the classic 80x24 board.
func DefaultParams() Params {
	return Params{
		Width:       80,
		Height:      24,
		MinRoomSize: 7,
		MaxRooms:    100,
		MaxActors:   100,
	}
}

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = NewBSP(DefaultParams())
