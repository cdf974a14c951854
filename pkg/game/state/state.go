// Package state holds the mutable game session the scheduler drives.
package state

import (
	"math/rand"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/world"
)

// Mode is the scheduler state
type Mode int

// Scheduler modes
const (
	ModeRunning Mode = iota
	ModePaused
)

// String returns the string representation of a mode
func (m Mode) String() string {
	if m == ModePaused {
		return "paused"
	}
	return "running"
}

// Game represents one play session
type Game struct {
	// World is the current level. Regenerating replaces it.
	World *world.World

	Mode Mode

	// GameOver is set once the player has died; only quit is accepted after.
	GameOver bool

	// Quit ends the run loop
	Quit bool

	// Epoch counts levels generated this session, starting at 1
	Epoch int

	Generator generator.LevelGenerator
	Rand      *rand.Rand
	Seed      int64

	status string
}

// NewGame creates a session without a level. A zero seed picks one from the clock.
func NewGame(gen generator.LevelGenerator, seed int64) *Game {
	r, seed := rng.New(seed)
	return &Game{
		Mode:      ModeRunning,
		Generator: gen,
		Rand:      r,
		Seed:      seed,
	}
}

// Player returns the player actor of the current level
func (g *Game) Player() *world.Actor {
	return g.World.Player()
}

// Paused returns true while the game waits for an acknowledgment
func (g *Game) Paused() bool {
	return g.Mode == ModePaused
}

// Pause stops actors from acting until the player acknowledges
func (g *Game) Pause() {
	g.Mode = ModePaused
}

// Resume returns to normal play
func (g *Game) Resume() {
	g.Mode = ModeRunning
}

// SetStatus replaces the status line. Only the latest message is kept.
func (g *Game) SetStatus(msg string) {
	g.status = msg
}

// Status returns the pending status line without clearing it
func (g *Game) Status() string {
	return g.status
}

// TakeStatus returns the pending status line and clears it
func (g *Game) TakeStatus() string {
	msg := g.status
	g.status = ""
	return msg
}
