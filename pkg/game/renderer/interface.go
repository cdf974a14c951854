package renderer

import (
	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StyleDoor
	StyleVisible
	StyleRemembered
	StyleRememberedFloor
	StylePlayer
	StyleEnemy
	StyleStatus
)

// Renderer defines the interface for game rendering backends.
// The game loop owns the session; a renderer only reads it.
type Renderer interface {
	// Init initializes the renderer (colors, cursor, etc.)
	Init()

	// RenderFrame draws the level, the stats line and the pending status
	// line, consuming the status line via g.TakeStatus.
	RenderFrame(g *state.Game)

	// GetInput blocks until the player chooses an intent
	GetInput() input.Intent
}
