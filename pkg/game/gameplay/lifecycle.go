package gameplay

import (
	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
)

// NewGame starts a session and generates its first level. A zero seed
// picks one from the clock.
func NewGame(gen generator.LevelGenerator, seed int64) *state.Game {
	g := state.NewGame(gen, seed)
	logger.Info("new game", "generator", gen.Name(), "seed", g.Seed)
	Regenerate(g)
	return g
}

// Regenerate replaces the level with a freshly generated one and resumes
// play. The new level is complete before it is swapped in.
func Regenerate(g *state.Game) {
	w := g.Generator.Generate(g.Rand)
	g.World = w
	g.Epoch++
	g.GameOver = false
	g.Resume()

	logger.Info("level ready",
		"epoch", g.Epoch,
		"rooms", len(w.Rooms),
		"actors", len(w.Actors),
		"hostiles", w.LivingHostiles(),
	)
}
