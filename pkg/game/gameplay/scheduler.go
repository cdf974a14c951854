package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/game/renderer"
	"darkdelve/pkg/game/state"
)

// Run initializes the renderer and ticks until the player quits
func Run(g *state.Game, r renderer.Renderer) {
	r.Init()
	for !g.Quit {
		Tick(g, r)
	}
	p := g.Player()
	logger.Info("game ended",
		"seed", g.Seed,
		"epoch", g.Epoch,
		"turn", p.Turn,
		"health", p.Health,
		"hostiles_left", g.World.LivingHostiles(),
	)
}

// Tick advances the game by one scheduler step. Every living actor gains
// its speed in energy; whoever has banked a full action acts, the player
// first via the renderer, then the others in index order. Pending moves are
// then resolved in index order. Any event the player must see pauses the
// game; while paused nothing accrues and the next key resumes play.
func Tick(g *state.Game, r renderer.Renderer) {
	w := g.World
	player := w.Player()

	if !g.Paused() && player.Health <= 0 {
		g.GameOver = true
		g.Pause()
		logger.Info("player died", "seed", g.Seed, "turn", player.Turn)
	}

	if !g.Paused() {
		for i := range w.Actors {
			if a := &w.Actors[i]; a.Alive() {
				a.Energy += a.Speed
			}
		}
	}

	if g.Paused() {
		if g.GameOver {
			logMessage(g, gotext.Get("You have died. Hit 'q' to quit."))
		}
		r.RenderFrame(g)
		if r.GetInput().Action == input.ActionQuit {
			g.Quit = true
			return
		}
		if !g.GameOver {
			g.Resume()
		}
	} else if player.Ready() {
		player.SpendTurn()
		RefreshVisibility(w)
		r.RenderFrame(g)
		ProcessIntent(g, r.GetInput())
		if g.Quit {
			return
		}
		// Regenerating swaps the level out from under us.
		w = g.World
	}

	if !g.Paused() {
		for i := 1; i < len(w.Actors); i++ {
			a := &w.Actors[i]
			if !a.Alive() || !a.Ready() {
				continue
			}
			a.SpendTurn()
			a.DX, a.DY = DecideMove(w, i)
		}
	}

	for i := range w.Actors {
		a := &w.Actors[i]
		if !a.Alive() || !a.HasMove() {
			continue
		}
		dx, dy := a.TakeMove()
		Interact(g, i, dx, dy)
		if g.Paused() {
			break
		}
	}
}
