package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "darkdelve/pkg/engine/input"
	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/game/devtools"
	"darkdelve/pkg/game/state"
)

// ProcessIntent applies the player's choice for their turn. Anything that
// is not a command passes the turn.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if dx, dy, ok := engineinput.MoveDelta(intent.Action); ok {
		p := g.Player()
		p.DX, p.DY = dx, dy
		return
	}

	switch intent.Action {
	case engineinput.ActionRegenerate:
		Regenerate(g)

	case engineinput.ActionRevealAll:
		RevealAll(g.World)
		logger.Debug("map revealed", "epoch", g.Epoch)

	case engineinput.ActionDebugMapDump:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			logger.Error("map dump failed", "error", err)
			logMessage(g, gotext.Get("Map dump failed: %v", err))
		} else {
			logMessage(g, gotext.Get("Map dumped to %s", path))
		}

	case engineinput.ActionQuit:
		g.Quit = true
	}
}
