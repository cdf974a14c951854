package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/state"
	"darkdelve/pkg/game/world"
)

// rollSides is the size of the hit roll; a roll below the hit chance hits.
const rollSides = 100

// Attack is the outcome of one swing
type Attack struct {
	Hit    bool
	Damage int
}

// ResolveAttack decides a swing for a given roll in [0, 100). Hit chance is
// attacker accuracy minus defender evasion; damage is strength minus
// defense, at least 1.
func ResolveAttack(att, def world.Actor, roll int) Attack {
	if roll >= att.Accuracy-def.Evasion {
		return Attack{}
	}
	return Attack{Hit: true, Damage: max(1, att.Strength-def.Defense)}
}

// Fight has actor ai swing at actor di
func Fight(g *state.Game, ai, di int) {
	strike(g, ai, di, g.Rand.Intn(rollSides))
}

// strike applies one swing with a known roll. Any swing involving the
// player is reported and pauses the game.
func strike(g *state.Game, ai, di, roll int) Attack {
	att := &g.World.Actors[ai]
	def := &g.World.Actors[di]
	res := ResolveAttack(*att, *def, roll)

	involved := true
	switch {
	case att.IsPlayer() && res.Hit:
		logMessage(g, gotext.Get("You hit the %s for %d damage.", entities.Name(def.Kind), res.Damage))
	case att.IsPlayer():
		logMessage(g, gotext.Get("You miss the %s.", entities.Name(def.Kind)))
	case def.IsPlayer() && res.Hit:
		logMessage(g, gotext.Get("The %s hits you for %d damage.", entities.Name(att.Kind), res.Damage))
	case def.IsPlayer():
		logMessage(g, gotext.Get("The %s misses you.", entities.Name(att.Kind)))
	default:
		involved = false
	}
	if involved {
		g.Pause()
	}

	if res.Hit && def.TakeDamage(res.Damage) {
		logger.Debug("actor killed", "attacker", ai, "defender", di, "turn", att.Turn)
	}
	return res
}
