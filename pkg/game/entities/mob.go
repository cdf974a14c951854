// Package entities holds the stat templates actors are rolled from.
package entities

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/rng"
	"darkdelve/pkg/game/world"
)

// Template is the stat block an actor kind is rolled from.
// Bonus fields are exclusive upper bounds for a uniform extra roll.
type Template struct {
	Speed       int
	BaseHealth  int
	HealthBonus int
}

var templates = map[world.ActorKind]Template{
	world.ActorPlayer: {Speed: 50, BaseHealth: 100},
	world.ActorOrk:    {Speed: 25, BaseHealth: 9, HealthBonus: 22},
}

// Shared combat rolls: strength 6-10, defense 1-5, accuracy 51-100, evasion 1-50.
const (
	baseStrength  = 6
	strengthBonus = 5
	baseDefense   = 1
	defenseBonus  = 5
	baseAccuracy  = 51
	accuracyBonus = 50
	baseEvasion   = 1
	evasionBonus  = 50
)

// Name returns the display name of an actor kind
func Name(kind world.ActorKind) string {
	switch kind {
	case world.ActorPlayer:
		return gotext.Get("player")
	case world.ActorCorpse:
		return gotext.Get("corpse")
	case world.ActorOrk:
		return gotext.Get("ork")
	default:
		return "n/a"
	}
}

// Roll fills in a level-1 stat block for a, whose Kind must already be set.
// Kinds without a template roll as orks.
func Roll(a *world.Actor, r *rand.Rand) {
	t, ok := templates[a.Kind]
	if !ok {
		t = templates[world.ActorOrk]
	}

	a.Level = 1
	a.Speed = t.Speed
	a.MaxHealth = t.BaseHealth + rng.Int(r, t.HealthBonus)
	a.Health = a.MaxHealth
	a.Strength = baseStrength + rng.Int(r, strengthBonus)
	a.Defense = baseDefense + rng.Int(r, defenseBonus)
	a.Accuracy = baseAccuracy + rng.Int(r, accuracyBonus)
	a.Evasion = baseEvasion + rng.Int(r, evasionBonus)
}

// Spawn places a freshly rolled actor of the given kind at x/y.
func Spawn(kind world.ActorKind, x, y int, r *rand.Rand) world.Actor {
	a := world.Actor{X: x, Y: y, Kind: kind}
	Roll(&a, r)
	return a
}
