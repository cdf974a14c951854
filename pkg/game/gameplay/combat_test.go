package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkdelve/pkg/game/world"
)

func TestResolveAttack(t *testing.T) {
	att := world.Actor{Accuracy: 80, Strength: 10}
	def := world.Actor{Evasion: 20, Defense: 3}

	tests := []struct {
		name string
		att  world.Actor
		def  world.Actor
		roll int
		want Attack
	}{
		{"roll at chance misses", att, def, 60, Attack{}},
		{"roll above chance misses", att, def, 99, Attack{}},
		{"roll below chance hits", att, def, 59, Attack{Hit: true, Damage: 7}},
		{"lowest roll hits", att, def, 0, Attack{Hit: true, Damage: 7}},
		{"damage is at least one", world.Actor{Accuracy: 80, Strength: 2}, def, 0, Attack{Hit: true, Damage: 1}},
		{"no chance never hits", world.Actor{Accuracy: 10}, world.Actor{Evasion: 50}, 0, Attack{}},
		{"chance over 100 always hits", world.Actor{Accuracy: 150, Strength: 5}, world.Actor{Defense: 1}, 99, Attack{Hit: true, Damage: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAttack(tt.att, tt.def, tt.roll))
		})
	}
}

func TestStrike_MissLeavesHealth(t *testing.T) {
	w := roomWorld(t, 10, 7, 4, 3)
	ork := addOrk(w, 5, 3)
	g := newTestGame(w)

	res := strike(g, world.PlayerIndex, ork, 60)

	assert.False(t, res.Hit)
	assert.Equal(t, 20, w.Actors[ork].Health)
	assert.Equal(t, "You miss the ork.", g.Status())
	assert.True(t, g.Paused())
}

func TestStrike_HitDealsStrengthMinusDefense(t *testing.T) {
	w := roomWorld(t, 10, 7, 4, 3)
	ork := addOrk(w, 5, 3)
	g := newTestGame(w)

	res := strike(g, world.PlayerIndex, ork, 10)

	require.True(t, res.Hit)
	assert.Equal(t, 13, w.Actors[ork].Health, "10 strength against 3 defense deals 7")
	assert.Equal(t, "You hit the ork for 7 damage.", g.Status())
	assert.True(t, g.Paused())
}

func TestStrike_HostileOnPlayer(t *testing.T) {
	w := roomWorld(t, 10, 7, 4, 3)
	ork := addOrk(w, 5, 3)
	g := newTestGame(w)

	strike(g, ork, world.PlayerIndex, 0)
	assert.Equal(t, "The ork hits you for 5 damage.", g.Status())
	assert.Equal(t, 95, w.Player().Health)

	g.Resume()
	strike(g, ork, world.PlayerIndex, 99)
	assert.Equal(t, "The ork misses you.", g.Status())
	assert.True(t, g.Paused())
}

func TestStrike_HostilesFightQuietly(t *testing.T) {
	w := roomWorld(t, 10, 7, 2, 2)
	a := addOrk(w, 5, 3)
	b := addOrk(w, 6, 3)
	g := newTestGame(w)

	strike(g, a, b, 0)
	assert.Empty(t, g.Status())
	assert.False(t, g.Paused())
	assert.Equal(t, 15, w.Actors[b].Health)
}

func TestStrike_KillMakesCorpse(t *testing.T) {
	w := roomWorld(t, 10, 7, 4, 3)
	ork := addOrk(w, 5, 3)
	w.Actors[ork].Health = 5
	g := newTestGame(w)

	strike(g, world.PlayerIndex, ork, 0)

	assert.Equal(t, 0, w.Actors[ork].Health)
	assert.Equal(t, world.ActorCorpse, w.Actors[ork].Kind)
	assert.Len(t, w.Actors, 2, "corpses stay in the table")
}

func TestFight_UsesSessionRand(t *testing.T) {
	run := func() world.Actor {
		w := roomWorld(t, 10, 7, 4, 3)
		ork := addOrk(w, 5, 3)
		g := newTestGame(w)
		for i := 0; i < 3; i++ {
			Fight(g, world.PlayerIndex, ork)
		}
		return w.Actors[ork]
	}
	assert.Equal(t, run(), run(), "same seed, same outcome")
}
