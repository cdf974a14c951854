package gameplay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/renderer"
	"darkdelve/pkg/game/world"
)

func TestTick_EnergyGatesPlayerTurn(t *testing.T) {
	w := roomWorld(t, 10, 7, 2, 3)
	g := newTestGame(w)
	r := renderer.NewHeadless("l")

	Tick(g, r)
	assert.Equal(t, 50, w.Player().Energy)
	assert.Zero(t, r.Frames, "no frame until the player can act")

	Tick(g, r)
	p := w.Player()
	assert.Equal(t, 1, r.Frames)
	assert.Equal(t, 1, p.Turn)
	assert.Zero(t, p.Energy)
	assert.Equal(t, 3, p.X, "move resolves in the same tick")
	assert.False(t, p.HasMove())
}

func TestTick_SpeedSetsActionRate(t *testing.T) {
	w := roomWorld(t, 30, 15, 1, 1)
	ork := addOrk(w, 20, 10)
	g := newTestGame(w)

	const ticks = 400
	codes := make([]string, ticks)
	for i := range codes {
		codes[i] = "x"
	}
	r := renderer.NewHeadless(codes...)
	for i := 0; i < ticks; i++ {
		Tick(g, r)
	}

	require.False(t, g.Paused())
	assert.Equal(t, 200, w.Player().Turn, "speed 50 acts every other tick")
	assert.Equal(t, 100, w.Actors[ork].Turn, "speed 25 acts every fourth tick")
	assert.Equal(t, 2*w.Actors[ork].Turn, w.Player().Turn)
}

func TestTick_PausedAccruesNothing(t *testing.T) {
	w := roomWorld(t, 10, 7, 2, 3)
	ork := addOrk(w, 7, 3)
	g := newTestGame(w)
	g.Pause()
	r := renderer.NewHeadless("x")

	Tick(g, r)

	assert.False(t, g.Paused(), "any key resumes")
	assert.Equal(t, 1, r.Frames)
	assert.Zero(t, w.Player().Energy)
	assert.Zero(t, w.Actors[ork].Energy)
}

func TestTick_QuitWhilePaused(t *testing.T) {
	g := newTestGame(roomWorld(t, 10, 7, 2, 3))
	g.Pause()

	Tick(g, renderer.NewHeadless("q"))

	assert.True(t, g.Quit)
}

func TestTick_HiddenDoorPausesUntilAcknowledged(t *testing.T) {
	w := roomWorld(t, 10, 7, 1, 3)
	w.Grid.Carve(0, 3, engineworld.TileHiddenDoor)
	w.Player().Energy = 50
	g := newTestGame(w)
	r := renderer.NewHeadless("h", "space")

	Tick(g, r)
	require.True(t, g.Paused())
	assert.Equal(t, engineworld.TileDoor, w.Grid.Kind(0, 3))
	assert.Equal(t, 1, w.Player().X)

	Tick(g, r)
	assert.False(t, g.Paused())
	assert.Equal(t, []string{"You discover a hidden door."}, r.Statuses)
	assert.Equal(t, 1, w.Player().X)
}

func TestTick_PauseStopsFurtherMoves(t *testing.T) {
	w := roomWorld(t, 10, 7, 4, 3)
	east := addOrk(w, 5, 3)
	west := addOrk(w, 3, 3)
	w.Actors[east].Energy = 75
	w.Actors[west].Energy = 75
	g := newTestGame(w)

	Tick(g, renderer.NewHeadless())

	require.True(t, g.Paused(), "the first swing at the player pauses")
	assert.False(t, w.Actors[east].HasMove())
	assert.Equal(t, 1, w.Actors[west].DX, "the second swing waits for the next tick")
	assert.Equal(t, 1, w.Actors[west].Turn)
}

func TestTick_DeathEndsTheGame(t *testing.T) {
	w := roomWorld(t, 10, 7, 4, 3)
	w.Player().Health = 0
	g := newTestGame(w)
	r := renderer.NewHeadless("space", "l", "q")

	Tick(g, r)
	assert.True(t, g.GameOver)
	assert.True(t, g.Paused())

	Tick(g, r)
	assert.True(t, g.Paused(), "only quit leaves the death screen")
	assert.Equal(t, 4, w.Player().X)

	Tick(g, r)
	assert.True(t, g.Quit)
	require.Len(t, r.Statuses, 3)
	for _, msg := range r.Statuses {
		assert.Equal(t, "You have died. Hit 'q' to quit.", msg)
	}
}

func TestTick_RegenerateSwapsLevel(t *testing.T) {
	g := NewGame(generator.DefaultGenerator, 11)
	old := g.World
	g.Player().Energy = world.EnergyThreshold

	Tick(g, renderer.NewHeadless("r"))

	assert.NotSame(t, old, g.World)
	assert.Equal(t, 2, g.Epoch)
	assert.Zero(t, g.Player().Turn)
}

func TestRun_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	codes := make([]string, 3000)
	keys := []string{"h", "j", "k", "l", "space"}
	for i := range codes {
		codes[i] = keys[rng.Intn(len(keys))]
	}
	r := renderer.NewHeadless(codes...)
	g := NewGame(generator.DefaultGenerator, 5)
	epoch := g.Epoch
	seen := discovered(g.World.Grid)

	for ticks := 0; !g.Quit && ticks < 50000; ticks++ {
		Tick(g, r)

		require.Equal(t, epoch, g.Epoch)
		for i, a := range g.World.Actors {
			require.GreaterOrEqual(t, a.Health, 0, "actor %d", i)
			require.LessOrEqual(t, a.Health, a.MaxHealth, "actor %d", i)
			require.Equal(t, a.Health == 0, a.Kind == world.ActorCorpse, "actor %d", i)
			if a.Alive() {
				// The exit may be carved under a spawn point.
				require.True(t, g.World.Grid.Kind(a.X, a.Y).Traversable(), "actor %d on %s", i, g.World.Grid.Kind(a.X, a.Y))
			}
		}
		now := discovered(g.World.Grid)
		for key := range seen {
			require.True(t, now[key], "tile %d forgotten", key)
		}
		seen = now
	}
	assert.True(t, g.Quit)
}

func TestRun_Deterministic(t *testing.T) {
	play := func() *world.World {
		g := NewGame(generator.DefaultGenerator, 99)
		Run(g, renderer.NewHeadless("l", "l", "j", "space", "k", "h", "h", "j"))
		return g.World
	}
	a, b := play(), play()
	assert.Equal(t, a.Actors, b.Actors)
	assert.Equal(t, discovered(a.Grid), discovered(b.Grid))
}

func TestRegenerate_ResetsLevelState(t *testing.T) {
	g := NewGame(generator.DefaultGenerator, 3)
	RevealAll(g.World)
	g.GameOver = true
	g.Pause()

	Regenerate(g)

	assert.Equal(t, 2, g.Epoch)
	assert.False(t, g.GameOver)
	assert.False(t, g.Paused())
	assert.Empty(t, discovered(g.World.Grid), "a fresh level starts unexplored")
}
