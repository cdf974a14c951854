package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/state"
	"darkdelve/pkg/game/world"
)

func tinyWorld() *world.World {
	g := engineworld.NewGrid(4, 3)
	g.Carve(0, 1, engineworld.TileWall)
	g.Carve(1, 1, engineworld.TileFloor)
	g.Carve(2, 1, engineworld.TileDoor)
	g.Carve(3, 1, engineworld.TileExit)
	g.GetTile(0, 1).See()
	g.GetTile(1, 1).See()
	return &world.World{
		Grid: g,
		Actors: []world.Actor{
			{X: 1, Y: 1, Kind: world.ActorPlayer},
			{X: 2, Y: 1, Kind: world.ActorOrk},
		},
	}
}

func TestWriteMap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, tinyWorld(), false))
	assert.Equal(t, "    \n#@K%\n    \n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMap(&buf, tinyWorld(), true))
	assert.Equal(t, "    \n#@  \n    \n", buf.String(), "undiscovered tiles stay blank")
}

func TestWriteMap_CorpsesNotDrawn(t *testing.T) {
	w := tinyWorld()
	w.Actors[1].Kind = world.ActorCorpse

	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, w, false))
	assert.Equal(t, "#@+%", strings.Split(buf.String(), "\n")[1])
}

func TestWriteDump(t *testing.T) {
	g := state.NewGame(generator.DefaultGenerator, 11)
	assert.Error(t, WriteDump(&bytes.Buffer{}, g), "dump without a level fails")

	w := tinyWorld()
	w.Rooms = []world.Room{{AX: 0, AY: 0, BX: 3, BY: 2, Kind: world.RoomFull, Cost: 1, From: world.NoRoom, Essential: true}}
	g.World = w

	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, g))
	out := buf.String()
	assert.Contains(t, out, "seed: 11")
	assert.Contains(t, out, "room: 0 rect: 0,0-3,2 kind: full")
	assert.Contains(t, out, "actor: 1 name: ork pos: 2,1")
	assert.True(t, strings.HasSuffix(out, "=== END MAP DUMP ===\n"))
}

func TestDumpMapToFile(t *testing.T) {
	chdirForTest(t, t.TempDir())

	g := state.NewGame(generator.DefaultGenerator, 11)
	g.World = tinyWorld()

	path, err := DumpMapToFile(g)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--- Map (full layout) ---")
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
