// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/entities"
	"darkdelve/pkg/game/state"
	"darkdelve/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// Symbol returns the single-character symbol for a tile kind (no actor overlay).
// Hidden doors are shown as '?' so the dump tells them apart from walls.
func Symbol(kind engineworld.TileKind) rune {
	switch kind {
	case engineworld.TileFloor:
		return '.'
	case engineworld.TileWall:
		return '#'
	case engineworld.TileDoor:
		return '+'
	case engineworld.TileHiddenDoor:
		return '?'
	case engineworld.TileTunnel:
		return ','
	case engineworld.TileExit:
		return '%'
	default:
		return ' '
	}
}

// WriteMap writes the level as text, one row per line, with living actors
// drawn on top ('@' player, 'K' hostile). If revealedOnly is true,
// undiscovered tiles and actors on them are left blank.
func WriteMap(out io.Writer, w *world.World, revealedOnly bool) error {
	bw := bufio.NewWriter(out)
	g := w.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := g.GetTile(x, y)
			if revealedOnly && !t.Discovered {
				bw.WriteRune(' ')
				continue
			}
			r := Symbol(t.Kind)
			if i := w.LivingActorAt(x, y, -1); i >= 0 {
				r = 'K'
				if i == world.PlayerIndex {
					r = '@'
				}
			}
			bw.WriteRune(r)
		}
		bw.WriteRune('\n')
	}
	return bw.Flush()
}

// WriteDump writes a full debug dump: metadata, legend, revealed-only map,
// fully-revealed map, the room table and the actor table.
func WriteDump(out io.Writer, g *state.Game) error {
	w := g.World
	if w == nil {
		return fmt.Errorf("no level")
	}
	player := w.Player()

	fmt.Fprintln(out, "=== MAP DUMP DEBUG (level layout, rooms, actors) ===")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "--- Metadata ---")
	fmt.Fprintf(out, "generator: %s\n", g.Generator.Name())
	fmt.Fprintf(out, "seed: %d\n", g.Seed)
	fmt.Fprintf(out, "epoch: %d\n", g.Epoch)
	fmt.Fprintf(out, "width: %d\n", w.Grid.Width())
	fmt.Fprintf(out, "height: %d\n", w.Grid.Height())
	fmt.Fprintf(out, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(out, "player: %d,%d\n", player.X, player.Y)
	fmt.Fprintf(out, "start_room: %d\n", w.Start)
	fmt.Fprintf(out, "finish_room: %d\n", w.Finish)
	fmt.Fprintf(out, "mode: %s\n", g.Mode)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Legend ---")
	fmt.Fprintln(out, ". = floor  # = wall  + = door  ? = hidden door  , = tunnel  % = exit  @ = player  K = hostile")
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Map (discovered tiles only) ---")
	if err := WriteMap(out, w, true); err != nil {
		return err
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Map (full layout) ---")
	if err := WriteMap(out, w, false); err != nil {
		return err
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Rooms ---")
	for i, r := range w.Rooms {
		fmt.Fprintf(out, "  room: %d rect: %d,%d-%d,%d kind: %s cost: %d from: %d essential: %v connected: %v\n",
			i, r.AX, r.AY, r.BX, r.BY, r.Kind, r.Cost, r.From, r.Essential, r.Connected)
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Actors ---")
	for i, a := range w.Actors {
		fmt.Fprintf(out, "  actor: %d name: %s pos: %d,%d health: %d/%d str: %d def: %d acc: %d eva: %d speed: %d energy: %d turn: %d\n",
			i, entities.Name(a.Kind), a.X, a.Y, a.Health, a.MaxHealth, a.Strength, a.Defense, a.Accuracy, a.Evasion, a.Speed, a.Energy, a.Turn)
	}
	fmt.Fprintln(out, "")

	_, err := fmt.Fprintln(out, "=== END MAP DUMP ===")
	return err
}

// DumpMapToFile writes WriteDump's output to map.txt in the working
// directory and returns the absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("creating map dump: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return absPath, fmt.Errorf("writing map dump: %w", err)
	}
	return absPath, f.Sync()
}
