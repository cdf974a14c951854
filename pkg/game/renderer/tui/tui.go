package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/engine/terminal"
	engineworld "darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/renderer"
	"darkdelve/pkg/game/state"
	"darkdelve/pkg/game/world"
)

// Icon constants
const (
	PlayerIcon = "@"
	EnemyIcon  = "K"
	IconFloor  = "."
	IconDoor   = "+"
	IconTunnel = "#"
	IconExit   = "%"
	IconVoid   = " "
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor           color.Style
	colorWall            color.Style
	colorDoor            color.Style
	colorVisible         color.Style
	colorRemembered      color.Style
	colorRememberedFloor color.Style
	colorPlayer          color.Style
	colorEnemy           color.Style
	colorStatus          color.Style

	keys *input.KeyReader
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{keys: input.NewKeyReader()}
}

// Init initializes the TUI renderer (colors, cursor)
func (t *TUIRenderer) Init() {
	t.colorFloor = color.Style{color.FgCyan}
	t.colorWall = color.Style{color.FgCyan}
	t.colorDoor = color.Style{color.FgWhite}
	t.colorVisible = color.Style{color.FgWhite}
	t.colorRemembered = color.Style{color.FgGray}
	t.colorRememberedFloor = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgGreen, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorStatus = color.Style{color.FgWhite, color.OpBold}

	terminal.HideCursor()
}

// Close restores the cursor
func (t *TUIRenderer) Close() {
	terminal.ShowCursor()
	fmt.Println()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleVisible:
		return t.colorVisible.Sprint(text)
	case renderer.StyleRemembered:
		return t.colorRemembered.Sprint(text)
	case renderer.StyleRememberedFloor:
		return t.colorRememberedFloor.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleStatus:
		return t.colorStatus.Sprint(text)
	default:
		return text
	}
}

// GetInput gets user input from the terminal and returns a high-level Intent.
// Ctrl+C and a closed stdin both quit.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := t.keys.ReadKey()
	if err != nil {
		if !errors.Is(err, input.ErrInterrupted) {
			logger.Error("reading key", "error", err)
		}
		return input.Intent{Action: input.ActionQuit}
	}
	return input.CodeToIntent(input.DeviceTerminal, code)
}

// RenderFrame renders a complete game frame: status line, board, stats line
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	var sb strings.Builder
	sb.WriteString(terminal.ClearScreen)

	sb.WriteString(t.StyleText(g.TakeStatus(), renderer.StyleStatus))
	sb.WriteString("\r\n")

	w := g.World
	for y := 0; y < w.Grid.Height(); y++ {
		for x := 0; x < w.Grid.Width(); x++ {
			sb.WriteString(t.renderCell(w, x, y))
		}
		sb.WriteString("\r\n")
	}

	p := w.Player()
	sb.WriteString(gotext.Get("Turn:%d Health:%d/%d Str:%d Def:%d Acc:%d Eva:%d",
		p.Turn, p.Health, p.MaxHealth, p.Strength, p.Defense, p.Accuracy, p.Evasion))
	sb.WriteString("\r\n")
	sb.WriteString(t.StyleText(HelpLine(), renderer.StyleNormal))
	sb.WriteString("\r\n")

	os.Stdout.WriteString(sb.String())
}

// renderCell returns the styled glyph for one board position
func (t *TUIRenderer) renderCell(w *world.World, x, y int) string {
	p := w.Player()
	if p.X == x && p.Y == y {
		return t.StyleText(PlayerIcon, renderer.StylePlayer)
	}

	tile := w.Grid.GetTile(x, y)
	if i := w.LivingActorAt(x, y, world.PlayerIndex); i >= 0 && tile.Visible {
		return t.StyleText(EnemyIcon, renderer.StyleEnemy)
	}

	glyph := TileGlyph(w.Grid, x, y)
	if glyph == IconVoid {
		return IconVoid
	}
	return t.StyleText(glyph, tileStyle(tile))
}

// tileStyle picks the colour for a discovered tile
func tileStyle(tile *engineworld.Tile) renderer.TextStyle {
	if !tile.Visible {
		if tile.Kind == engineworld.TileFloor {
			return renderer.StyleRememberedFloor
		}
		return renderer.StyleRemembered
	}
	switch tile.Kind {
	case engineworld.TileFloor:
		return renderer.StyleFloor
	case engineworld.TileWall, engineworld.TileHiddenDoor:
		return renderer.StyleWall
	case engineworld.TileDoor:
		return renderer.StyleDoor
	default:
		return renderer.StyleVisible
	}
}

// TileGlyph returns the unstyled glyph for the tile at x/y. Undiscovered
// tiles are blank; walls and hidden doors join up with discovered wall
// neighbours.
func TileGlyph(g *engineworld.Grid, x, y int) string {
	tile := g.GetTile(x, y)
	if tile == nil || !tile.Discovered {
		return IconVoid
	}
	switch tile.Kind {
	case engineworld.TileFloor:
		return IconFloor
	case engineworld.TileDoor:
		return IconDoor
	case engineworld.TileTunnel:
		return IconTunnel
	case engineworld.TileExit:
		return IconExit
	case engineworld.TileWall, engineworld.TileHiddenDoor:
		return WallGlyph(
			discoveredWall(g, x-1, y),
			discoveredWall(g, x+1, y),
			discoveredWall(g, x, y-1),
			discoveredWall(g, x, y+1),
		)
	default:
		return IconVoid
	}
}

func discoveredWall(g *engineworld.Grid, x, y int) bool {
	tile := g.GetTile(x, y)
	return tile != nil && tile.Discovered && tile.Kind.WallLike()
}

// WallGlyph returns the box-drawing character joining a wall to the
// neighbouring walls on the given sides. A wall with no neighbours is blank.
func WallGlyph(left, right, up, down bool) string {
	switch {
	case left && right && up && down:
		return "┼"
	case left && right && up:
		return "┴"
	case left && right && down:
		return "┬"
	case left && up && down:
		return "┤"
	case right && up && down:
		return "├"
	case left && up:
		return "┘"
	case right && up:
		return "└"
	case right && down:
		return "┌"
	case left && down:
		return "┐"
	case left && right:
		return "─"
	case up && down:
		return "│"
	case up:
		return "┴"
	case down:
		return "┬"
	case left:
		return "┤"
	case right:
		return "├"
	default:
		return IconVoid
	}
}

// CheckSize returns an error if the terminal cannot fit the board plus the
// status, stats and help lines.
func CheckSize(width, height int) error {
	return terminal.CheckFits(width, height+3)
}

var (
	moveActions = []input.Action{input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast}
	helpActions = []input.Action{input.ActionRegenerate, input.ActionRevealAll, input.ActionDebugMapDump, input.ActionQuit}
)

// HelpLine lists the shortest key for each command, movement keys grouped
func HelpLine() string {
	bindings := input.GetBindingsByAction()

	keys := make([]string, 0, len(moveActions))
	for _, a := range moveActions {
		keys = append(keys, shortestCode(bindings[a]))
	}
	parts := []string{strings.Join(keys, "/") + " " + gotext.Get("Move")}

	for _, a := range helpActions {
		if code := shortestCode(bindings[a]); code != "" {
			parts = append(parts, code+" "+gotext.Get(input.ActionName(a)))
		}
	}
	return strings.Join(parts, "  ")
}

// shortestCode picks the shortest of a sorted code list, the first on a tie
func shortestCode(codes []string) string {
	best := ""
	for _, c := range codes {
		if best == "" || len(c) < len(best) {
			best = c
		}
	}
	return best
}
