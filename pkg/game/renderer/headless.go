package renderer

import (
	"darkdelve/pkg/engine/input"
	"darkdelve/pkg/game/state"
)

// Headless is a renderer that draws nothing and replays a fixed list of
// key codes. It answers Quit once the script runs out.
type Headless struct {
	Codes []string

	// Frames counts RenderFrame calls
	Frames int
	// Statuses collects every non-empty status line that was rendered
	Statuses []string
}

// NewHeadless returns a headless renderer that will replay codes in order.
func NewHeadless(codes ...string) *Headless {
	return &Headless{Codes: codes}
}

// Init does nothing
func (h *Headless) Init() {}

// RenderFrame records and consumes the status line
func (h *Headless) RenderFrame(g *state.Game) {
	h.Frames++
	if msg := g.TakeStatus(); msg != "" {
		h.Statuses = append(h.Statuses, msg)
	}
}

// GetInput returns the next scripted intent
func (h *Headless) GetInput() input.Intent {
	if len(h.Codes) == 0 {
		return input.Intent{Action: input.ActionQuit}
	}
	code := h.Codes[0]
	h.Codes = h.Codes[1:]
	return input.CodeToIntent(input.DeviceScript, code)
}
