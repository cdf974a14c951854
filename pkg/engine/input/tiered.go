package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	// DeviceTerminal is a key read from the controlling terminal.
	DeviceTerminal Device = iota
	// DeviceScript is a canned sequence of codes, used by tests and replays.
	DeviceScript
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Level
	ActionRegenerate
	ActionRevealAll

	// Meta / UI
	ActionDebugMapDump
	ActionAcknowledge // Dismiss a paused status line
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "k", "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// The terminal reader hands over one key per read, so every RawInput is
// already debounced; the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (Vim, arrows)
	"k":           ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"j":           ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"h":           ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"l":           ActionMoveEast,
	"arrow_right": ActionMoveEast,

	// Level
	"r": ActionRegenerate,
	"v": ActionRevealAll,

	// Debug
	"m": ActionDebugMapDump,

	// Acknowledge
	"space": ActionAcknowledge,
	"enter": ActionAcknowledge,

	// Quit
	"q": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// CodeToIntent runs a code through every layer at once.
func CodeToIntent(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionRegenerate:
		return "Regenerate"
	case ActionRevealAll:
		return "Reveal Map"
	case ActionDebugMapDump:
		return "Dump Map"
	case ActionAcknowledge:
		return "Acknowledge"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// MoveDelta returns the step for a movement action, and false for any other action.
func MoveDelta(a Action) (dx, dy int, ok bool) {
	switch a {
	case ActionMoveNorth:
		return 0, -1, true
	case ActionMoveSouth:
		return 0, 1, true
	case ActionMoveWest:
		return -1, 0, true
	case ActionMoveEast:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
