package input

import (
	"errors"
	"strings"
	"testing"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"vim keys", "hjkl", []string{"h", "j", "k", "l"}},
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}},
		{"ss3 arrows", "\x1bOA", []string{"arrow_up"}},
		{"enter and space", "\r\n ", []string{"enter", "enter", "space"}},
		{"unknown escape", "\x1b[Zq", []string{"", "q"}},
		{"control byte", "\x01q", []string{"", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newKeyReaderFrom(strings.NewReader(tt.in))
			for i, want := range tt.want {
				got, err := r.ReadKey()
				if err != nil {
					t.Fatalf("key %d: unexpected error %v", i, err)
				}
				if got != want {
					t.Errorf("key %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestReadKey_CtrlC(t *testing.T) {
	r := newKeyReaderFrom(strings.NewReader("\x03"))
	if _, err := r.ReadKey(); !errors.Is(err, ErrInterrupted) {
		t.Errorf("ReadKey() error = %v, want ErrInterrupted", err)
	}
}

func TestReadKey_EOF(t *testing.T) {
	r := newKeyReaderFrom(strings.NewReader(""))
	if _, err := r.ReadKey(); err == nil {
		t.Error("ReadKey() on empty input returned nil error")
	}
}

func TestCodeToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"k", ActionMoveNorth},
		{"arrow_up", ActionMoveNorth},
		{"j", ActionMoveSouth},
		{"h", ActionMoveWest},
		{"l", ActionMoveEast},
		{"r", ActionRegenerate},
		{"v", ActionRevealAll},
		{"m", ActionDebugMapDump},
		{"space", ActionAcknowledge},
		{"q", ActionQuit},
		{"x", ActionNone},
		{"", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := CodeToIntent(DeviceScript, tt.code).Action; got != tt.want {
				t.Errorf("CodeToIntent(%q) = %s, want %s", tt.code, ActionName(got), ActionName(tt.want))
			}
		})
	}
}

func TestMoveDelta(t *testing.T) {
	if _, _, ok := MoveDelta(ActionQuit); ok {
		t.Error("MoveDelta(ActionQuit) ok = true, want false")
	}
	dx, dy, ok := MoveDelta(ActionMoveNorth)
	if !ok || dx != 0 || dy != -1 {
		t.Errorf("MoveDelta(ActionMoveNorth) = (%d,%d,%v), want (0,-1,true)", dx, dy, ok)
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveNorth]
	if len(codes) != 2 || codes[0] != "arrow_up" || codes[1] != "k" {
		t.Errorf("bindings for Move North = %v, want [arrow_up k]", codes)
	}
}
