package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C.
var ErrInterrupted = errors.New("input interrupted")

// KeyReader reads single keypresses from a terminal in raw mode.
type KeyReader struct {
	in io.Reader
	fd int
}

// NewKeyReader returns a reader over stdin.
func NewKeyReader() *KeyReader {
	return &KeyReader{in: os.Stdin, fd: int(os.Stdin.Fd())}
}

// newKeyReaderFrom reads from r without touching terminal modes.
func newKeyReaderFrom(r io.Reader) *KeyReader {
	return &KeyReader{in: r, fd: -1}
}

// readByte reads a single byte
func (k *KeyReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(k.in, buf)
	return buf[0], err
}

// ReadKey blocks for one keypress and returns its code: the printable
// character itself, or one of "arrow_up", "arrow_down", "arrow_left",
// "arrow_right", "enter", "space", "escape". Unknown escape sequences yield "".
func (k *KeyReader) ReadKey() (string, error) {
	if k.fd >= 0 && term.IsTerminal(k.fd) {
		oldState, err := term.MakeRaw(k.fd)
		if err != nil {
			return "", fmt.Errorf("set raw mode: %w", err)
		}
		defer term.Restore(k.fd, oldState)
	}

	b1, err := k.readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	switch {
	case b1 == 3:
		return "", ErrInterrupted
	case b1 == 0x1b:
		return k.readEscape()
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == ' ':
		return "space", nil
	case b1 > 32 && b1 < 127:
		return string(b1), nil
	}
	return "", nil
}

// readEscape decodes the tail of an escape sequence. Both CSI (ESC [) and
// SS3 (ESC O) arrow forms are accepted.
func (k *KeyReader) readEscape() (string, error) {
	b2, err := k.readByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := k.readByte()
	if err != nil {
		return "", nil
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}
