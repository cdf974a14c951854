package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// CheckFits returns an error if the terminal is smaller than width x height.
func CheckFits(width, height int) error {
	w, h := GetSize()
	if w < width || h < height {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, width, height)
	}
	return nil
}

// ClearScreen homes the cursor and erases the screen. Renderers prepend it
// to a frame so the whole frame goes out in one write.
const ClearScreen = "\033[H\033[2J"

// HideCursor hides the terminal cursor until ShowCursor is called.
func HideCursor() {
	fmt.Print("\033[?25l")
}

// ShowCursor makes the terminal cursor visible again.
func ShowCursor() {
	fmt.Print("\033[?25h")
}
