package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnsupported reports that no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: system clipboard unsupported")

// System reads and writes the operating system clipboard.
//
// The zero value is ready to use.
type System struct{}

// Available reports whether a clipboard utility was found.
func (System) Available() bool { return !sysclip.Unsupported }

func (s System) ReadText() (string, error) {
	if !s.Available() {
		return "", ErrUnsupported
	}
	text, err := sysclip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard: read: %w", err)
	}
	return text, nil
}

func (s System) WriteText(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}
