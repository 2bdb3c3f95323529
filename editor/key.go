package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a terminal key press in a form independent of the input library.
//
// Name holds the key name in Bubble Tea notation ("left", "ctrl+a",
// "shift+home") for non-character keys. Character keys leave Name empty
// and carry Runes.
type Key struct {
	Name  string
	Runes []rune
	Alt   bool
	Paste bool

	// Code is the control character the key produces, such as 0x01 for
	// ctrl+a. Zero when the key has none.
	Code rune
}

// String returns the binding name of k, as used by key.Binding.
func (k Key) String() string {
	name := k.Name
	if name == "" {
		name = string(k.Runes)
	}
	if k.Alt {
		return "alt+" + name
	}
	return name
}

// Printable reports whether k types text.
func (k Key) Printable() bool {
	return k.Name == "" && len(k.Runes) > 0 && !k.Alt
}

// KeyFromTea converts a Bubble Tea key message.
func KeyFromTea(msg tea.KeyMsg) Key {
	k := Key{Alt: msg.Alt, Paste: msg.Paste}
	switch msg.Type {
	case tea.KeyRunes:
		k.Runes = append([]rune(nil), msg.Runes...)
	case tea.KeySpace:
		k.Runes = []rune{' '}
	default:
		k.Name = tea.Key{Type: msg.Type}.String()
		if msg.Type > 0 && msg.Type < 0x20 {
			k.Code = rune(msg.Type)
		}
	}
	return k
}
