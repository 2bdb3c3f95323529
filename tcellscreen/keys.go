package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/lineinput/editor"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:      "up",
	tcell.KeyDown:    "down",
	tcell.KeyLeft:    "left",
	tcell.KeyRight:   "right",
	tcell.KeyHome:    "home",
	tcell.KeyEnd:     "end",
	tcell.KeyPgUp:    "pgup",
	tcell.KeyPgDn:    "pgdown",
	tcell.KeyInsert:  "insert",
	tcell.KeyDelete:  "delete",
	tcell.KeyBacktab: "shift+tab",
	tcell.KeyF1:      "f1",
	tcell.KeyF2:      "f2",
	tcell.KeyF3:      "f3",
	tcell.KeyF4:      "f4",
	tcell.KeyF5:      "f5",
	tcell.KeyF6:      "f6",
	tcell.KeyF7:      "f7",
	tcell.KeyF8:      "f8",
	tcell.KeyF9:      "f9",
	tcell.KeyF10:     "f10",
	tcell.KeyF11:     "f11",
	tcell.KeyF12:     "f12",
}

// Keys that take ctrl and shift prefixes in binding names.
var modifiable = map[tcell.Key]bool{
	tcell.KeyUp: true, tcell.KeyDown: true, tcell.KeyLeft: true, tcell.KeyRight: true,
	tcell.KeyHome: true, tcell.KeyEnd: true, tcell.KeyPgUp: true, tcell.KeyPgDn: true,
	tcell.KeyInsert: true, tcell.KeyDelete: true,
}

// KeyFromEvent converts a tcell key event. Names follow the Bubble Tea
// notation used by editor.KeyMap, so one keymap serves both hosts.
func KeyFromEvent(ev *tcell.EventKey) editor.Key {
	mod := ev.Modifiers()
	k := editor.Key{Alt: mod&(tcell.ModAlt|tcell.ModMeta) != 0}

	switch key := ev.Key(); {
	case key == tcell.KeyRune:
		r := ev.Rune()
		if mod&tcell.ModCtrl != 0 && controlLetter(r) {
			return controlKey(k, tcell.Key(lower(r)-'a'+1))
		}
		k.Runes = []rune{r}
	case key < 0x20:
		return controlKey(k, key)
	case key == tcell.KeyBackspace2:
		k.Name = "backspace"
	default:
		name, ok := keyNames[key]
		if !ok {
			name = ev.Name()
			break
		}
		if modifiable[key] {
			if mod&tcell.ModShift != 0 {
				name = "shift+" + name
			}
			if mod&tcell.ModCtrl != 0 {
				name = "ctrl+" + name
			}
		}
		k.Name = name
	}
	return k
}

// controlKey names a key that produces control character c.
func controlKey(k editor.Key, c tcell.Key) editor.Key {
	k.Code = rune(c)
	switch c {
	case 0:
		k.Name = "ctrl+@"
	case 0x09:
		k.Name = "tab"
	case 0x0d:
		k.Name = "enter"
	case 0x1b:
		k.Name = "esc"
	case 0x1c:
		k.Name = `ctrl+\`
	case 0x1d:
		k.Name = "ctrl+]"
	case 0x1e:
		k.Name = "ctrl+^"
	case 0x1f:
		k.Name = "ctrl+_"
	default:
		k.Name = "ctrl+" + string(rune('a'+c-1))
	}
	return k
}

func controlLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
