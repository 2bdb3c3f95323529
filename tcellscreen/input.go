package tcellscreen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/lineinput/editor"
)

// Input feeds tcell events to an input line.
//
// It remembers mouse buttons between events to tell presses from drags,
// and gathers bracketed paste into a single paste key.
type Input struct {
	buttons tcell.ButtonMask

	pasting bool
	paste   []rune
}

// Pasting reports whether a bracketed paste is being gathered. Hosts should
// not act on keys such as enter while it is.
func (in *Input) Pasting() bool { return in.pasting }

// Apply hands ev to m and reports whether the field used it.
func (in *Input) Apply(m editor.Model, ev tcell.Event) (editor.Model, tea.Cmd, bool) {
	switch e := ev.(type) {
	case *tcell.EventPaste:
		if e.Start() {
			in.pasting = true
			in.paste = in.paste[:0]
			return m, nil, true
		}
		in.pasting = false
		if len(in.paste) == 0 {
			return m, nil, true
		}
		k := editor.Key{Runes: append([]rune(nil), in.paste...), Paste: true}
		return m.HandleKey(k)

	case *tcell.EventKey:
		if in.pasting {
			in.paste = append(in.paste, pastedRune(e))
			return m, nil, true
		}
		return m.HandleKey(KeyFromEvent(e))

	case *tcell.EventMouse:
		msg, ok := in.mouseMsg(e)
		if !ok {
			return m, nil, false
		}
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

func pastedRune(e *tcell.EventKey) rune {
	switch e.Key() {
	case tcell.KeyRune:
		return e.Rune()
	case tcell.KeyEnter:
		return '\n'
	case tcell.KeyTab:
		return '\t'
	default:
		return rune(e.Key())
	}
}

// mouseMsg turns left button state changes into press, motion and release.
func (in *Input) mouseMsg(e *tcell.EventMouse) (tea.MouseMsg, bool) {
	x, y := e.Position()
	down := e.Buttons()&tcell.Button1 != 0
	was := in.buttons&tcell.Button1 != 0
	in.buttons = e.Buttons()

	msg := tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft}
	switch {
	case down && !was:
		msg.Action = tea.MouseActionPress
	case down:
		msg.Action = tea.MouseActionMotion
	case was:
		msg.Action = tea.MouseActionRelease
	default:
		return msg, false
	}
	return msg, true
}
