package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/runeutil"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineinput/buffer"
)

// pasteSanitizer keeps pasted text on one line.
var pasteSanitizer = runeutil.NewSanitizer(
	runeutil.ReplaceTabs(" "),
	runeutil.ReplaceNewlines(" "),
)

func (m *Model) handleKey(k Key) (tea.Cmd, bool) {
	if m.quoteNext {
		m.quoteNext = false
		return nil, m.insertQuoted(k)
	}

	if k.Paste {
		before := m.buf.TextVersion()
		m.insertTyped(sanitizePaste(string(k.Runes)))
		m.buf.ClearHighlight()
		m.freeCompletions()
		m.finish(before, true)
		return nil, true
	}

	cmd, bound := m.cfg.KeyMap.Resolve(k)
	if bound {
		return m.execute(cmd)
	}

	// Keys the field does not use are left for the host.
	if !k.Printable() {
		return nil, false
	}
	before := m.buf.TextVersion()
	m.freeCompletions()
	m.insertTyped(string(k.Runes))
	m.buf.ClearHighlight()
	m.finish(before, true)
	return nil, true
}

// insertTyped inserts s byte by byte. A fresh field is emptied first.
func (m *Model) insertTyped(s string) {
	for i := 0; i < len(s); i++ {
		m.buf.InsertByte(s[i])
	}
	m.buf.SetFresh(false)
}

// insertQuoted inserts the key after EnterCtrlSeq literally. Letters become
// their control characters.
func (m *Model) insertQuoted(k Key) bool {
	var r rune
	switch {
	case k.Code != 0:
		r = k.Code
	case k.Name == "" && len(k.Runes) == 1:
		r = k.Runes[0]
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			r &= 0x1f
		}
	default:
		return false
	}
	before := m.buf.TextVersion()
	m.buf.InsertRune(r)
	m.buf.ClearHighlight()
	m.buf.SetFresh(false)
	m.freeCompletions()
	m.finish(before, true)
	return true
}

func sanitizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return string(pasteSanitizer.Sanitize([]rune(s)))
}

// execute runs cmd and applies what every command implies afterwards:
// highlighting stops unless cmd selects, completions are dropped unless cmd
// completes, and the field is no longer fresh.
func (m *Model) execute(cmd Command) (tea.Cmd, bool) {
	before := m.buf.TextVersion()
	var out tea.Cmd
	handled := true

	switch cmd {
	case CmdLeft:
		m.plainMove(buffer.MoveChar, buffer.DirLeft)
	case CmdRight:
		m.plainMove(buffer.MoveChar, buffer.DirRight)
	case CmdWordLeft:
		m.plainMove(buffer.MoveWord, buffer.DirLeft)
	case CmdWordRight:
		m.plainMove(buffer.MoveWord, buffer.DirRight)
	case CmdHome:
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case CmdEnd:
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case CmdMarkLeft:
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft, Extend: true})
	case CmdMarkRight:
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight, Extend: true})
	case CmdMarkToWordBegin:
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft, Extend: true})
	case CmdMarkToWordEnd:
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight, Extend: true})
	case CmdMarkToHome:
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case CmdMarkToEnd:
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})

	case CmdBackspace:
		m.buf.Backspace()
	case CmdDelete:
		m.buf.DeleteForward()
	case CmdDeleteToWordEnd:
		m.killText(m.buf.KillWord())
	case CmdDeleteToWordBegin:
		m.killText(m.buf.BackKillWord())
	case CmdMark:
		m.buf.SetMarkActive(true)
	case CmdRemove:
		r := m.buf.Region()
		m.buf.DeleteRegion(r.Start, r.End)
	case CmdDeleteToEnd:
		m.kill.Set(m.buf.DeleteToEnd())
	case CmdClear:
		m.buf.ClearAll()

	case CmdStore:
		m.copyRegion()
	case CmdCut:
		m.copyRegion()
		r := m.buf.Region()
		m.buf.DeleteRegion(r.Start, r.End)
	case CmdYank:
		if !m.kill.Empty() {
			m.buf.InsertString(m.kill.Text())
		}
	case CmdPaste:
		m.pasteClipboard()

	case CmdHistoryPrev:
		if text, ok := m.hist.Previous(m.buf.Text()); ok {
			m.recall(text)
		}
	case CmdHistoryNext:
		if text, ok := m.hist.Next(m.buf.Text()); ok {
			m.recall(text)
		}
	case CmdHistory:
		out = m.showHistory()
	case CmdComplete:
		m.complete()
	case CmdEnterCtrlSeq:
		m.quoteNext = true

	default:
		handled = false
	}

	if !cmd.keepsHighlight() {
		m.buf.ClearHighlight()
	}
	if cmd != CmdComplete {
		m.freeCompletions()
	}
	if handled {
		m.buf.SetFresh(false)
	}
	m.finish(before, !cmd.recallsHistory())
	return out, handled
}

// plainMove drops the selection, zeroing the mark, then moves.
func (m *Model) plainMove(unit buffer.MoveUnit, dir buffer.MoveDir) {
	if m.buf.Highlighting() {
		m.buf.SetMarkActive(false)
	}
	m.buf.Move(buffer.Move{Unit: unit, Dir: dir})
}

func (m *Model) killText(s string) {
	if s != "" {
		m.kill.Set(s)
	}
}

func (m *Model) recall(text string) {
	if err := m.buf.Assign(text); err != nil {
		m.cfg.Logger.Printf("editor: history entry dropped: %v", err)
	}
}

// copyRegion stores the text between mark and point. An empty region asks
// the host for text instead.
func (m *Model) copyRegion() {
	text := m.buf.RegionText()
	if text == "" {
		if m.cfg.CopyFallback == nil {
			return
		}
		var ok bool
		if text, ok = m.cfg.CopyFallback(); !ok || text == "" {
			return
		}
	} else {
		m.kill.Set(text)
	}
	if m.cfg.Clipboard != nil {
		if err := m.cfg.Clipboard.WriteText(text); err != nil {
			m.cfg.Logger.Printf("editor: clipboard write: %v", err)
		}
	}
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Printf("editor: clipboard read: %v", err)
		return
	}
	if s == "" {
		return
	}
	m.buf.InsertString(sanitizePaste(s))
}

func (m *Model) complete() {
	if m.cfg.Completer == nil || m.cfg.Completion == 0 {
		return
	}
	res, ok := m.cfg.Completer.Complete(CompletionRequest{
		Text:  m.buf.Text(),
		Point: m.buf.Point(),
		Flags: m.cfg.Completion,
	})
	if !ok {
		m.freeCompletions()
		return
	}
	m.completions = append([]string{}, res.Candidates...)
	if res.Replacement == "" && !res.Unique {
		return
	}
	m.buf.DeleteRegion(res.Start, res.End)
	m.buf.InsertString(res.Replacement)
	if res.Unique {
		m.buf.InsertRune(' ')
	}
}
