package editor

import (
	"strings"

	graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"
)

// Draw paints the field on s at its configured position and leaves the
// screen cursor at the caret.
func (m Model) Draw(s Screen) {
	m.draw(s, m.cfg.Row, m.cfg.Col)
}

func (m Model) draw(s Screen, row, col int) {
	width := m.textWidth()

	if m.hasHistoryButton() {
		s.MoveCursor(row, col+m.cfg.Width-historyButtonWidth)
		s.SetRole(RoleHistory)
		s.PrintString(historyButtonLabel(m.hist.Position()))
	}

	base := RoleMain
	switch {
	case m.disabled:
		base = RoleDisabled
	case m.buf.Fresh():
		base = RoleUnchanged
	}

	s.MoveCursor(row, col)
	s.SetRole(base)
	if m.cfg.Password {
		m.drawMasked(s, width)
	} else {
		visible := m.visibleText(m.firstColumn, width)
		s.PrintString(visible)
		s.PrintString(strings.Repeat(" ", max(width-m.cfg.Measurer.StringWidth(visible), 0)))
		m.drawSelection(s, row, col, width)
	}

	s.MoveCursor(row, col+m.columnOf(m.buf.Point())-m.firstColumn)
}

func (m Model) visibleText(start, width int) string {
	return graphemeutil.Printable(m.cfg.Measurer.SubstringByWidth(m.buf.Text(), start, width))
}

// drawSelection repaints the highlighted span over the text, clipped to
// the window.
func (m Model) drawSelection(s Screen, row, col, width int) {
	r, ok := m.buf.Selection()
	if !ok || r.IsEmpty() {
		return
	}
	c1 := max(m.columnOf(r.Start), m.firstColumn)
	c2 := min(m.columnOf(r.End), m.firstColumn+width)
	if c2 <= c1 {
		return
	}
	s.MoveCursor(row, col+c1-m.firstColumn)
	s.SetRole(RoleMark)
	s.PrintString(m.visibleText(c1, c2-c1))
}

// drawMasked prints one mask glyph per visible character and blanks past
// the end of the text.
func (m Model) drawMasked(s Screen, width int) {
	chars := m.buf.Len() - m.firstColumn
	for i := 0; i < width; i++ {
		if i < chars {
			s.PrintChar('*')
		} else {
			s.PrintChar(' ')
		}
	}
}
