package editor

import "github.com/iw2rmb/lineinput/history"

const historyButtonWidth = 3

// hasHistoryButton reports whether the history button is drawn: the field
// has entries and is wide enough to spare the cells.
func (m Model) hasHistoryButton() bool {
	return m.hist.Len() > 0 && m.cfg.Width > 7
}

// textWidth is the number of cells available to text.
func (m Model) textWidth() int {
	w := m.cfg.Width
	if m.hasHistoryButton() {
		w -= historyButtonWidth
	}
	return max(w, 0)
}

// columnOf returns the cell column where character offset off starts.
// A masked field shows one cell per character.
func (m Model) columnOf(off int) int {
	if m.cfg.Password {
		return off
	}
	text := m.buf.Text()
	return m.cfg.Measurer.StringWidth(text[:m.buf.ByteOffset(off)])
}

// offsetAt maps a cell column of the text to a character offset.
func (m Model) offsetAt(col int) int {
	if m.cfg.Password {
		return min(max(col, 0), m.buf.Len())
	}
	return m.buf.OffsetAtColumn(col)
}

// updateViewport scrolls only when the caret leaves the window, and then
// puts it a third of the field width from the left edge.
func (m *Model) updateViewport() {
	pw := m.columnOf(m.buf.Point())
	if pw < m.firstColumn || pw >= m.firstColumn+m.textWidth() {
		m.firstColumn = max(pw-m.cfg.Width/3, 0)
	}
}

func historyButtonLabel(p history.Position) string {
	switch p {
	case history.AtOldest:
		return "[v]"
	case history.InMiddle:
		return "[|]"
	default:
		return "[^]"
	}
}
