package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.disabled {
		return m, nil
	}

	x := msg.X - m.cfg.Col
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != m.cfg.Row || x < 0 || x >= m.cfg.Width {
			return m, nil
		}
		if m.hasHistoryButton() && x >= m.cfg.Width-historyButtonWidth {
			cmd, _ := m.execute(CmdHistory)
			return m, cmd
		}

		before := m.buf.TextVersion()
		m.buf.SetFresh(false)
		m.buf.SetMarkActive(false)
		if m.buf.SetPoint(m.pointAtX(x)) {
			m.freeCompletions()
		}
		m.pressPoint = m.buf.Point()
		m.dragging = true
		m.finish(before, false)

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		before := m.buf.TextVersion()
		if !m.buf.Highlighting() {
			m.buf.SetPoint(m.pressPoint)
			m.buf.SetMarkActive(true)
		}
		if m.buf.SetPoint(m.pointAtX(x)) {
			m.freeCompletions()
		}
		m.finish(before, false)

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if m.buf.Highlighting() && m.buf.Mark() == m.buf.Point() {
			m.buf.SetMarkActive(false)
			m.finish(m.buf.TextVersion(), false)
		}
	}
	return m, nil
}

// pointAtX maps a cell of the field to a character offset. Cells left or
// right of the text clamp to its ends.
func (m Model) pointAtX(x int) int {
	x = min(max(x, 0), max(m.textWidth()-1, 0))
	return m.offsetAt(m.firstColumn + x)
}
