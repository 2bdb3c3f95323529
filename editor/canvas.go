package editor

import (
	"strings"

	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"
)

type canvasCell struct {
	text string
	role Role
	// tail marks the second cell of a wide cluster.
	tail bool
}

// canvas is a one-row Screen that View renders with lipgloss.
type canvas struct {
	cells  []canvasCell
	role   Role
	col    int
	cursor int
}

func newCanvas(width int) *canvas {
	c := &canvas{cells: make([]canvasCell, width)}
	for i := range c.cells {
		c.cells[i].text = " "
	}
	return c
}

func (c *canvas) MoveCursor(_, col int) {
	c.col = col
	c.cursor = col
}

func (c *canvas) SetRole(r Role) { c.role = r }

func (c *canvas) PrintChar(r rune) { c.PrintString(string(r)) }

func (c *canvas) PrintString(s string) {
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := graphemeutil.ClusterWidth(cluster)
		if w == 0 {
			continue
		}
		c.put(c.col, canvasCell{text: cluster, role: c.role})
		for i := 1; i < w; i++ {
			c.put(c.col+i, canvasCell{role: c.role, tail: true})
		}
		c.col += w
	}
}

func (c *canvas) put(col int, cell canvasCell) {
	if col < 0 || col >= len(c.cells) {
		return
	}
	c.cells[col] = cell
}

// render joins runs of equal role, styling each run. The cursor cell gets
// the cursor style when showCursor is set.
func (c *canvas) render(st Style, showCursor bool) string {
	var sb strings.Builder
	var run strings.Builder
	runRole := Role(0)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(st.forRole(runRole).Render(run.String()))
		run.Reset()
	}

	for i, cell := range c.cells {
		if cell.tail {
			continue
		}
		if showCursor && i == c.cursor {
			flush()
			sb.WriteString(st.Cursor.Render(cell.text))
			continue
		}
		if cell.role != runRole {
			flush()
			runRole = cell.role
		}
		run.WriteString(cell.text)
	}
	flush()
	return sb.String()
}

// View renders the field as one styled line.
func (m Model) View() string {
	if m.hold > 0 {
		return m.frozen
	}
	return m.render()
}

func (m Model) render() string {
	c := newCanvas(m.cfg.Width)
	m.draw(c, 0, 0)
	return c.render(m.cfg.Style, m.focused && !m.disabled)
}
