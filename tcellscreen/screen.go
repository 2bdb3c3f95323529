package tcellscreen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/lineinput/editor"
	graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"
)

// Styles maps each drawing role to a tcell style.
type Styles struct {
	Main      tcell.Style
	Mark      tcell.Style
	Unchanged tcell.Style
	History   tcell.Style
	Disabled  tcell.Style
}

func DefaultStyles() Styles {
	field := tcell.StyleDefault.Background(tcell.ColorTeal)
	return Styles{
		Main:      field.Foreground(tcell.ColorBlack),
		Mark:      tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorTeal),
		Unchanged: field.Foreground(tcell.ColorGray),
		History:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Disabled:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

func (s Styles) forRole(r editor.Role) tcell.Style {
	switch r {
	case editor.RoleMark:
		return s.Mark
	case editor.RoleUnchanged:
		return s.Unchanged
	case editor.RoleHistory:
		return s.History
	case editor.RoleDisabled:
		return s.Disabled
	default:
		return s.Main
	}
}

// Screen draws input lines on a tcell screen.
//
// It does not call Show; the host flushes the screen once per frame.
type Screen struct {
	scr    tcell.Screen
	styles Styles
	style  tcell.Style

	x, y int
}

var _ editor.Screen = (*Screen)(nil)

func New(scr tcell.Screen) *Screen {
	st := DefaultStyles()
	return &Screen{scr: scr, styles: st, style: st.Main}
}

func (s *Screen) SetStyles(st Styles) {
	s.styles = st
	s.style = st.Main
}

// Cursor returns the output position, which is the caret after a draw.
func (s *Screen) Cursor() (x, y int) { return s.x, s.y }

func (s *Screen) MoveCursor(row, col int) {
	s.x, s.y = col, row
	s.scr.ShowCursor(col, row)
}

func (s *Screen) SetRole(r editor.Role) { s.style = s.styles.forRole(r) }

func (s *Screen) PrintChar(r rune) { s.PrintString(string(r)) }

// PrintString writes one cell per grapheme cluster and advances by its width.
func (s *Screen) PrintString(text string) {
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		w := graphemeutil.ClusterWidth(cluster)
		if w == 0 {
			continue
		}
		rs := []rune(cluster)
		s.scr.SetContent(s.x, s.y, rs[0], rs[1:], s.style)
		s.x += w
	}
}
