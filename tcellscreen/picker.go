package tcellscreen

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/lineinput/editor"
	graphemeutil "github.com/iw2rmb/lineinput/internal/grapheme"
)

// Picker is a modal history list drawn on a tcell screen.
//
// Pick takes over the event loop until an entry is chosen or the list is
// dismissed: up and down move, enter chooses, esc dismisses and delete
// removes the highlighted entry.
type Picker struct {
	scr tcell.Screen

	// Row and Col place the top left corner of the list.
	Row, Col int
	// Width and Height bound the list. Zero Height uses the rows below Row.
	Width, Height int

	Styles Styles
}

var _ editor.HistoryPicker = (*Picker)(nil)

func NewPicker(scr tcell.Screen, row, col, width int) *Picker {
	return &Picker{scr: scr, Row: row, Col: col, Width: width, Styles: DefaultStyles()}
}

func (p *Picker) Pick(entries []string) (editor.PickResult, bool) {
	list := slices.Clone(entries)
	edited := false
	sel := len(list) - 1

	result := func(text string, ok bool) (editor.PickResult, bool) {
		p.clear()
		res := editor.PickResult{Text: text}
		if edited {
			res.Entries = list
			if res.Entries == nil {
				res.Entries = []string{}
			}
		}
		return res, ok
	}

	for {
		if len(list) == 0 {
			return result("", false)
		}
		p.draw(list, sel)
		p.scr.Show()

		switch ev := p.scr.PollEvent().(type) {
		case nil:
			return result("", false)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				sel = max(sel-1, 0)
			case tcell.KeyDown:
				sel = min(sel+1, len(list)-1)
			case tcell.KeyHome:
				sel = 0
			case tcell.KeyEnd:
				sel = len(list) - 1
			case tcell.KeyEnter:
				return result(list[sel], true)
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return result("", false)
			case tcell.KeyDelete:
				list = slices.Delete(list, sel, sel+1)
				edited = true
				sel = min(sel, len(list)-1)
			}
		case *tcell.EventResize:
			p.scr.Sync()
		}
	}
}

func (p *Picker) height() int {
	if p.Height > 0 {
		return p.Height
	}
	_, h := p.scr.Size()
	return max(h-p.Row, 1)
}

// draw shows the window of entries that holds sel, newest at the bottom.
func (p *Picker) draw(list []string, sel int) {
	h := min(p.height(), len(list))
	top := max(0, sel-h+1)

	s := &Screen{scr: p.scr, styles: p.Styles}
	for i := 0; i < p.height(); i++ {
		idx := top + i
		s.x, s.y = p.Col, p.Row+i
		switch {
		case i >= h:
			s.style = tcell.StyleDefault
			s.PrintString(pad("", p.Width))
			continue
		case idx == sel:
			s.style = p.Styles.Mark
		default:
			s.style = p.Styles.Main
		}
		s.PrintString(pad(list[idx], p.Width))
	}
	p.scr.HideCursor()
}

func (p *Picker) clear() {
	for y := p.Row; y < p.Row+p.height(); y++ {
		for x := p.Col; x < p.Col+p.Width; x++ {
			p.scr.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// pad clips or blank-fills text to width cells.
func pad(text string, width int) string {
	text = graphemeutil.SliceColumns(graphemeutil.Printable(text), 0, width)
	return text + strings.Repeat(" ", max(width-graphemeutil.Width(text), 0))
}
