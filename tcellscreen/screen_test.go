package tcellscreen

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/lineinput/editor"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	scr.SetSize(w, h)
	t.Cleanup(scr.Fini)
	return scr
}

func rowText(scr tcell.Screen, row, col, width int) string {
	var out []rune
	for x := col; x < col+width; {
		r, comb, _, w := scr.GetContent(x, row) //nolint:staticcheck // GetContent is the read-back API of the simulation screen
		out = append(out, r)
		out = append(out, comb...)
		x += max(w, 1)
	}
	return string(out)
}

func styleAt(scr tcell.Screen, x, y int) tcell.Style {
	_, _, st, _ := scr.GetContent(x, y) //nolint:staticcheck // GetContent is the read-back API of the simulation screen
	return st
}

func TestScreen_DrawsFieldAtItsPosition(t *testing.T) {
	scr := newSim(t, 20, 3)
	s := New(scr)

	m := editor.New(editor.Config{Text: "hello", Width: 10, Row: 1, Col: 2})
	m.Draw(s)

	require.Equal(t, "hello     ", rowText(scr, 1, 2, 10))
	x, y := s.Cursor()
	require.Equal(t, 7, x)
	require.Equal(t, 1, y)
	require.Equal(t, DefaultStyles().Unchanged, styleAt(scr, 2, 1))
}

func TestScreen_RolesAfterEditing(t *testing.T) {
	scr := newSim(t, 20, 1)
	s := New(scr)

	m := editor.New(editor.Config{Text: "hello", Width: 10})
	m, _, _ = m.Execute(editor.CmdHome)
	m, _, _ = m.Execute(editor.CmdMarkRight)
	m, _, _ = m.Execute(editor.CmdMarkRight)
	m.Draw(s)

	st := DefaultStyles()
	require.Equal(t, st.Mark, styleAt(scr, 0, 0))
	require.Equal(t, st.Mark, styleAt(scr, 1, 0))
	require.Equal(t, st.Main, styleAt(scr, 2, 0))
	x, _ := s.Cursor()
	require.Equal(t, 2, x)
}

func TestScreen_WideAndCombiningCharacters(t *testing.T) {
	scr := newSim(t, 20, 1)
	s := New(scr)

	m := editor.New(editor.Config{Text: "a世e\u0301", Width: 8})
	m.Draw(s)

	r, _, _, w := scr.GetContent(1, 0) //nolint:staticcheck // GetContent is the read-back API of the simulation screen
	require.Equal(t, '世', r)
	require.Equal(t, 2, w)

	r, comb, _, _ := scr.GetContent(3, 0) //nolint:staticcheck // GetContent is the read-back API of the simulation screen
	require.Equal(t, 'e', r)
	require.Equal(t, []rune{'\u0301'}, comb)

	x, _ := s.Cursor()
	require.Equal(t, 4, x)
}

func TestScreen_AutomaticRedraw(t *testing.T) {
	scr := newSim(t, 20, 1)
	s := New(scr)

	m := editor.New(editor.Config{Width: 10, Screen: s})
	m, _, _ = m.HandleKey(editor.Key{Runes: []rune("o")})
	m, _, _ = m.HandleKey(editor.Key{Runes: []rune("k")})

	require.Equal(t, "ok        ", rowText(scr, 0, 0, 10))
	require.Equal(t, "ok", m.Text())
}

func TestScreen_HistoryButtonAndPassword(t *testing.T) {
	scr := newSim(t, 20, 1)
	s := New(scr)

	m := editor.New(editor.Config{Width: 12, Password: true, HistoryName: "pw"})
	m.History().Load([]string{"old"})
	m = m.AssignText("secret")
	m.Draw(s)

	require.Equal(t, "******   [^]", rowText(scr, 0, 0, 12))
	require.Equal(t, DefaultStyles().History, styleAt(scr, 10, 0))
}
