package tcellscreen

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/lineinput/editor"
)

func apply(t *testing.T, in *Input, m editor.Model, evs ...tcell.Event) editor.Model {
	t.Helper()
	for _, ev := range evs {
		m, _, _ = in.Apply(m, ev)
	}
	return m
}

func TestInput_TypingAndCommands(t *testing.T) {
	var in Input
	m := editor.New(editor.Config{Text: "old", Width: 20})

	m = apply(t, &in, m,
		tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlA, 1, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone),
	)
	require.Equal(t, ">hi", m.Text())

	_, _, handled := in.Apply(m, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.False(t, handled)
}

func TestInput_BracketedPaste(t *testing.T) {
	var in Input
	m := editor.New(editor.Config{Width: 20})

	m = apply(t, &in, m,
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone),
		tcell.NewEventPaste(false),
	)
	require.Equal(t, "a b c", m.Text())
}

func TestInput_MouseDragSelects(t *testing.T) {
	var in Input
	m := editor.New(editor.Config{Text: "hello world", Width: 20, Row: 2, Col: 1})

	m = apply(t, &in, m,
		tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone),
	)
	sel, ok := m.Buffer().SelectedText()
	require.True(t, ok)
	require.Equal(t, "llo ", sel)

	_, _, handled := in.Apply(m, tcell.NewEventMouse(9, 2, tcell.ButtonNone, tcell.ModNone))
	require.False(t, handled, "hover without a button is ignored")
}
