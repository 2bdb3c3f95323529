package tcellscreen

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/lineinput/editor"
	"github.com/iw2rmb/lineinput/history"
)

func TestPicker_ChoosesWithArrows(t *testing.T) {
	scr := newSim(t, 20, 6)
	p := NewPicker(scr, 1, 0, 10)

	scr.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	res, ok := p.Pick([]string{"one", "two", "three"})

	require.True(t, ok)
	require.Equal(t, "two", res.Text)
	require.Nil(t, res.Entries)
	require.Equal(t, "          ", rowText(scr, 1, 0, 10), "list is cleared afterwards")
}

func TestPicker_EscapeDismisses(t *testing.T) {
	scr := newSim(t, 20, 6)
	p := NewPicker(scr, 0, 0, 10)

	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	_, ok := p.Pick([]string{"one"})
	require.False(t, ok)
}

func TestPicker_DeleteEditsList(t *testing.T) {
	scr := newSim(t, 20, 6)
	p := NewPicker(scr, 0, 0, 10)

	scr.InjectKey(tcell.KeyDelete, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	res, ok := p.Pick([]string{"one", "two", "three"})

	require.True(t, ok)
	require.Equal(t, "two", res.Text)
	require.Equal(t, []string{"one", "two"}, res.Entries)
}

func TestPicker_DrivesHistoryCommand(t *testing.T) {
	scr := newSim(t, 20, 6)
	p := NewPicker(scr, 1, 0, 12)

	m := editor.New(editor.Config{Width: 12, HistoryName: "cmd", HistoryPicker: p})
	store := history.NewMemoryStore()
	require.NoError(t, store.Save("cmd", []string{"ls", "make", "go test"}))
	m, err := m.LoadHistory(store)
	require.NoError(t, err)

	scr.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	m, _, handled := m.Execute(editor.CmdHistory)

	require.True(t, handled)
	require.Equal(t, "ls", m.Text())
}
