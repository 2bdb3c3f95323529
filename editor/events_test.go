package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestOnChange_ReportsMovesAndEdits(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{Text: "ab", Width: 10, OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Len(t, events, 1, "leaving the fresh state is a change")
	require.False(t, events[0].TextChanged)

	m = typeText(m, "c")
	require.Len(t, events, 2)
	ev := events[1]
	require.True(t, ev.TextChanged)
	require.Equal(t, "abc", ev.Text)
	require.Equal(t, 3, ev.Point)
	require.Equal(t, 2, ev.Change.Start)
	require.Equal(t, "c", ev.Change.InsertText)
	require.Empty(t, ev.Change.DeletedText)

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	ev = events[len(events)-1]
	require.False(t, ev.TextChanged)
	require.True(t, ev.Selection.Active)
	require.Equal(t, 2, ev.Selection.Range.Start)
	require.Equal(t, 3, ev.Selection.Range.End)

	n := len(events)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, events, n, "unhandled keys report nothing")

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	ev = events[len(events)-1]
	require.True(t, ev.TextChanged)
	require.Equal(t, "c", ev.Change.DeletedText)
	require.Equal(t, "ab", m.Text())
}

func TestOnChange_VersionsIncrease(t *testing.T) {
	var versions []uint64
	m := New(Config{Width: 10, OnChange: func(ev ChangeEvent) { versions = append(versions, ev.Version) }})
	m = typeText(m, "abc")
	_ = press(m, tea.KeyMsg{Type: tea.KeyHome})

	require.Len(t, versions, 4)
	for i := 1; i < len(versions); i++ {
		require.Greater(t, versions[i], versions[i-1])
	}
}
