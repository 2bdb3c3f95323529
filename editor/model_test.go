package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iw2rmb/lineinput/clipboard"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew_StartsFreshAtEnd(t *testing.T) {
	m := New(Config{Text: "abc", Width: 10})
	require.Equal(t, 3, m.Point())
	require.True(t, m.Buffer().Fresh())
	require.True(t, m.Focused())
	require.False(t, m.Disabled())
	require.Equal(t, 1, m.KillRing().Refs())
}

func TestInsert_TypesTextAndOptionalSpace(t *testing.T) {
	m := New(Config{Text: "cd", Width: 20})
	m = m.Insert("/tmp", true)
	require.Equal(t, "/tmp ", m.Text(), "insert into a fresh field replaces it")

	before := m.Redraws()
	m = m.SetPoint(0).Insert("x", false)
	require.Equal(t, "x/tmp ", m.Text())
	require.Equal(t, 1, m.Point())
	require.Equal(t, before+2, m.Redraws())
}

func TestInsert_MultiByteText(t *testing.T) {
	m := New(Config{Width: 20})
	m = m.Insert("жук", false)
	require.Equal(t, "жук", m.Text())
	require.Equal(t, 3, m.Point())
}

func TestSetPoint_Clamps(t *testing.T) {
	m := New(Config{Text: "abc", Width: 10})
	require.Equal(t, 0, m.SetPoint(-5).Point())
	require.Equal(t, 3, m.SetPoint(99).Point())
}

func TestAssignText_ResetsPointAndMark(t *testing.T) {
	m := New(Config{Text: "abc", Width: 10})
	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyShiftRight})
	m = m.AssignText("hello")
	require.Equal(t, "hello", m.Text())
	require.Equal(t, 5, m.Point())
	require.False(t, m.Buffer().Highlighting())
	require.Zero(t, m.Buffer().Mark())
}

func TestMaxSize_DropsOversizedInput(t *testing.T) {
	m := New(Config{Width: 10, MaxSize: 4})
	m = typeText(m, "abcdef")
	require.Equal(t, "abcd", m.Text())
}

func TestDisabledField_IgnoresCommands(t *testing.T) {
	m := New(Config{Text: "abc", Width: 10}).SetDisabled(true)
	m, _, handled := m.Execute(CmdClear)
	require.False(t, handled)
	require.Equal(t, "abc", m.Text())
}

func TestBlurredField_IgnoresKeys(t *testing.T) {
	m := New(Config{Text: "abc", Width: 10}).Blur()
	m = typeText(m, "x")
	require.Equal(t, "abc", m.Text())

	m = m.Focus()
	m = typeText(m, "x")
	require.Equal(t, "x", m.Text())
}

func TestDestroy_ReleasesSharedRingOnce(t *testing.T) {
	ring := clipboard.NewKillRing()
	a := New(Config{Width: 10, KillRing: ring})
	b := New(Config{Width: 10, KillRing: ring})
	require.Equal(t, 2, ring.Refs())

	a.Destroy()
	a.Destroy()
	require.Equal(t, 1, ring.Refs())
	b.Destroy()
	require.Zero(t, ring.Refs())
}

func TestProperty_CaretStaysInView(t *testing.T) {
	chars := []string{"a", "b", " ", "世", "é", "."}
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyHome}, {Type: tea.KeyEnd},
		{Type: tea.KeyBackspace}, {Type: tea.KeyDelete}, {Type: tea.KeyCtrlLeft}, {Type: tea.KeyCtrlRight},
		{Type: tea.KeyShiftLeft}, {Type: tea.KeyShiftRight},
	}

	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(2, 24).Draw(t, "width")
		password := rapid.Bool().Draw(t, "password")
		m := New(Config{Width: width, Password: password})

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "type") {
				m = typeText(m, rapid.SampledFrom(chars).Draw(t, "char"))
			} else {
				m = press(m, rapid.SampledFrom(keys).Draw(t, "key"))
			}

			col := m.columnOf(m.Point())
			if col < m.FirstColumn() || col >= m.FirstColumn()+m.textWidth() {
				t.Fatalf("caret column %d outside [%d, %d) for %q", col, m.FirstColumn(), m.FirstColumn()+m.textWidth(), m.Text())
			}
		}
	})
}
