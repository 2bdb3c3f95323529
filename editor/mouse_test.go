package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickMovesPointAndDragSelects(t *testing.T) {
	m := New(Config{Text: "hello world", Width: 20})

	m = press(m, mouse(tea.MouseActionPress, 3, 0))
	if got := m.Point(); got != 3 {
		t.Fatalf("point after click: got %d, want %d", got, 3)
	}
	if m.Buffer().Fresh() {
		t.Fatalf("click must clear the fresh state")
	}

	m = press(m, mouse(tea.MouseActionMotion, 7, 0), mouse(tea.MouseActionRelease, 7, 0))
	r, ok := m.Buffer().Selection()
	if !ok || r.Start != 3 || r.End != 7 {
		t.Fatalf("selection after drag: got %v (active=%v), want [3,7)", r, ok)
	}

	m = press(m, mouse(tea.MouseActionPress, 15, 0))
	if got := m.Point(); got != 11 {
		t.Fatalf("click past the end: got %d, want %d", got, 11)
	}
	if m.Buffer().Highlighting() {
		t.Fatalf("click must drop the selection")
	}
}

func TestMouse_ClickWithoutDragLeavesNoSelection(t *testing.T) {
	m := New(Config{Text: "abc", Width: 10})
	m = press(m, mouse(tea.MouseActionPress, 1, 0), mouse(tea.MouseActionMotion, 1, 0), mouse(tea.MouseActionRelease, 1, 0))
	if m.Buffer().Highlighting() {
		t.Fatalf("zero-length drag must not highlight")
	}
}

func TestMouse_OffsetFieldAndOtherRows(t *testing.T) {
	m := New(Config{Text: "abcdef", Width: 10, Row: 2, Col: 5})
	m = press(m, mouse(tea.MouseActionPress, 7, 2))
	if got := m.Point(); got != 2 {
		t.Fatalf("point after click in offset field: got %d, want %d", got, 2)
	}

	m = press(m, mouse(tea.MouseActionPress, 8, 1))
	if got := m.Point(); got != 2 {
		t.Fatalf("click on another row moved the point to %d", got)
	}
}

func TestMouse_HistoryButtonOpensPicker(t *testing.T) {
	picker := &stubPicker{result: PickResult{Text: "older"}, ok: true}
	m, _ := loadedField(t, Config{Width: 20, HistoryName: "cmd", HistoryPicker: picker}, "older", "newer")

	m = press(m, mouse(tea.MouseActionPress, 18, 0))
	if got := m.Text(); got != "older" {
		t.Fatalf("text after button click: got %q, want %q", got, "older")
	}
}
