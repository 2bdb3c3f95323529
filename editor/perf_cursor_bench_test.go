package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func BenchmarkCursorMove(b *testing.B) {
	for _, n := range []int{80, 1000, 10000} {
		text := benchmarkLine(n)

		b.Run(fmt.Sprintf("plain/chars=%d", n), func(b *testing.B) {
			m := New(Config{Text: text, Width: 80})
			benchmarkCursorPingPong(b, m)
		})

		b.Run(fmt.Sprintf("password/chars=%d", n), func(b *testing.B) {
			m := New(Config{Text: text, Width: 80, Password: true})
			benchmarkCursorPingPong(b, m)
		})
	}
}

func BenchmarkTyping(b *testing.B) {
	m := New(Config{Width: 80})
	key := runes("a")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%4096 == 0 {
			m = m.AssignText("")
		}
		m, _ = m.Update(key)
	}
}

func benchmarkCursorPingPong(b *testing.B, m Model) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m = m.SetPoint(m.Buffer().Len() / 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			m, _ = m.Update(right)
		} else {
			m, _ = m.Update(left)
		}
		_ = m.View()
	}
}

func benchmarkLine(chars int) string {
	const word = "go世é "
	s := strings.Repeat(word, chars/len([]rune(word))+1)
	return string([]rune(s)[:chars])
}
