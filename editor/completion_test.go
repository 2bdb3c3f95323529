package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type wordCompleter struct {
	words       []string
	requests    []CompletionRequest
	invalidated int
}

func (c *wordCompleter) Complete(req CompletionRequest) (CompletionResult, bool) {
	c.requests = append(c.requests, req)
	runes := []rune(req.Text)
	start := req.Point
	for start > 0 && runes[start-1] != ' ' {
		start--
	}
	prefix := string(runes[start:req.Point])

	var matches []string
	for _, w := range c.words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	switch len(matches) {
	case 0:
		return CompletionResult{}, false
	case 1:
		return CompletionResult{Start: start, End: req.Point, Replacement: matches[0], Unique: true, Candidates: matches}, true
	default:
		return CompletionResult{Start: start, End: req.Point, Replacement: commonPrefix(matches), Candidates: matches}, true
	}
}

func (c *wordCompleter) Invalidate() { c.invalidated++ }

func commonPrefix(words []string) string {
	p := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}

var completeKey = tea.KeyMsg{Type: tea.KeyTab, Alt: true}

func TestComplete_UniqueMatchAddsSpace(t *testing.T) {
	comp := &wordCompleter{words: []string{"hello", "world"}}
	m := New(Config{Width: 20, Completion: CompleteDefault, Completer: comp})

	m = typeText(m, "he")
	m = press(m, completeKey)

	require.Equal(t, "hello ", m.Text())
	require.Equal(t, 6, m.Point())
	require.Equal(t, []string{"hello"}, m.Completions())
	require.Len(t, comp.requests, 1)
	require.Equal(t, CompletionRequest{Text: "he", Point: 2, Flags: CompleteDefault}, comp.requests[0])
}

func TestComplete_AmbiguousKeepsCandidatesUntilNextEdit(t *testing.T) {
	comp := &wordCompleter{words: []string{"make", "man", "mount"}}
	m := New(Config{Width: 20, Completion: CompleteCommands, Completer: comp})

	m = typeText(m, "ma")
	m = press(m, completeKey)
	require.Equal(t, "ma", m.Text())
	require.Equal(t, []string{"make", "man"}, m.Completions())
	require.Zero(t, comp.invalidated)

	m = typeText(m, "k")
	require.Nil(t, m.Completions())
	require.Equal(t, 1, comp.invalidated)

	m = press(m, completeKey)
	require.Equal(t, "make ", m.Text())
}

func TestComplete_NoMatchOrDisabled(t *testing.T) {
	comp := &wordCompleter{words: []string{"hello"}}
	m := New(Config{Width: 20, Completion: CompleteDefault, Completer: comp})
	m = typeText(m, "zz")
	m = press(m, completeKey)
	require.Equal(t, "zz", m.Text())
	require.Nil(t, m.Completions())

	off := New(Config{Width: 20, Completer: comp})
	off = typeText(off, "he")
	off, _, handled := off.Execute(CmdComplete)
	require.True(t, handled)
	require.Equal(t, "he", off.Text())
	require.Len(t, comp.requests, 1, "fields without completion flags never ask")
}

func TestComplete_MovingThePointFreesCandidates(t *testing.T) {
	comp := &wordCompleter{words: []string{"make", "man"}}
	m := New(Config{Width: 20, Completion: CompleteCommands, Completer: comp})
	m = typeText(m, "ma")
	m = press(m, completeKey)
	require.NotNil(t, m.Completions())

	m = m.SetPoint(0)
	require.Nil(t, m.Completions())
	require.Equal(t, 1, comp.invalidated)
}

func TestComplete_MidLineReplacesOnlyTheWord(t *testing.T) {
	comp := &wordCompleter{words: []string{"hello"}}
	m := New(Config{Text: "say he now", Width: 30, Completion: CompleteDefault, Completer: comp})
	m = m.SetPoint(6)
	m = press(m, completeKey)
	require.Equal(t, "say hello  now", m.Text())
	require.Equal(t, 10, m.Point())
}
