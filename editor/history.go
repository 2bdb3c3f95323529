package editor

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineinput/history"
)

// HistoryPicker shows history entries, oldest first, and lets the user
// choose one.
type HistoryPicker interface {
	Pick(entries []string) (PickResult, bool)
}

// PickResult is the outcome of a history pick.
type PickResult struct {
	// Text is the chosen entry.
	Text string
	// Entries is the list after the picker edited it. Nil means unchanged.
	Entries []string
}

// HistoryRequestMsg asks the host to show the history of a field that has
// no HistoryPicker. The host answers with HistoryPickedMsg.
type HistoryRequestMsg struct {
	Name    string
	Entries []string
}

// HistoryPickedMsg delivers the host's answer to HistoryRequestMsg.
type HistoryPickedMsg struct {
	Name   string
	Result PickResult
	// Chosen is false when the user dismissed the list.
	Chosen bool
}

// HistoryLoadedMsg carries a history list read by LoadHistoryCmd.
type HistoryLoadedMsg struct {
	Name    string
	Entries []string
	Err     error
}

// LoadHistoryCmd reads the field's history from store off the update loop.
func (m Model) LoadHistoryCmd(store history.Store) tea.Cmd {
	name := m.hist.Name()
	if name == "" || store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.Load(name)
		return HistoryLoadedMsg{Name: name, Entries: entries, Err: err}
	}
}

// LoadHistory reads the field's history from store and adopts it.
func (m Model) LoadHistory(store history.Store) (Model, error) {
	if !m.hist.Enabled() {
		return m, history.ErrNoName
	}
	entries, err := store.Load(m.hist.Name())
	if err != nil {
		err = fmt.Errorf("editor: load history %q: %w", m.hist.Name(), err)
		m.cfg.Logger.Print(err)
		return m, err
	}
	m.adoptHistory(entries)
	return m, nil
}

// SaveHistory commits the line and writes the history to store when it
// changed. Password fields and cancelled owners save nothing.
func (m Model) SaveHistory(store history.Store, cancelled bool) (Model, error) {
	if m.cfg.Password || cancelled || !m.hist.Enabled() {
		return m, nil
	}
	if err := m.hist.Save(store, m.buf.Text()); err != nil {
		m.cfg.Logger.Print(err)
		return m, err
	}
	return m, nil
}

func (m *Model) adoptHistory(entries []string) {
	before := m.buf.TextVersion()
	m.hist.Load(entries)
	if m.cfg.FromHistory {
		text, _ := m.hist.Newest()
		if err := m.buf.Assign(text); err != nil {
			m.cfg.Logger.Printf("editor: history entry dropped: %v", err)
		}
		m.hist.SeekNewest()
		m.buf.SetFresh(true)
	}
	m.finish(before, false)
}

func (m *Model) showHistory() tea.Cmd {
	if m.hist.Len() == 0 {
		return nil
	}
	if m.cfg.HistoryPicker == nil {
		req := HistoryRequestMsg{Name: m.hist.Name(), Entries: m.hist.Entries()}
		return func() tea.Msg { return req }
	}
	res, ok := m.cfg.HistoryPicker.Pick(m.hist.Entries())
	m.applyPick(res, ok)
	return nil
}

func (m *Model) applyPick(res PickResult, chosen bool) {
	if res.Entries != nil {
		m.hist.Replace(res.Entries)
	}
	if chosen {
		m.assign(res.Text)
	}
}
