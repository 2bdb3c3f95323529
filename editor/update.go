package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key, mouse and history messages. Keys the field does not
// use, such as enter, esc, up and down, are left to the host.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd, _ = m.HandleKey(KeyFromTea(msg))
		return m, cmd
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case HistoryLoadedMsg:
		if msg.Name != m.hist.Name() {
			return m, nil
		}
		if msg.Err != nil {
			m.cfg.Logger.Printf("editor: load history %q: %v", msg.Name, msg.Err)
			return m, nil
		}
		m.adoptHistory(msg.Entries)
		return m, nil
	case HistoryPickedMsg:
		if msg.Name != m.hist.Name() {
			return m, nil
		}
		m.applyPick(msg.Result, msg.Chosen)
		return m, nil
	case KeyMapChangedMsg:
		if msg.Err != nil {
			m.cfg.Logger.Printf("editor: keymap not reloaded: %v", msg.Err)
			return m, nil
		}
		return m.SetKeyMap(msg.KeyMap), nil
	}
	return m, nil
}

// KeyMapChangedMsg delivers a reloaded keymap, as sent by a WatchKeyMap
// callback.
type KeyMapChangedMsg struct {
	KeyMap KeyMap
	Err    error
}
