package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineinput/editor"
)

const maxAccepted = 8

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	listStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	candStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// historyList is the modal list shown for editor.HistoryRequestMsg.
type historyList struct {
	name    string
	entries []string
	sel     int
	edited  bool
}

type app struct {
	s        *session
	input    editor.Model
	help     help.Model
	list     *historyList
	accepted []string
}

func newApp(s *session) app {
	return app{
		s:     s,
		input: editor.New(s.editorConfig()),
		help:  help.New(),
	}
}

func (a app) Init() tea.Cmd { return a.input.LoadHistoryCmd(a.s.store) }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.input = a.input.SetWidth(min(a.s.cfg.Width, max(msg.Width-4, 8)))
		a.help.Width = msg.Width
		return a, nil

	case editor.HistoryRequestMsg:
		a.list = &historyList{name: msg.Name, entries: msg.Entries, sel: len(msg.Entries) - 1}
		return a, nil

	case tea.KeyMsg:
		if a.list != nil {
			return a.updateList(msg)
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			a.input.Destroy()
			return a, tea.Quit
		case "enter":
			return a.accept(), nil
		case "f1":
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// accept records the line, clears the field and saves the history.
func (a app) accept() app {
	line := a.input.Text()
	if !a.s.cfg.Password {
		a.accepted = append(a.accepted, line)
	}
	if n := len(a.accepted) - maxAccepted; n > 0 {
		a.accepted = a.accepted[n:]
	}

	if a.s.cfg.Password {
		a.input = a.input.AssignText("")
	} else {
		a.input = a.input.Clean()
	}
	var err error
	if a.input, err = a.input.SaveHistory(a.s.store, false); err != nil {
		a.s.logger.Printf("save history: %v", err)
	}
	return a
}

func (a app) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := a.list
	picked := editor.HistoryPickedMsg{Name: l.name}
	switch msg.String() {
	case "up", "ctrl+p":
		l.sel = max(l.sel-1, 0)
		return a, nil
	case "down", "ctrl+n":
		l.sel = min(l.sel+1, len(l.entries)-1)
		return a, nil
	case "delete":
		l.entries = append(l.entries[:l.sel:l.sel], l.entries[l.sel+1:]...)
		l.edited = true
		l.sel = min(l.sel, len(l.entries)-1)
		if len(l.entries) > 0 {
			return a, nil
		}
	case "enter":
		picked.Result.Text = l.entries[l.sel]
		picked.Chosen = true
	case "esc", "ctrl+c":
	default:
		return a, nil
	}

	if l.edited {
		picked.Result.Entries = append([]string{}, l.entries...)
	}
	a.list = nil
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(picked)
	return a, cmd
}

func (a app) View() string {
	var sb strings.Builder
	for _, line := range a.accepted {
		sb.WriteString(acceptedStyle.Render("  "+line) + "\n")
	}
	sb.WriteString(promptStyle.Render("> ") + a.input.View() + "\n")

	switch {
	case a.list != nil:
		sb.WriteString(a.listView() + "\n")
	case len(a.input.Completions()) > 1:
		sb.WriteString(candStyle.Render(strings.Join(a.input.Completions(), "  ")) + "\n")
	}
	sb.WriteString("\n" + a.help.View(a.input.KeyMap()) + "\n")
	sb.WriteString(acceptedStyle.Render("enter accepts · esc quits · f1 more keys"))
	return sb.String()
}

func (a app) listView() string {
	rows := make([]string, len(a.list.entries))
	for i, e := range a.list.entries {
		if i == a.list.sel {
			rows[i] = selectedStyle.Render(e)
		} else {
			rows[i] = e
		}
	}
	title := fmt.Sprintf("history: %s (enter picks, del removes)", a.list.name)
	return listStyle.Render(title + "\n" + strings.Join(rows, "\n"))
}
