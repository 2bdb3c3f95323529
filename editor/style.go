package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the input line's rendering. Each Role maps to one style.
type Style struct {
	Main      lipgloss.Style
	Mark      lipgloss.Style
	Unchanged lipgloss.Style
	History   lipgloss.Style
	Disabled  lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Main:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
		Mark:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("110")),
		Unchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("237")),
		History:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}

func (s Style) forRole(r Role) lipgloss.Style {
	switch r {
	case RoleMark:
		return s.Mark
	case RoleUnchanged:
		return s.Unchanged
	case RoleHistory:
		return s.History
	case RoleDisabled:
		return s.Disabled
	default:
		return s.Main
	}
}
