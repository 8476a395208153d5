// SPDX-License-Identifier: MIT

package repl

import "github.com/charmbracelet/lipgloss"

// Styles controls how the read loop decorates its output.
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Info   lipgloss.Style

	plain bool
}

// DefaultStyles returns the colored terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
		Info:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).Italic(true),
	}
}

// PlainStyles returns styles that leave text untouched, for pipes and tests.
func PlainStyles() Styles {
	return Styles{plain: true}
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if s.plain {
		return text
	}

	return st.Render(text)
}
