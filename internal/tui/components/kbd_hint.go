package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint pairs a key chord with the action it triggers.
type Hint struct {
	Keys   string
	Action string
}

// HintBar is the footer row of keyboard hints under a wizard screen. Hints
// are fixed at construction; the zero value renders nothing.
type HintBar struct {
	hints []Hint
	key   lipgloss.Style
	desc  lipgloss.Style
}

// NewHintBar creates a hint bar with the given styles and hints.
func NewHintBar(keyStyle, descStyle lipgloss.Style, hints ...Hint) HintBar {
	return HintBar{hints: hints, key: keyStyle, desc: descStyle}
}

// View renders the hints as a single separated row.
func (h HintBar) View() string {
	if len(h.hints) == 0 {
		return ""
	}

	parts := make([]string, len(h.hints))
	for i, hint := range h.hints {
		parts[i] = h.key.Render(hint.Keys) + " " + h.desc.Render(hint.Action)
	}
	return "  " + strings.Join(parts, h.desc.Render("  ·  "))
}

// SelectHints are the hints for single-select screens.
func SelectHints() []Hint {
	return []Hint{
		{Keys: "↑↓", Action: "navigate"},
		{Keys: "⏎", Action: "select"},
		{Keys: "esc", Action: "quit"},
	}
}

// InputHints are the hints for text entry screens.
func InputHints() []Hint {
	return []Hint{
		{Keys: "⏎", Action: "submit"},
		{Keys: "esc", Action: "quit"},
	}
}

// ReviewHints are the hints for the final confirmation screen.
func ReviewHints() []Hint {
	return []Hint{
		{Keys: "⏎", Action: "confirm"},
		{Keys: "backspace", Action: "back"},
		{Keys: "esc", Action: "quit"},
	}
}
