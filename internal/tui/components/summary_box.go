package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one key/value line of a review box.
type SummaryRow struct {
	Key   string
	Value string
}

// SummaryBox lays review rows out as an aligned key/value grid inside a
// bordered frame. The key column is sized to the widest key.
type SummaryBox struct {
	rows     []SummaryRow
	keyCol   lipgloss.Style
	valueCol lipgloss.Style
	frame    lipgloss.Style
}

// NewSummaryBox creates a summary box rendering rows with the given styles.
func NewSummaryBox(rows []SummaryRow, keyStyle, valueStyle, borderStyle lipgloss.Style) SummaryBox {
	return SummaryBox{rows: rows, keyCol: keyStyle, valueCol: valueStyle, frame: borderStyle}
}

// View renders the box at the given terminal width.
func (s SummaryBox) View(width int) string {
	keyWidth := 0
	for _, r := range s.rows {
		if n := lipgloss.Width(r.Key); n > keyWidth {
			keyWidth = n
		}
	}

	lines := make([]string, len(s.rows))
	for i, r := range s.rows {
		lines[i] = "  " + s.keyCol.Width(keyWidth+2).Render(r.Key) + "  " + s.valueCol.Render(r.Value)
	}

	boxWidth := width - 8
	if boxWidth < 30 {
		boxWidth = 30
	}
	return "  " + s.frame.Width(boxWidth).Render(strings.Join(lines, "\n"))
}
