package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSummaryBoxRendersRows(t *testing.T) {
	box := NewSummaryBox(
		[]SummaryRow{
			{Key: "Project", Value: "hello-world-nodejs"},
			{Key: "Builder", Value: "docker"},
		},
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
	)

	out := box.View(80)
	for _, want := range []string{"Project", "hello-world-nodejs", "Builder", "docker"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary box missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryBoxAlignsValues(t *testing.T) {
	box := NewSummaryBox(
		[]SummaryRow{
			{Key: "Image", Value: "x"},
			{Key: "Environment", Value: "y"},
		},
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
	)

	lines := strings.Split(box.View(80), "\n")
	var cols []int
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if i := strings.IndexAny(trimmed, "xy"); i >= 0 {
			cols = append(cols, i)
		}
	}
	if len(cols) != 2 || cols[0] != cols[1] {
		t.Errorf("value columns not aligned: %v\n%s", cols, box.View(80))
	}
}

func TestHintBarRendersHints(t *testing.T) {
	bar := NewHintBar(lipgloss.NewStyle(), lipgloss.NewStyle(), ReviewHints()...)

	out := bar.View()
	for _, want := range []string{"confirm", "back", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("hint bar missing %q: %q", want, out)
		}
	}
}

func TestHintBarZeroValueRendersNothing(t *testing.T) {
	if out := (HintBar{}).View(); out != "" {
		t.Errorf("zero hint bar rendered %q, want empty", out)
	}
}
