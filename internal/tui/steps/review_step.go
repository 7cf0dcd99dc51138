package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slipway-ci/slipway/internal/tui"
	"github.com/slipway-ci/slipway/internal/tui/components"
)

// ReviewStep handles the final summary and confirmation. The config file
// itself is written by the caller after the wizard exits.
type ReviewStep struct {
	styles   *tui.StyleSet
	summary  components.SummaryBox
	complete bool
	kbd      components.HintBar
}

// NewReviewStep creates a new review step.
func NewReviewStep(styles *tui.StyleSet) *ReviewStep {
	return &ReviewStep{
		styles: styles,
		kbd:    components.NewHintBar(styles.KbdKey, styles.KbdDesc, components.ReviewHints()...),
	}
}

// Prepare builds the summary from the scaffold context.
func (s *ReviewStep) Prepare(ctx *tui.ScaffoldContext) {
	s.complete = false

	builder := ctx.Builder
	if builder == "" {
		builder = "auto-detect"
	}
	rows := []components.SummaryRow{
		{Key: "Project", Value: ctx.Project},
		{Key: "Image", Value: ctx.BaseName},
		{Key: "Builder", Value: builder},
	}

	s.summary = components.NewSummaryBox(
		rows,
		s.styles.SummaryKey,
		s.styles.SummaryValue,
		s.styles.BorderedBox,
	)
}

func (s *ReviewStep) Title() string { return "Review" }

func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

func (s *ReviewStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		case "backspace":
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		}
	}
	return s, nil
}

func (s *ReviewStep) View(width int) string {
	out := s.summary.View(width) + "\n\n"
	out += "  " + s.styles.AccentTxt.Render("Press Enter to write slipway.yaml, Backspace to go back") + "\n\n"
	out += s.kbd.View()
	return out
}

func (s *ReviewStep) Complete() bool {
	return s.complete
}

func (s *ReviewStep) Summary() string {
	return "confirmed"
}

func (s *ReviewStep) Apply(ctx *tui.ScaffoldContext) {
	// Nothing to apply; the scaffold is written by the caller.
}
