// Package steps contains the init wizard screens.
package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slipway-ci/slipway/internal/tui"
	"github.com/slipway-ci/slipway/internal/tui/components"
	"github.com/slipway-ci/slipway/validate"
)

// ProjectStep collects the project identifier.
type ProjectStep struct {
	input    components.TextInput
	complete bool
	project  string
	prefill  string
}

// NewProjectStep creates a new project step.
func NewProjectStep(styles *tui.StyleSet, prefill string) *ProjectStep {
	input := components.NewTextInput(
		"What is the project called?",
		"hello-world-nodejs",
		validate.ProjectName,
		styles.Theme.Accent,
		styles.AccentTxt,
		styles.InactiveBorder,
		styles.ErrorTxt,
		styles.KbdKey,
		styles.KbdDesc,
	)

	if prefill != "" {
		input.SetValue(prefill)
	}

	return &ProjectStep{
		input:   input,
		prefill: prefill,
	}
}

func (s *ProjectStep) Title() string { return "Project" }

func (s *ProjectStep) Init() tea.Cmd {
	// If pre-filled, auto-complete
	if s.prefill != "" {
		s.complete = true
		s.project = s.prefill
		return func() tea.Msg { return tui.StepCompleteMsg{} }
	}
	return s.input.Init()
}

func (s *ProjectStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.complete = true
		s.project = s.input.Value()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *ProjectStep) View(width int) string {
	return s.input.View(width)
}

func (s *ProjectStep) Complete() bool {
	return s.complete
}

func (s *ProjectStep) Summary() string {
	return s.project
}

func (s *ProjectStep) Apply(ctx *tui.ScaffoldContext) {
	ctx.Project = s.project
}
