package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slipway-ci/slipway/internal/tui"
	"github.com/slipway-ci/slipway/internal/tui/components"
	"github.com/slipway-ci/slipway/validate"
)

// ImageStep collects the base name of the container image a release builds.
type ImageStep struct {
	input    components.TextInput
	complete bool
	baseName string
}

// NewImageStep creates a new image step.
func NewImageStep(styles *tui.StyleSet) *ImageStep {
	input := components.NewTextInput(
		"What should the release image be called?",
		"hello-world-nodejs",
		validate.ImageBaseName,
		styles.Theme.Accent,
		styles.AccentTxt,
		styles.InactiveBorder,
		styles.ErrorTxt,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &ImageStep{input: input}
}

// Prepare prefills the base name from the chosen project.
func (s *ImageStep) Prepare(ctx *tui.ScaffoldContext) {
	if s.input.Value() == "" && ctx.Project != "" {
		s.input.SetValue(ctx.Project)
	}
}

func (s *ImageStep) Title() string { return "Image" }

func (s *ImageStep) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ImageStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.complete = true
		s.baseName = s.input.Value()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *ImageStep) View(width int) string {
	return s.input.View(width)
}

func (s *ImageStep) Complete() bool {
	return s.complete
}

func (s *ImageStep) Summary() string {
	return s.baseName
}

func (s *ImageStep) Apply(ctx *tui.ScaffoldContext) {
	ctx.BaseName = s.baseName
}
