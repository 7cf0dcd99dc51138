package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slipway-ci/slipway/internal/tui"
	"github.com/slipway-ci/slipway/internal/tui/components"
)

// BuilderStep picks the container build tool.
type BuilderStep struct {
	sel      components.SingleSelect
	complete bool
	builder  string
}

// NewBuilderStep creates a new builder step.
func NewBuilderStep(styles *tui.StyleSet) *BuilderStep {
	items := []components.SingleSelectItem{
		{Label: "Auto-detect", Value: "", Description: "First of docker, podman, buildah found on this host"},
		{Label: "Docker", Value: "docker"},
		{Label: "Podman", Value: "podman"},
		{Label: "Buildah", Value: "buildah"},
	}

	sel := components.NewSingleSelect(
		items,
		styles.Theme.Accent,
		styles.Theme.Primary,
		styles.Theme.Secondary,
		styles.Theme.Dim,
		styles.Theme.Border,
		styles.Theme.ActiveBorder,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &BuilderStep{sel: sel}
}

func (s *BuilderStep) Title() string { return "Builder" }

func (s *BuilderStep) Init() tea.Cmd {
	return s.sel.Init()
}

func (s *BuilderStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.sel.Update(msg)
	s.sel = updated

	if s.sel.Done() {
		s.complete = true
		_, s.builder = s.sel.Selected()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *BuilderStep) View(width int) string {
	return s.sel.View(width)
}

func (s *BuilderStep) Complete() bool {
	return s.complete
}

func (s *BuilderStep) Summary() string {
	if s.builder == "" {
		return "auto-detect"
	}
	return s.builder
}

func (s *BuilderStep) Apply(ctx *tui.ScaffoldContext) {
	ctx.Builder = s.builder
}
