package cmd

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/slipway-ci/slipway/internal/tui"
	"github.com/slipway-ci/slipway/internal/tui/steps"
	"github.com/slipway-ci/slipway/validate"
)

var (
	noInput   bool
	forceInit bool
)

// configTemplate is the scaffolded slipway.yaml. Optional sections ship
// commented out so a fresh file validates as written.
const configTemplate = `config_version: "{{ .ConfigVersion }}"
project: {{ .Project }}

image:
  base_name: {{ .BaseName }}
{{- if .Builder }}
  builder: {{ .Builder }}
{{- end }}

artifacts:
  kind: local
  dir: artifacts

# Uncomment to gate releases on a static analysis server:
# analysis:
#   server_url: https://sonar.example.com
#   project_key: {{ .Project }}
#   settings:
#     token_env: SONAR_TOKEN

# Uncomment to tune the image vulnerability scan:
# scan:
#   severity: HIGH,CRITICAL

# Uncomment to email run notifications:
# mail:
#   host: smtp.example.com
#   port: 587
#   from: ci@example.com
#   to: [team@example.com]
`

var initCmd = &cobra.Command{
	Use:   "init [project]",
	Short: "Write a starter slipway.yaml",
	Long: "Scaffold a slipway.yaml for a project. With a terminal attached this walks\n" +
		"through a short wizard; --no-input writes the defaults straight away.",
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&noInput, "no-input", false, "skip the wizard and use defaults")
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfgPath, err := configPath()
	if err != nil {
		return err
	}
	if !forceInit {
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
		}
	}

	prefill := ""
	if len(args) > 0 {
		prefill = args[0]
	}

	var sctx *tui.ScaffoldContext
	if !noInput && tui.IsTTY() {
		sctx, err = runWizard(prefill)
		if err != nil {
			return err
		}
	} else {
		project := prefill
		if project == "" {
			project = "my-service"
		}
		sctx = &tui.ScaffoldContext{Project: project}
	}
	if sctx.BaseName == "" {
		sctx.BaseName = sctx.Project
	}

	if err := validate.ProjectName(sctx.Project); err != nil {
		return err
	}
	if err := validate.ImageBaseName(sctx.BaseName); err != nil {
		return err
	}

	tmpl, err := template.New("slipway.yaml").Parse(configTemplate)
	if err != nil {
		return fmt.Errorf("parsing config template: %w", err)
	}
	var buf bytes.Buffer
	data := struct {
		ConfigVersion string
		Project       string
		BaseName      string
		Builder       string
	}{validate.ConfigVersion, sctx.Project, sctx.BaseName, sctx.Builder}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering config template: %w", err)
	}

	if err := os.WriteFile(cfgPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Wrote %s\n", cfgPath)
	return nil
}

// runWizard collects scaffold answers interactively.
func runWizard(prefill string) (*tui.ScaffoldContext, error) {
	theme := tui.DetectTheme(themeOverride)
	styles := tui.NewStyleSet(theme)

	model := tui.NewWizardModel(theme, []tui.Step{
		steps.NewProjectStep(styles, prefill),
		steps.NewImageStep(styles),
		steps.NewBuilderStep(styles),
		steps.NewReviewStep(styles),
	}, appVersion)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}
	wiz, ok := final.(tui.WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected wizard model %T", final)
	}
	if wiz.Err() != nil {
		return nil, wiz.Err()
	}
	if !wiz.Done() {
		return nil, fmt.Errorf("wizard cancelled")
	}
	return wiz.Context(), nil
}
