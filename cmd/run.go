package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slipway-ci/slipway/artifact"
	"github.com/slipway-ci/slipway/config"
	"github.com/slipway-ci/slipway/container"
	"github.com/slipway-ci/slipway/internal/tui"
	"github.com/slipway-ci/slipway/logging"
	"github.com/slipway-ci/slipway/notify"
	"github.com/slipway-ci/slipway/pipeline"
	"github.com/slipway-ci/slipway/scm"
	"github.com/slipway-ci/slipway/stages"
	"github.com/slipway-ci/slipway/tools"
	"github.com/slipway-ci/slipway/validate"
)

var (
	releaseVersion string
	repoURL        string
	branch         string
	environment    string
	sendEmail      bool
	buildNumber    string
	buildURL       string
	summaryPath    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a release run",
	Long: "Run the configured release pipeline for one version against a target environment.\n" +
		"Parameters fall back to the conventional CI environment variables: RELEASE_VERSION,\n" +
		"GIT_REPO_URL, BRANCH, ENVIRONMENT, SEND_EMAIL, BUILD_NUMBER, BUILD_URL.",
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&releaseVersion, "release-version", config.EnvString("RELEASE_VERSION", ""), "release version (MAJOR.MINOR.PATCH)")
	runCmd.Flags().StringVar(&repoURL, "repo-url", config.EnvString("GIT_REPO_URL", ""), "git repository URL")
	runCmd.Flags().StringVar(&branch, "branch", config.EnvString("BRANCH", "main"), "git branch to release")
	runCmd.Flags().StringVar(&environment, "environment", config.EnvString("ENVIRONMENT", ""), "target environment: dev, qa, staging, or prod")
	runCmd.Flags().BoolVar(&sendEmail, "send-email", defaultSendEmail(), "send the run notification")
	runCmd.Flags().StringVar(&buildNumber, "build-number", config.EnvString("BUILD_NUMBER", ""), "CI build number")
	runCmd.Flags().StringVar(&buildURL, "build-url", config.EnvString("BUILD_URL", ""), "CI build log URL")
	runCmd.Flags().StringVar(&summaryPath, "summary-json", "", "write a machine-readable run summary to this path")
}

// defaultSendEmail reads the SEND_EMAIL default from the CI environment.
// Notifications are opt-out: malformed values keep them on.
func defaultSendEmail() bool {
	v, err := config.EnvBool("SEND_EMAIL", true)
	if err != nil {
		return true
	}
	return v
}

// resolveParams builds the immutable parameter set for a run. A failure here
// is a usage error: no run is started and no post-run hook fires.
func resolveParams() (config.Params, error) {
	if releaseVersion == "" {
		return config.Params{}, fmt.Errorf("a release version is required (--release-version or RELEASE_VERSION)")
	}
	if repoURL == "" {
		return config.Params{}, fmt.Errorf("a repository URL is required (--repo-url or GIT_REPO_URL)")
	}
	target, err := config.ParseEnvironment(environment)
	if err != nil {
		return config.Params{}, err
	}

	b := branch
	if b == "" {
		b = "main"
	}

	return config.Params{
		ReleaseVersion: releaseVersion,
		RepoURL:        repoURL,
		Branch:         b,
		Environment:    target,
		SendEmail:      sendEmail,
		BuildNumber:    buildNumber,
		BuildURL:       buildURL,
	}, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	params, err := resolveParams()
	if err != nil {
		return err
	}

	cfgPath, err := configPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	violations, err := validate.ConfigDocument(data)
	if err != nil {
		return fmt.Errorf("checking config document: %w", err)
	}
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", v)
		}
		return fmt.Errorf("config validation failed: %d error(s)", len(violations))
	}

	rel, err := config.Parse(data)
	if err != nil {
		return err
	}

	if result := validate.Config(rel); !result.IsValid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
		}
		return fmt.Errorf("config validation failed: %d error(s)", len(result.Errors))
	}
	compatible, err := validate.IsCompatible(rel.ConfigVersion)
	if err != nil {
		return err
	}
	if !compatible {
		return fmt.Errorf("config_version %s is not supported by this binary (supports ^%s)", rel.ConfigVersion, validate.ConfigVersion)
	}

	log := logging.NewJSONLogger(os.Stderr, verbose)

	runner, err := assembleRunner(rel, log)
	if err != nil {
		return err
	}

	run := pipeline.NewRun(params, rel)
	log.Info("run started", map[string]any{
		"run":         run.ID,
		"project":     run.Project,
		"version":     params.ReleaseVersion,
		"environment": string(params.Environment),
		"image":       run.ImageName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	status := runner.Execute(ctx, run)
	log.Info("run finished", map[string]any{"run": run.ID, "status": string(status)})

	if tui.IsTTY() {
		fmt.Print(tui.RenderRunSummary(run, tui.NewStyleSet(tui.DetectTheme(themeOverride))))
	} else {
		fmt.Print(tui.RenderPlainSummary(run))
	}

	if summaryPath != "" {
		if err := pipeline.WriteSummary(summaryPath, run); err != nil {
			log.Warn("writing run summary failed", map[string]any{"path": summaryPath, "error": err.Error()})
		}
	}

	if status == pipeline.StatusFailure {
		return fmt.Errorf("run %s finished with status %s", run.ID, status)
	}
	return nil
}

// assembleRunner wires the stage sequence and the post-run hooks from the
// release config.
func assembleRunner(rel *config.Release, log logging.Logger) (*pipeline.Runner, error) {
	seq, err := assembleStages(rel)
	if err != nil {
		return nil, err
	}
	store, err := pickStore(rel.Artifacts)
	if err != nil {
		return nil, err
	}

	var mailer notify.Mailer
	if rel.Mail.Host != "" {
		mailer = notify.NewSMTPMailer(rel.Mail)
	}

	publisher := &artifact.Publisher{Store: store, Log: log}
	notifier := &notify.Dispatcher{Mailer: mailer, Log: log}
	return pipeline.NewRunner(seq, publisher, notifier, log), nil
}

// assembleStages builds the ordered stage sequence for a release. The
// analysis stage is only present when a server is configured.
func assembleStages(rel *config.Release) ([]pipeline.Stage, error) {
	builder, err := pickBuilder(rel.Image.Builder)
	if err != nil {
		return nil, err
	}

	npm := &tools.NPM{}
	seq := []pipeline.Stage{
		stages.VersionCheck{},
		&stages.Checkout{SCM: &scm.Git{Depth: 1}, Workspace: rel.Workspace},
		&stages.Install{PM: npm},
		&stages.Test{Tester: npm},
	}
	if rel.Analysis.ServerURL != "" {
		seq = append(seq, &stages.Analysis{Analyzer: &tools.Sonar{Cfg: rel.Analysis}})
	}
	seq = append(seq,
		&stages.ImageBuild{Builder: builder, Dockerfile: rel.Image.Dockerfile},
		&stages.Scan{Scanner: &tools.Trivy{Cfg: rel.Scan}},
	)
	return seq, nil
}

func pickBuilder(name string) (container.Builder, error) {
	if name != "" {
		b := container.Get(name)
		if b == nil {
			return nil, fmt.Errorf("unknown builder %q (want docker, podman, or buildah)", name)
		}
		return b, nil
	}

	b := container.Detect()
	if b == nil {
		return nil, fmt.Errorf("no container builder found on this host (want docker, podman, or buildah)")
	}
	return b, nil
}

func pickStore(cfg config.ArtifactsRef) (artifact.Store, error) {
	if cfg.Kind == "s3" {
		return artifact.NewMinioStore(cfg)
	}
	return &artifact.LocalStore{Dir: cfg.Dir}, nil
}
