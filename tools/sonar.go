package tools

import (
	"context"
	"strings"

	"github.com/slipway-ci/slipway/config"
)

// Sonar invokes the sonar-scanner CLI against a configured analysis server.
type Sonar struct {
	Binary string // defaults to "sonar-scanner"
	Cfg    config.AnalysisRef
	Runner Runner
}

func (s *Sonar) bin() string {
	if s.Binary == "" {
		return "sonar-scanner"
	}
	return s.Binary
}

// Analyze runs static analysis over the checked-out sources in dir.
func (s *Sonar) Analyze(ctx context.Context, dir string) error {
	projectName := s.Cfg.ProjectName
	if projectName == "" {
		projectName = s.Cfg.ProjectKey
	}

	args := []string{
		"-Dsonar.projectKey=" + s.Cfg.ProjectKey,
		"-Dsonar.projectName=" + projectName,
		"-Dsonar.host.url=" + s.Cfg.ServerURL,
		"-Dsonar.sources=" + s.Cfg.Sources,
	}
	if len(s.Cfg.Exclusions) > 0 {
		args = append(args, "-Dsonar.exclusions="+strings.Join(s.Cfg.Exclusions, ","))
	}
	if token := s.Cfg.Token(); token != "" {
		args = append(args, "-Dsonar.token="+token)
	}

	_, err := s.Runner.Run(ctx, dir, s.bin(), args...)
	return err
}
