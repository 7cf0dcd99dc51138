// Package config holds the slipway.yaml release configuration and the
// immutable parameter set a run is started with.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Release represents the top-level slipway.yaml configuration.
type Release struct {
	ConfigVersion string       `yaml:"config_version"`
	Project       string       `yaml:"project"`
	Workspace     string       `yaml:"workspace,omitempty"`
	Image         ImageRef     `yaml:"image"`
	Analysis      AnalysisRef  `yaml:"analysis,omitempty"`
	Scan          ScanRef      `yaml:"scan,omitempty"`
	Artifacts     ArtifactsRef `yaml:"artifacts,omitempty"`
	Mail          MailRef      `yaml:"mail,omitempty"`
}

// ImageRef configures the container image produced by a release.
type ImageRef struct {
	BaseName   string `yaml:"base_name"`
	Dockerfile string `yaml:"dockerfile,omitempty"` // default: "Dockerfile"
	Builder    string `yaml:"builder,omitempty"`    // docker, podman, buildah (default: auto-detect)
}

// AnalysisRef configures the static analysis server connection.
type AnalysisRef struct {
	ServerURL   string            `yaml:"server_url"`
	ProjectKey  string            `yaml:"project_key"`
	ProjectName string            `yaml:"project_name,omitempty"`
	Sources     string            `yaml:"sources,omitempty"` // default: "."
	Exclusions  []string          `yaml:"exclusions,omitempty"`
	Settings    map[string]string `yaml:"settings,omitempty"`
}

// Token returns the analysis auth token from resolved settings.
func (a AnalysisRef) Token() string { return a.Settings["token"] }

// ScanRef configures the image vulnerability scanner.
type ScanRef struct {
	Binary   string `yaml:"binary,omitempty"`   // default: "trivy"
	Template string `yaml:"template,omitempty"` // HTML report template, passed as @path
	Report   string `yaml:"report,omitempty"`   // default: "trivy-report.html"
	Severity string `yaml:"severity,omitempty"` // e.g. "HIGH,CRITICAL"
}

// ArtifactsRef configures where published reports are archived.
type ArtifactsRef struct {
	Kind     string            `yaml:"kind,omitempty"` // local or s3 (default: local)
	Dir      string            `yaml:"dir,omitempty"`  // local archive directory
	Endpoint string            `yaml:"endpoint,omitempty"`
	Bucket   string            `yaml:"bucket,omitempty"`
	UseSSL   bool              `yaml:"use_ssl,omitempty"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// AccessKey returns the object store access key from resolved settings.
func (a ArtifactsRef) AccessKey() string { return a.Settings["access_key"] }

// SecretKey returns the object store secret key from resolved settings.
func (a ArtifactsRef) SecretKey() string { return a.Settings["secret_key"] }

// MailRef configures the SMTP transport for run notifications.
type MailRef struct {
	Host     string            `yaml:"host,omitempty"`
	Port     int               `yaml:"port,omitempty"` // default: 587
	From     string            `yaml:"from,omitempty"`
	To       []string          `yaml:"to,omitempty"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// Username returns the SMTP username from resolved settings.
func (m MailRef) Username() string { return m.Settings["username"] }

// Password returns the SMTP password from resolved settings.
func (m MailRef) Password() string { return m.Settings["password"] }

// Load reads and parses a slipway.yaml file.
func Load(path string) (*Release, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses raw YAML bytes into a Release, validates required fields,
// applies defaults and resolves "_env" settings. Resolution happens exactly
// once, here; components never read ambient process state afterwards.
func Parse(data []byte) (*Release, error) {
	var rel Release
	if err := yaml.Unmarshal(data, &rel); err != nil {
		return nil, fmt.Errorf("parsing release config: %w", err)
	}

	if rel.Project == "" {
		return nil, fmt.Errorf("release config: project is required")
	}
	if rel.Image.BaseName == "" {
		return nil, fmt.Errorf("release config: image.base_name is required")
	}

	rel.applyDefaults()
	rel.Analysis.Settings = ResolveSettings(rel.Analysis.Settings)
	rel.Artifacts.Settings = ResolveSettings(rel.Artifacts.Settings)
	rel.Mail.Settings = ResolveSettings(rel.Mail.Settings)
	return &rel, nil
}

func (r *Release) applyDefaults() {
	if r.Image.Dockerfile == "" {
		r.Image.Dockerfile = "Dockerfile"
	}
	if r.Analysis.Sources == "" {
		r.Analysis.Sources = "."
	}
	if r.Scan.Binary == "" {
		r.Scan.Binary = "trivy"
	}
	if r.Scan.Report == "" {
		r.Scan.Report = "trivy-report.html"
	}
	if r.Artifacts.Kind == "" {
		r.Artifacts.Kind = "local"
	}
	if r.Artifacts.Dir == "" {
		r.Artifacts.Dir = "artifacts"
	}
	if r.Mail.Port == 0 {
		r.Mail.Port = 587
	}
}
