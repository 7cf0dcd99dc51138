package validate

import (
	"strings"
	"testing"

	"github.com/slipway-ci/slipway/config"
)

func validRelease() *config.Release {
	rel, err := config.Parse([]byte(`
config_version: "1.0.0"
project: hello-world-nodejs
image:
  base_name: hello-world-nodejs
`))
	if err != nil {
		panic(err)
	}
	return rel
}

func hasEntry(entries []string, fragment string) bool {
	for _, e := range entries {
		if strings.Contains(e, fragment) {
			return true
		}
	}
	return false
}

func TestConfigValid(t *testing.T) {
	r := Config(validRelease())
	if !r.IsValid() {
		t.Fatalf("valid config rejected: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Release)
		want   string
	}{
		{"bad project name", func(r *config.Release) { r.Project = "Hello World" }, "must match"},
		{"bad image name", func(r *config.Release) { r.Image.BaseName = "-bad" }, "not a valid image name"},
		{"unknown builder", func(r *config.Release) { r.Image.Builder = "kaniko" }, "image.builder"},
		{"analysis without key", func(r *config.Release) { r.Analysis.ServerURL = "https://sonar.local" }, "analysis.project_key"},
		{"unknown artifact kind", func(r *config.Release) { r.Artifacts.Kind = "ftp" }, "artifacts.kind"},
		{"s3 without endpoint", func(r *config.Release) { r.Artifacts.Kind = "s3"; r.Artifacts.Bucket = "b" }, "artifacts.endpoint"},
		{"s3 without bucket", func(r *config.Release) { r.Artifacts.Kind = "s3"; r.Artifacts.Endpoint = "minio:9000" }, "artifacts.bucket"},
		{"recipients without host", func(r *config.Release) { r.Mail.To = []string{"team@example.com"} }, "mail.host"},
		{"host without from", func(r *config.Release) { r.Mail.Host = "smtp.local" }, "mail.from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := validRelease()
			tt.mutate(rel)
			r := Config(rel)
			if r.IsValid() {
				t.Fatal("config accepted, want error")
			}
			if !hasEntry(r.Errors, tt.want) {
				t.Errorf("errors %v do not mention %q", r.Errors, tt.want)
			}
		})
	}
}

func TestConfigWarnings(t *testing.T) {
	rel := validRelease()
	rel.ConfigVersion = ""
	rel.Analysis.ServerURL = "https://sonar.local"
	rel.Analysis.ProjectKey = "hello"

	r := Config(rel)
	if !r.IsValid() {
		t.Fatalf("config rejected: %v", r.Errors)
	}
	if !hasEntry(r.Warnings, "config_version") {
		t.Errorf("warnings %v do not mention config_version", r.Warnings)
	}
	if !hasEntry(r.Warnings, "anonymously") {
		t.Errorf("warnings %v do not mention anonymous analysis", r.Warnings)
	}
}
