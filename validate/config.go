package validate

import (
	"fmt"
	"regexp"

	"github.com/slipway-ci/slipway/config"
)

var (
	projectPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	imageNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._/-]*$`)

	knownBuilders      = map[string]bool{"docker": true, "podman": true, "buildah": true}
	knownArtifactKinds = map[string]bool{"local": true, "s3": true}
)

// Result holds errors and warnings from release config validation.
type Result struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether validation produced no errors.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// ProjectName checks a project identifier.
func ProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project is required")
	}
	if !projectPattern.MatchString(name) {
		return fmt.Errorf("project %q must match ^[a-z0-9-]+$", name)
	}
	return nil
}

// ImageBaseName checks the unqualified image name a release builds.
func ImageBaseName(name string) error {
	if name == "" {
		return fmt.Errorf("image.base_name is required")
	}
	if !imageNamePattern.MatchString(name) {
		return fmt.Errorf("image.base_name %q is not a valid image name", name)
	}
	return nil
}

// Config checks a parsed Release for semantic errors and warnings beyond
// what the document schema expresses.
func Config(rel *config.Release) *Result {
	r := &Result{}

	if err := ProjectName(rel.Project); err != nil {
		r.Errors = append(r.Errors, err.Error())
	}
	if err := ImageBaseName(rel.Image.BaseName); err != nil {
		r.Errors = append(r.Errors, err.Error())
	}

	if rel.Image.Builder != "" && !knownBuilders[rel.Image.Builder] {
		r.Errors = append(r.Errors, fmt.Sprintf("image.builder %q must be one of: docker, podman, buildah", rel.Image.Builder))
	}

	if rel.ConfigVersion == "" {
		r.Warnings = append(r.Warnings, "config_version is not set; assuming the current schema version")
	}

	if rel.Analysis.ServerURL != "" {
		if rel.Analysis.ProjectKey == "" {
			r.Errors = append(r.Errors, "analysis.project_key is required when analysis.server_url is set")
		}
		if rel.Analysis.Token() == "" {
			r.Warnings = append(r.Warnings, "analysis token is empty; the scanner will connect anonymously")
		}
	}

	if !knownArtifactKinds[rel.Artifacts.Kind] {
		r.Errors = append(r.Errors, fmt.Sprintf("artifacts.kind %q must be one of: local, s3", rel.Artifacts.Kind))
	}
	if rel.Artifacts.Kind == "s3" {
		if rel.Artifacts.Endpoint == "" {
			r.Errors = append(r.Errors, "artifacts.endpoint is required for kind s3")
		}
		if rel.Artifacts.Bucket == "" {
			r.Errors = append(r.Errors, "artifacts.bucket is required for kind s3")
		}
		if rel.Artifacts.AccessKey() == "" || rel.Artifacts.SecretKey() == "" {
			r.Warnings = append(r.Warnings, "artifacts credentials are incomplete; uploads may be rejected")
		}
	}

	if len(rel.Mail.To) > 0 && rel.Mail.Host == "" {
		r.Errors = append(r.Errors, "mail.host is required when mail.to is set")
	}
	if rel.Mail.Host != "" {
		if rel.Mail.From == "" {
			r.Errors = append(r.Errors, "mail.from is required when mail.host is set")
		}
		if rel.Mail.Port < 1 || rel.Mail.Port > 65535 {
			r.Errors = append(r.Errors, fmt.Sprintf("mail.port %d is out of range", rel.Mail.Port))
		}
	}

	return r
}
