package artifact

import (
	"strings"
	"testing"

	"github.com/slipway-ci/slipway/config"
)

func TestNewMinioStore(t *testing.T) {
	store, err := NewMinioStore(config.ArtifactsRef{
		Endpoint: "minio.local:9000",
		Bucket:   "reports",
		Settings: map[string]string{"access_key": "ak", "secret_key": "sk"},
	})
	if err != nil {
		t.Fatalf("NewMinioStore() error: %v", err)
	}
	if store.bucket != "reports" {
		t.Errorf("bucket = %q, want reports", store.bucket)
	}
}

func TestNewMinioStoreBadEndpoint(t *testing.T) {
	_, err := NewMinioStore(config.ArtifactsRef{Endpoint: "not a host", Bucket: "reports"})
	if err == nil {
		t.Error("NewMinioStore() accepted a malformed endpoint")
	}
}

func TestContentType(t *testing.T) {
	if got := contentType("trivy-report.html"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("contentType(html) = %q", got)
	}
	if got := contentType("blob.slipway"); got != "application/octet-stream" {
		t.Errorf("contentType(unknown) = %q, want octet-stream", got)
	}
}
