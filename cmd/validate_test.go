package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestSlipwayYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "slipway.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing slipway.yaml: %v", err)
	}
	return path
}

func TestRunValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestSlipwayYAML(t, dir, `
config_version: "1.0.0"
project: hello-world-nodejs
image:
  base_name: hello-world-nodejs
  builder: docker
artifacts:
  kind: local
  dir: artifacts
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err != nil {
		t.Fatalf("runValidate() error: %v", err)
	}
}

func TestRunValidate_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestSlipwayYAML(t, dir, `
project: hello-world-nodejs
image:
  base_name: hello-world-nodejs
  builder: rocket
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	err := runValidate(nil, nil)
	if err == nil {
		t.Fatal("expected error for unknown builder")
	}
	if !strings.Contains(err.Error(), "error(s)") {
		t.Errorf("error = %q, want an error count", err)
	}
}

func TestRunValidate_SemanticError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestSlipwayYAML(t, dir, `
project: Hello_World
image:
  base_name: hello-world-nodejs
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err == nil {
		t.Fatal("expected error for invalid project name")
	}
}

func TestRunValidate_WarningPassesByDefault(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestSlipwayYAML(t, dir, `
project: hello-world-nodejs
image:
  base_name: hello-world-nodejs
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err != nil {
		t.Fatalf("runValidate() error: %v", err)
	}
}

func TestRunValidate_StrictMode(t *testing.T) {
	dir := t.TempDir()
	// Missing config_version produces a warning, which strict mode promotes.
	cfgPath := writeTestSlipwayYAML(t, dir, `
project: hello-world-nodejs
image:
  base_name: hello-world-nodejs
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = true
	defer func() { strict = oldStrict }()

	err := runValidate(nil, nil)
	if err == nil {
		t.Fatal("expected error in strict mode with missing config_version warning")
	}
	if !strings.Contains(err.Error(), "strict mode") {
		t.Errorf("error = %q, want strict mode mention", err)
	}
}

func TestRunValidate_UnsupportedConfigVersion(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestSlipwayYAML(t, dir, `
config_version: "2.0.0"
project: hello-world-nodejs
image:
  base_name: hello-world-nodejs
`)

	oldCfg := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = oldCfg }()

	oldStrict := strict
	strict = false
	defer func() { strict = oldStrict }()

	if err := runValidate(nil, nil); err == nil {
		t.Fatal("expected error for unsupported config_version")
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	oldCfg := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "slipway.yaml")
	defer func() { cfgFile = oldCfg }()

	err := runValidate(nil, nil)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("error = %q, want reading config", err)
	}
}
