package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slipway-ci/slipway/config"
	"github.com/slipway-ci/slipway/validate"
)

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate slipway.yaml",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfgPath, err := configPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// Schema violations make the document unparseable in spirit even when
	// the YAML itself loads, so settle them before the semantic pass.
	violations, err := validate.ConfigDocument(data)
	if err != nil {
		return fmt.Errorf("checking config document: %w", err)
	}
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", v)
		}
		return fmt.Errorf("validation failed: %d error(s)", len(violations))
	}

	rel, err := config.Parse(data)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	result := validate.Config(rel)

	compatible, err := validate.IsCompatible(rel.ConfigVersion)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
	} else if !compatible {
		result.Errors = append(result.Errors, fmt.Sprintf("config_version %s is not supported by this binary (supports ^%s)", rel.ConfigVersion, validate.ConfigVersion))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
	}

	if strict && len(result.Warnings) > 0 {
		return fmt.Errorf("validation failed: %d warning(s) treated as errors in strict mode", len(result.Warnings))
	}

	if !result.IsValid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	fmt.Println("Validation passed.")
	return nil
}
