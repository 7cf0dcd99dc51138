package validate

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ConfigVersion is the release config schema version this binary supports.
// slipway.yaml files declare config_version to indicate compatibility.
const ConfigVersion = "1.0.0"

// IsCompatible reports whether a declared config_version can be handled by
// this binary, using a caret constraint over ConfigVersion: any 1.x.y
// declaration is accepted, a 2.0.0 declaration is not. An empty declaration
// is treated as compatible. An unparseable declaration is an error.
func IsCompatible(declared string) (bool, error) {
	if declared == "" {
		return true, nil
	}

	constraint, err := semver.NewConstraint("^" + ConfigVersion)
	if err != nil {
		return false, fmt.Errorf("invalid supported config version: %w", err)
	}

	v, err := semver.NewVersion(declared)
	if err != nil {
		return false, fmt.Errorf("invalid config_version %q: %w", declared, err)
	}

	return constraint.Check(v), nil
}
