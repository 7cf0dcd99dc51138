// Package validate provides release parameter and config file validation.
package validate

import (
	"fmt"
	"regexp"
)

// releaseVersionPattern is deliberately stricter than full semver: exactly
// three dot-separated integer groups, no prefix, no pre-release or build
// metadata suffix, no surrounding whitespace.
var releaseVersionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// InvalidVersionError reports a release version that does not follow the
// MAJOR.MINOR.PATCH form.
type InvalidVersionError struct {
	Given string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("release version %q must match MAJOR.MINOR.PATCH (e.g. 1.2.3)", e.Given)
}

// ReleaseVersion checks v against the MAJOR.MINOR.PATCH pattern and returns
// an *InvalidVersionError if it does not conform. The check is pure: it never
// touches the filesystem, network, or any external tool.
func ReleaseVersion(v string) error {
	if !releaseVersionPattern.MatchString(v) {
		return &InvalidVersionError{Given: v}
	}
	return nil
}
