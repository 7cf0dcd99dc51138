package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvString returns the value of key, or def when key is unset.
func EnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// EnvBool parses key as a boolean, returning def when key is unset.
func EnvBool(key string, def bool) (bool, error) {
	if v, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("parse %s: %w", key, err)
		}
		return b, nil
	}
	return def, nil
}

// ResolveSettings inspects settings for keys ending in "_env" and resolves
// them from the environment. For example, "token_env: SONAR_TOKEN" produces
// {"token": os.Getenv("SONAR_TOKEN")}. Non-env settings pass through
// unchanged. A nil map resolves to nil.
func ResolveSettings(settings map[string]string) map[string]string {
	if settings == nil {
		return nil
	}
	resolved := make(map[string]string, len(settings))
	for k, v := range settings {
		if base, ok := strings.CutSuffix(k, "_env"); ok {
			resolved[base] = os.Getenv(v)
		} else {
			resolved[k] = v
		}
	}
	return resolved
}
