package config

import "fmt"

// Environment identifies a deployment target for a release.
type Environment string

const (
	EnvDev     Environment = "dev"
	EnvQA      Environment = "qa"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// ParseEnvironment validates an environment name. Unknown names are a usage
// error: no run is started for them.
func ParseEnvironment(s string) (Environment, error) {
	switch e := Environment(s); e {
	case EnvDev, EnvQA, EnvStaging, EnvProd:
		return e, nil
	default:
		return "", fmt.Errorf("environment %q must be one of: dev, qa, staging, prod", s)
	}
}

// ImageName returns the environment-qualified image name for base. Production
// releases keep the bare base name; every other environment gets an
// "{environment}-" prefix so parallel deployments stay distinguishable in a
// shared registry.
func (e Environment) ImageName(base string) string {
	if e == EnvProd {
		return base
	}
	return string(e) + "-" + base
}

// Params is the immutable parameter set a release run is started with. It is
// resolved once at the CLI boundary; pipeline components only ever read it.
type Params struct {
	ReleaseVersion string
	RepoURL        string
	Branch         string
	Environment    Environment
	SendEmail      bool
	BuildNumber    string
	BuildURL       string
}
