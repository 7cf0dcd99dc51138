package main

import (
	slipwaycmd "github.com/slipway-ci/slipway/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	slipwaycmd.SetVersionInfo(version, commit)
	slipwaycmd.Execute()
}
