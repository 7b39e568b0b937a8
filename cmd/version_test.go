package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	out := versionString()

	assert.Contains(t, out, "ecomdash version "+Version)
	assert.Contains(t, out, "Built at: "+BuildTime)
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionStringReflectsInjectedValues(t *testing.T) {
	origVersion, origBuildTime := Version, BuildTime
	defer func() { Version, BuildTime = origVersion, origBuildTime }()

	Version = "1.2.3"
	BuildTime = "2018-06-01T00:00:00Z"

	out := versionString()
	assert.Contains(t, out, "ecomdash version 1.2.3")
	assert.Contains(t, out, "Built at: 2018-06-01T00:00:00Z")
}
