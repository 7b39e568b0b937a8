package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFuncRespectsSupport(t *testing.T) {
	orig := supportsColor
	defer func() { supportsColor = orig }()

	supportsColor = false
	assert.Equal(t, "hello", ColorSuccess("hello"))

	supportsColor = true
	assert.NotEqual(t, "hello", ColorSuccess("hello"))
	assert.Contains(t, ColorSuccess("hello"), "hello")
}

func TestSetColorMode(t *testing.T) {
	orig := supportsColor
	defer func() { supportsColor = orig }()

	SetColorMode("never")
	assert.False(t, supportsColor)

	SetColorMode("always")
	assert.True(t, supportsColor)

	SetColorMode("auto")
	assert.True(t, supportsColor) // auto leaves the detected value alone
}
