package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalWidthFallsBackWithoutTTY(t *testing.T) {
	orig := os.Stdout
	defer func() { os.Stdout = orig }()

	rp, wp, err := os.Pipe()
	require.NoError(t, err)
	defer rp.Close()
	defer wp.Close()
	os.Stdout = wp

	assert.Equal(t, defaultWidth, TerminalWidth())
}
