package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out := mustRun(t, "version")
	assert.Equal(t, "consultready dev (none)\n", out)
}

func TestTBSACommand(t *testing.T) {
	out := mustRun(t, "tbsa", "torso_ant", "l_leg_ant", "--json")
	assert.Contains(t, out, `"tbsa": 27`)

	out = mustRun(t, "tbsa")
	assert.Contains(t, out, "perineum")

	_, err := run(t, "tbsa", "wing")
	assert.Error(t, err)
}

func TestRootCommand_RejectsBadLogLevel(t *testing.T) {
	_, err := run(t, "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestMCPCommandRegistered(t *testing.T) {
	out := mustRun(t, "mcp", "--help")
	assert.Contains(t, out, "serve")
}
