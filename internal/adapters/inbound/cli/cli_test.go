package cli_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/consultready/consultready/internal/adapters/inbound/cli"
)

const (
	intakeDir  = "../../../../testdata/intake/"
	domainsDir = "../../../../testdata/domains"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	setIO(cmd)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func setIO(cmd *cobra.Command) {
	cmd.SetErr(new(bytes.Buffer))
}
