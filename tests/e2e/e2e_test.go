package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultready/consultready/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "consultready-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "consultready")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/consultready")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func testdata(parts ...string) string {
	abs, _ := filepath.Abs(filepath.Join(append([]string{"../../testdata"}, parts...)...))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "CONSULTREADY_LOG_LEVEL=warn")
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Evaluate Tests ---

func TestE2E_EvaluateJSON(t *testing.T) {
	out, code := run(t, "evaluate", testdata("intake", "thermal_complete.yaml"), "--json")
	require.Equal(t, 0, code, out)

	var body struct {
		Result domain.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, domain.WithinScope, body.Result.Scope)
	assert.Equal(t, domain.TierStrongly, body.Result.Tier)
}

func TestE2E_EvaluateOutsideScope(t *testing.T) {
	out, code := run(t, "evaluate", testdata("intake", "appendicitis_low.yaml"), "--message")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Missing elements:")
	assert.NotContains(t, out, "Recommend:")
}

func TestE2E_EvaluateUnknownDomain(t *testing.T) {
	out, code := run(t, "evaluate", testdata("intake", "thermal_complete.yaml"), "-d", "ortho")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown domain")
}

// --- Catalogue Tests ---

func TestE2E_CustomDomain(t *testing.T) {
	out, code := run(t, "domains", "--domains-dir", testdata("domains"))
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "wound")
	assert.Contains(t, out, "burn")
}

func TestE2E_Validate(t *testing.T) {
	out, code := run(t, "validate", testdata("domains", "wound.yaml"))
	assert.Equal(t, 0, code, out)
}

func TestE2E_TBSA(t *testing.T) {
	out, code := run(t, "tbsa", "torso_ant", "torso_post")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "36.0%")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "consultready")
}
