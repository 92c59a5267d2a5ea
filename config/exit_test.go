package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/plus3/diceescape/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// os.Exit cannot be intercepted in-process, so the test re-runs itself.
func TestExitf(t *testing.T) {
	if os.Getenv("DICE_EXITF_CHILD") == "1" {
		config.Exitf("load levels: %s", "no such file")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "DICE_EXITF_CHILD=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(out), "load levels: no such file"), string(out))
}
