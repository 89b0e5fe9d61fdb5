package dockercli

import (
	"os/exec"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestCLI() *CLI {
	return New(logrus.NewEntry(logrus.New()), "docker")
}

// TestInspectReturnsCommandOutput is a function.
func TestInspectReturnsCommandOutput(t *testing.T) {
	c := newTestCLI()
	c.SetCommand(func(name string, args ...string) *exec.Cmd {
		return exec.Command("echo", "-n", "inspect-output")
	})

	out, err := c.Inspect("abc123")

	assert.NoError(t, err)
	assert.Equal(t, "inspect-output", out)
}

// TestImageIDTakesFirstLine is a function.
func TestImageIDTakesFirstLine(t *testing.T) {
	c := newTestCLI()
	c.SetCommand(func(name string, args ...string) *exec.Cmd {
		return exec.Command("printf", "sha256:abc\nsha256:def\n")
	})

	id, err := c.ImageID("alpine:latest")

	assert.NoError(t, err)
	assert.Equal(t, "sha256:abc", id)
}

// TestImageIDErrorsOnEmptyOutput is a function.
func TestImageIDErrorsOnEmptyOutput(t *testing.T) {
	c := newTestCLI()
	c.SetCommand(func(name string, args ...string) *exec.Cmd {
		return exec.Command("true")
	})

	_, err := c.ImageID("missing:tag")

	assert.Error(t, err)
}

// TestRunReturnsExitErrorStderr is a function.
func TestRunReturnsExitErrorStderr(t *testing.T) {
	c := newTestCLI()
	c.SetCommand(func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo boom 1>&2; exit 1")
	})

	_, err := c.Run("alpine:latest", []string{"/bin/false"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
