// Package dockercli wraps invocations of an external docker-compatible CLI:
// inspecting, saving and running images. It is the only place in cake that
// shells out.
package dockercli

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// CLI runs a docker-compatible binary. command is an injectable seam so
// tests can stub out process execution entirely.
type CLI struct {
	Log     *logrus.Entry
	Binary  string
	command func(string, ...string) *exec.Cmd
}

// New returns a CLI that shells out to binary (typically "docker" or
// "podman").
func New(log *logrus.Entry, binary string) *CLI {
	return &CLI{
		Log:     log,
		Binary:  binary,
		command: exec.Command,
	}
}

// SetCommand overrides the command function used by the struct. For
// testing only.
func (c *CLI) SetCommand(cmd func(string, ...string) *exec.Cmd) {
	c.command = cmd
}

func (c *CLI) run(args ...string) (string, error) {
	c.Log.Tracef("calling %s %v", c.Binary, args)

	before := time.Now()
	cmd := c.command(c.Binary, args...)
	output, err := sanitisedOutput(cmd.Output())
	c.Log.Debugf("'%s %v': %s", c.Binary, args, time.Since(before))
	return output, err
}

// Inspect runs "<binary> inspect <imageID>" and returns its raw JSON
// output.
func (c *CLI) Inspect(imageID string) (string, error) {
	return c.run("inspect", imageID)
}

// Save runs "<binary> save <imageID> -o <imageID>.tar".
func (c *CLI) Save(imageID string) error {
	_, err := c.run("save", imageID, "-o", imageID+".tar")
	return err
}

// ImageID resolves a reference to its image id via "<binary> images <ref> -q".
func (c *CLI) ImageID(ref string) (string, error) {
	out, err := c.run("images", ref, "-q")
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("no image id found for reference %q", ref)
	}
	return firstLine(out), nil
}

// Run executes "<binary> run --rm -it <image> <args...>" and returns its
// output. Used for queries that need a live container, such as asking
// rpm for its package database.
func (c *CLI) Run(image string, args []string) (string, error) {
	full := append([]string{"run", "--rm", "-it", image}, args...)
	return c.run(full...)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func sanitisedOutput(output []byte, err error) (string, error) {
	outputString := string(output)
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if ok {
			return outputString, errors.New(string(exitErr.Stderr))
		}
		return "", errors.Wrap(err, 0)
	}
	return outputString, nil
}
