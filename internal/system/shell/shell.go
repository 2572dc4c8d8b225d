// Released under an MIT license. See LICENSE.

// Package shell runs commands for knight's ` builtin.
package shell

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/michaelmacinnis/knight/internal/type/text"
)

// Path is the shell used to run commands.
const Path = "/bin/sh"

// Run runs command with the shell and returns its standard output.
// The command's standard error goes to the process's standard error and
// its standard input is empty. A command that exits non-zero is not an error.
func Run(command text.T) (text.T, error) {
	var stdout bytes.Buffer

	cmd := exec.Command(Path, "-c", command.String()) //nolint:gosec
	cmd.Stderr = os.Stderr
	cmd.Stdout = &stdout
	cmd.SysProcAttr = sysProcAttr()

	err := cmd.Run()
	if err != nil {
		var exit *exec.ExitError
		if !errors.As(err, &exit) {
			return text.T{}, err
		}
	}

	return text.New(stdout.String())
}
