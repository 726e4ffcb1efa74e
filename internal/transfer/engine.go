// Package transfer moves a selected entry from one pane into a destination
// resolved from the other pane's state, using an external recursive-copy
// engine.
package transfer

import (
	"bytes"
	"os/exec"
	"strings"

	"ferry/internal/errors"
)

// CopyEngine is the recursive-copy primitive a transfer invokes. It must
// handle both regular files and directory subtrees. Destination parent
// directories are assumed to exist; the engine does not create them.
type CopyEngine interface {
	CopyRecursive(source, dest string) error
}

// ExecEngine copies by running an external command (cp -r by default),
// matching the copy semantics of whatever binary is configured.
type ExecEngine struct {
	command string
	args    []string
}

// NewExecEngine creates an engine that runs command with the given leading
// arguments, followed by the source and destination paths.
func NewExecEngine(command string, args ...string) *ExecEngine {
	return &ExecEngine{command: command, args: args}
}

// CopyRecursive runs the configured command. A non-zero exit is reported as
// TransferEngineFailed with the command's stderr as diagnostic; a command
// that cannot be started at all is reported as TransferLaunchFailed.
func (e *ExecEngine) CopyRecursive(source, dest string) error {
	argv := make([]string, 0, len(e.args)+2)
	argv = append(argv, e.args...)
	argv = append(argv, source, dest)

	cmd := exec.Command(e.command, argv...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return errors.NewTransferError("copy failed", source, dest,
			errors.TransferEngineFailed, errors.New(diag))
	}
	return errors.NewTransferError("cannot invoke copy engine", source, dest,
		errors.TransferLaunchFailed, err)
}
