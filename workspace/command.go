package workspace

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/mkarren/codeforge/errors"
)

// ExecResult carries the outcome of a shell command run inside a project.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Exec runs a shell command with the project directory as its working
// directory. A non-zero exit status is reported through ExitCode, not as an
// error; the error return is reserved for failures to start the command at
// all.
func (p *Project) Exec(ctx context.Context, command string) (*ExecResult, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = p.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, errors.Wrapf(err, "failed to run command '%s'", command)
	}
	return result, nil
}
