// Package shell runs the external tools the compatibility test drives
// (kind, kubectl). Success is exit code zero, exactly; any non-zero exit
// surfaces as an *ExitError so callers can abort the run.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExitError reports a command that ran to completion with a non-zero
// exit code. The combined output is attached for the failure log.
type ExitError struct {
	Cmd    string
	Code   int
	Output []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%q exited with code %d", e.Cmd, e.Code)
}

// ExecRunner runs commands on the host via exec.CommandContext.
type ExecRunner struct{}

// Run executes name with args, blocking until the command exits or ctx is
// done. Stdout and stderr are captured together.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	zap.S().Infof("running: %s", cmdline)

	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	zap.S().Infof("finished in %.1fs: %s", time.Since(start).Seconds(), cmdline)
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return buf.Bytes(), &ExitError{Cmd: cmdline, Code: ee.ExitCode(), Output: buf.Bytes()}
		}
		return buf.Bytes(), fmt.Errorf("starting %q: %w", cmdline, err)
	}
	return buf.Bytes(), nil
}
