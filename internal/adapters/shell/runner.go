package shell

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	apperrors "github.com/tweakd/tweakd/internal/errors"
)

// Runner executes shell command lines through the platform shell.
// Each invocation is independent: no retry, no ordering relative to other
// invocations, success judged by exit status alone.
type Runner struct {
	// Timeout bounds each command. Zero means the caller's context rules.
	Timeout time.Duration
}

func (r Runner) Run(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", apperrors.Validation("command is required")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := platformCommand(ctx, command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", apperrors.Wrapf(err, apperrors.ErrCodeCommand, "command failed: %s", msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// platformCommand wraps the command line in the platform shell, matching
// how the tweak catalog's command lines are written (cmd syntax on
// Windows, sh elsewhere for development).
func platformCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}
