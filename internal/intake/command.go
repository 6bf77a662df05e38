package intake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	stderrTail = 2048
	waitDelay  = 5 * time.Second
)

var errCommandTimeout = errors.New("command timed out")

// runCommand runs an external tool under its own process group so that the
// whole tree can be killed when the context expires.
func runCommand(ctx context.Context, timeout time.Duration, name string, args ...string) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s after %s", errCommandTimeout, name, timeout)
		}
		return ctxErr
	}

	return fmt.Errorf("%s: %w: %s", name, err, tail(stderr.String()))
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = "..." + s[len(s)-stderrTail:]
	}

	return s
}
