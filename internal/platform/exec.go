package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// RunShell executes a command line through the shell, inheriting stdio and
// environment so the command sees the same context its caller does.
func RunShell(ctx context.Context, line string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", line)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("sh -c %q: %w", line, err)
	}
	return nil
}
