package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// OpenTimeout bounds how long the OS file handler may take to start
const OpenTimeout = 10 * time.Second

// execCommandWithTimeout executes a command with a timeout
func execCommandWithTimeout(timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("command timed out after %v", timeout)
	}

	if err != nil {
		return output, fmt.Errorf("command failed: %w", err)
	}

	return output, nil
}

// openCommand returns the command that opens path with the default
// application on the given operating system.
func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// OpenInShell opens a file or folder with the operating system's default handler
func OpenInShell(path string) error {
	name, args := openCommand(runtime.GOOS, path)
	output, err := execCommandWithTimeout(OpenTimeout, name, args...)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w (%s)", path, err, string(output))
	}
	return nil
}
