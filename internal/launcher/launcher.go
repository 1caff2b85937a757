// Package launcher opens files with the handler the OS has registered for
// their type.
package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher starts the default handler for a file without waiting for it to
// exit.
type Launcher struct {
	command func(ctx context.Context, path string) *exec.Cmd
}

func New() *Launcher {
	return &Launcher{command: defaultCommand}
}

func defaultCommand(ctx context.Context, path string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		// The empty argument is the window title consumed by start.
		return exec.CommandContext(ctx, "cmd", "/c", "start", "", path)
	case "darwin":
		return exec.CommandContext(ctx, "open", path)
	default:
		return exec.CommandContext(ctx, "xdg-open", path)
	}
}

// Open hands path to the default handler.
func (l *Launcher) Open(ctx context.Context, path string) error {
	cmd := l.command(ctx, path)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	// Reap the helper process; the handler it spawns outlives it.
	go func() { _ = cmd.Wait() }()

	return nil
}
