package launcher

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCommand(t *testing.T) {
	cmd := defaultCommand(context.Background(), "/tmp/message.eml")

	assert.Equal(t, "/tmp/message.eml", cmd.Args[len(cmd.Args)-1])

	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, []string{"cmd", "/c", "start", "", "/tmp/message.eml"}, cmd.Args)
	case "darwin":
		assert.Equal(t, []string{"open", "/tmp/message.eml"}, cmd.Args)
	default:
		assert.Equal(t, []string{"xdg-open", "/tmp/message.eml"}, cmd.Args)
	}
}

func TestOpen_StartFailure(t *testing.T) {
	l := &Launcher{command: func(ctx context.Context, path string) *exec.Cmd {
		return exec.CommandContext(ctx, "/nonexistent/eml2doc-handler", path)
	}}

	err := l.Open(context.Background(), "message.eml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message.eml")
}
