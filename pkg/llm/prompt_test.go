package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUserPrompt(t *testing.T) {
	t.Run("embeds command, exit code, and output", func(t *testing.T) {
		prompt, err := RenderUserPrompt(Request{
			Command:  "/usr/bin/nc -v example.com 80",
			ExitCode: 0,
			Output:   "Connection to example.com port 80 [tcp/http] succeeded!\n",
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, "/usr/bin/nc -v example.com 80")
		assert.Contains(t, prompt, "Exit code: 0")
		assert.Contains(t, prompt, "Connection to example.com port 80 [tcp/http] succeeded!")
	})

	t.Run("embeds a non-zero exit code", func(t *testing.T) {
		prompt, err := RenderUserPrompt(Request{
			Command:  "/usr/bin/nc -v 10.0.0.1 9999",
			ExitCode: 1,
			Output:   "connect to 10.0.0.1 port 9999 (tcp) failed: Connection refused\n",
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, "Exit code: 1")
		assert.Contains(t, prompt, "Connection refused")
	})

	t.Run("renders blank output as (empty)", func(t *testing.T) {
		prompt, err := RenderUserPrompt(Request{
			Command:  "/usr/bin/nc -z example.com 9999",
			ExitCode: 1,
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, "(empty)")
	})

	t.Run("renders whitespace-only output as (empty)", func(t *testing.T) {
		prompt, err := RenderUserPrompt(Request{
			Command:  "/usr/bin/nc example.com 80",
			ExitCode: 0,
			Output:   "  \n\t\n",
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, "(empty)")
	})
}
