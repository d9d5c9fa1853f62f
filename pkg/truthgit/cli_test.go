package truthgit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
)

func TestValidateArgs(t *testing.T) {
	t.Run("valid invocations", func(t *testing.T) {
		assert.NoError(t, ValidateArgs([]string{"status"}))
		assert.NoError(t, ValidateArgs([]string{"verify", "claim"}))
		assert.NoError(t, ValidateArgs([]string{"safe-verify", "claim", "--risk", "high"}))
		assert.NoError(t, ValidateArgs([]string{"--help"}))
		assert.NoError(t, ValidateArgs([]string{"version"}))
	})

	t.Run("subcommands outside the whitelist", func(t *testing.T) {
		assert.Error(t, ValidateArgs([]string{"init"}))
		assert.Error(t, ValidateArgs([]string{"config"}))
		assert.Error(t, ValidateArgs([]string{"delete"}))
		assert.Error(t, ValidateArgs([]string{"rm"}))
	})

	t.Run("empty args rejected", func(t *testing.T) {
		assert.Error(t, ValidateArgs(nil))
	})

	t.Run("injection patterns in arguments", func(t *testing.T) {
		injections := []string{
			"claim; rm -rf /",
			"claim && malicious",
			"claim | bash",
			"`whoami`",
			"$(whoami)",
			"${HOME}",
			"> /etc/passwd",
			"claim\nrm -rf /",
		}
		for _, arg := range injections {
			assert.Error(t, ValidateArgs([]string{"verify", arg}), "arg %q", arg)
		}
	})

	t.Run("ordinary claim text is allowed", func(t *testing.T) {
		assert.NoError(t, ValidateArgs([]string{"verify", "Water boils at 100°C"}))
		assert.NoError(t, ValidateArgs([]string{"verify", "The speed of light is 299,792,458 m/s"}))
		assert.NoError(t, ValidateArgs([]string{"verify", "E = mc²"}))
	})
}

// fakeTruthgit writes a stub binary whose behavior is driven by the
// script body, and points TRUTHGIT_BIN at it.
func fakeTruthgit(t *testing.T, script string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "truthgit")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\n"+script), 0755))
	t.Setenv("TRUTHGIT_BIN", path)
}

func TestCLI_Run(t *testing.T) {
	t.Run("returns stdout on success", func(t *testing.T) {
		fakeTruthgit(t, `echo "on branch main"`)
		cli := NewCLI(config.NewManager())

		out, err := cli.Run(context.Background(), "status")
		require.NoError(t, err)
		assert.Equal(t, "on branch main\n", out)
	})

	t.Run("surfaces stderr on failure", func(t *testing.T) {
		fakeTruthgit(t, `echo "no repo" >&2; exit 1`)
		cli := NewCLI(config.NewManager())

		_, err := cli.Run(context.Background(), "status")
		assert.ErrorContains(t, err, "no repo")
	})

	t.Run("rejects blocked args without invoking the binary", func(t *testing.T) {
		fakeTruthgit(t, `echo should-not-run > "$TMPDIR/ran"`)
		cli := NewCLI(config.NewManager())

		_, err := cli.Run(context.Background(), "delete", "everything")
		assert.ErrorContains(t, err, "not allowed")
	})
}

func TestCLI_SafeVerify(t *testing.T) {
	t.Run("decodes the full verdict", func(t *testing.T) {
		fakeTruthgit(t, `echo '{"status":"VERIFIED","action":"allow","confidence":0.92,"reason":"matches corpus","audit_ref":"au-1","ontological_type":"empirical"}'`)
		cli := NewCLI(config.NewManager())

		res, err := cli.SafeVerify(context.Background(), "water boils", "physics", "medium")
		require.NoError(t, err)
		assert.Equal(t, "VERIFIED", res.Status)
		assert.Equal(t, "allow", res.Action)
		assert.InDelta(t, 0.92, res.Confidence, 1e-9)
		assert.Equal(t, "au-1", res.AuditRef)
		assert.Equal(t, "empirical", res.OntologicalType)
	})

	t.Run("missing fields degrade conservatively", func(t *testing.T) {
		fakeTruthgit(t, `echo '{}'`)
		cli := NewCLI(config.NewManager())

		res, err := cli.SafeVerify(context.Background(), "claim", "general", "medium")
		require.NoError(t, err)
		assert.Equal(t, "UNKNOWN", res.Status)
		assert.Equal(t, "escalate", res.Action)
		assert.Zero(t, res.Confidence)
		assert.Equal(t, "Local verification completed", res.Reason)
	})

	t.Run("non-JSON output is an error", func(t *testing.T) {
		fakeTruthgit(t, `echo "not json"`)
		cli := NewCLI(config.NewManager())

		_, err := cli.SafeVerify(context.Background(), "claim", "general", "medium")
		assert.Error(t, err)
	})
}
