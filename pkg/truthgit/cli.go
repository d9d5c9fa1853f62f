package truthgit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
)

// allowedSubcommands is the whitelist for truthgit invocations coming
// from the UI. Everything repository-mutating beyond verification stays
// out.
var allowedSubcommands = []string{
	"status",
	"verify",
	"safe-verify",
	"prove",
	"search",
	"log",
	"show",
	"list",
	"version",
	"--version",
	"--help",
	"help",
}

// blockedArgPatterns are rejected in every argument. Arguments are
// passed as an argv array, never through a shell, but the CLI itself
// could be tricked into odd behavior by these.
var blockedArgPatterns = []string{
	";", "&&", "||", "|", "`", "$(", "${", ">", "<", "\n", "\r",
}

// ValidateArgs enforces the subcommand whitelist and scans every
// argument for injection patterns.
func ValidateArgs(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no subcommand provided")
	}

	sub := args[0]
	allowed := false
	for _, s := range allowedSubcommands {
		if sub == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("BLOCKED: truthgit subcommand %q is not allowed, allowed: %s",
			sub, strings.Join(allowedSubcommands, ", "))
	}

	for _, arg := range args {
		for _, pattern := range blockedArgPatterns {
			if strings.Contains(arg, pattern) {
				return fmt.Errorf("BLOCKED: argument contains forbidden pattern %q, shell injection attempt detected", pattern)
			}
		}
	}
	return nil
}

const cliTimeout = 60 * time.Second

// CLI invokes the truthgit binary. The binary name is overridable
// through TRUTHGIT_BIN for development builds.
type CLI struct {
	bin    string
	logger logging.Logger
}

func NewCLI(cfg config.Manager) *CLI {
	return &CLI{
		bin:    cfg.GetStringWithDefault("TRUTHGIT_BIN", "truthgit"),
		logger: logging.NewComponentLogger("truthgit-cli"),
	}
}

// Run validates args and executes truthgit, returning its stdout. A
// non-zero exit surfaces stderr as the error.
func (c *CLI) Run(ctx context.Context, args ...string) (string, error) {
	if err := ValidateArgs(args); err != nil {
		return "", err
	}

	execCtx, cancel := context.WithTimeout(ctx, cliTimeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, c.bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running truthgit", "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if execCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("truthgit timed out after %v", cliTimeout)
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("truthgit error: %s", strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("failed to run truthgit: %w (is TruthGit installed?)", err)
	}

	return stdout.String(), nil
}

// SafeVerify runs a governance verification through the CLI and decodes
// the JSON verdict. Missing fields degrade to the conservative
// defaults: UNKNOWN status and an escalate action.
func (c *CLI) SafeVerify(ctx context.Context, claim, domain, riskProfile string) (*GovernanceResult, error) {
	out, err := c.Run(ctx, "safe-verify", claim, "--domain", domain, "--risk", riskProfile, "--json")
	if err != nil {
		return nil, fmt.Errorf("TruthGit verification failed: %w", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse truthgit output: %w", err)
	}

	return &GovernanceResult{
		Status:          stringField(parsed, "status", "UNKNOWN"),
		Action:          stringField(parsed, "action", "escalate"),
		Confidence:      floatField(parsed, "confidence"),
		Reason:          stringField(parsed, "reason", "Local verification completed"),
		AuditRef:        stringField(parsed, "audit_ref", ""),
		OntologicalType: stringField(parsed, "ontological_type", ""),
	}, nil
}

// Verify runs a plain verification and returns the raw JSON output.
func (c *CLI) Verify(ctx context.Context, claim, domain string) (string, error) {
	return c.Run(ctx, "verify", claim, "--domain", domain, "--json")
}

func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

func floatField(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}
