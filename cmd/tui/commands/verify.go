package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/events"
)

func (h *Handler) registerVerify() {
	h.registry.Register(&Command{
		Name:        "verify",
		Description: "Run a governance verification on a claim",
		Usage:       ":verify <claim> [--domain <domain>] [--risk <low|medium|high>]",
		Aliases:     []string{"v"},
		Category:    "Governance",
		Handler:     h.verifyCommand,
	})
}

func (h *Handler) verifyCommand(ctx context.Context, args []string) (string, error) {
	domain, args := ExtractFlag(args, "domain")
	risk, args := ExtractFlag(args, "risk")
	if len(args) == 0 {
		return "", fmt.Errorf("usage: :verify <claim> [--domain <domain>] [--risk <profile>]")
	}

	claim := strings.Join(args, " ")
	if domain == "" {
		domain = "general"
	}

	requestID := uuid.NewString()
	h.deps.Publisher.Publish("verify.started", events.VerificationStartedEvent{
		RequestID: requestID,
		Claim:     claim,
		Domain:    domain,
		Risk:      risk,
	})

	result, err := h.deps.TruthGit.Verify(ctx, claim, domain, risk)

	completed := events.VerificationCompletedEvent{
		RequestID: requestID,
		Claim:     claim,
		Domain:    domain,
		Error:     err,
	}
	if result != nil {
		completed.Status = result.Status
		completed.Action = result.Action
		completed.Confidence = result.Confidence
	}
	h.deps.Publisher.Publish("verify.completed", completed)

	if err != nil {
		return "", err
	}
	return presentation.FormatGovernanceResult(result), nil
}
