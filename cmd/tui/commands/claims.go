package commands

import (
	"context"
	"fmt"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
)

func (h *Handler) registerClaims() {
	h.registry.Register(&Command{
		Name:        "claims",
		Description: "List all claims in the truth repository",
		Usage:       ":claims",
		Category:    "Governance",
		Handler:     h.claimsCommand,
	})
	h.registry.Register(&Command{
		Name:        "claim",
		Description: "Show one claim by hash",
		Usage:       ":claim <hash>",
		Category:    "Governance",
		Handler:     h.claimCommand,
	})
	h.registry.Register(&Command{
		Name:        "verifications",
		Description: "List recorded verifications",
		Usage:       ":verifications",
		Aliases:     []string{"vfs"},
		Category:    "Governance",
		Handler:     h.verificationsCommand,
	})
	h.registry.Register(&Command{
		Name:        "audit",
		Description: "Show the governance audit trail",
		Usage:       ":audit",
		Category:    "Governance",
		Handler:     h.auditCommand,
	})
}

func (h *Handler) claimsCommand(ctx context.Context, args []string) (string, error) {
	claims, err := h.deps.TruthGit.Claims()
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent("Claims", presentation.FormatClaims(claims), true)
	return fmt.Sprintf("%d claim(s) opened in the document panel\n", len(claims)), nil
}

func (h *Handler) claimCommand(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: :claim <hash>")
	}

	obj, err := h.deps.TruthGit.Claim(args[0])
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent("Claim "+args[0], presentation.FormatObject("Claim "+args[0], obj), true)
	return "claim opened in the document panel\n", nil
}

func (h *Handler) verificationsCommand(ctx context.Context, args []string) (string, error) {
	vfs, err := h.deps.TruthGit.Verifications()
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent("Verifications", presentation.FormatVerifications(vfs), true)
	return fmt.Sprintf("%d verification(s) opened in the document panel\n", len(vfs)), nil
}

func (h *Handler) auditCommand(ctx context.Context, args []string) (string, error) {
	entries, err := h.deps.TruthGit.AuditTrail()
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent("Audit Trail", presentation.FormatAuditTrail(entries), true)
	return fmt.Sprintf("%d audit entr(ies) opened in the document panel\n", len(entries)), nil
}
