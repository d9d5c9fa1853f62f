package commands

import (
	"context"
	"fmt"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
)

func (h *Handler) registerTruthGit() {
	h.registry.Register(&Command{
		Name:        "truthgit",
		Description: "Run a whitelisted truthgit subcommand",
		Usage:       ":truthgit <subcommand> [args...]",
		Aliases:     []string{"tg"},
		Category:    "Governance",
		Handler:     h.truthgitCommand,
	})
	h.registry.Register(&Command{
		Name:        "status",
		Description: "Show the truth repository status",
		Usage:       ":status",
		Category:    "Governance",
		Handler:     h.statusCommand,
	})
}

func (h *Handler) truthgitCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: :truthgit <subcommand> [args...]")
	}
	return h.deps.TruthGit.Run(ctx, args...)
}

func (h *Handler) statusCommand(ctx context.Context, args []string) (string, error) {
	status, err := h.deps.TruthGit.Status()
	if err != nil {
		return "", err
	}
	return presentation.FormatRepoStatus(status), nil
}
