package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
)

func (h *Handler) registerVault() {
	h.registry.Register(&Command{
		Name:        "vault",
		Description: "Browse the knowledge vault",
		Usage:       ":vault [status|<path>]",
		Category:    "Vault",
		Handler:     h.vaultCommand,
	})
	h.registry.Register(&Command{
		Name:        "note",
		Description: "Open a vault note in the document panel",
		Usage:       ":note <path>",
		Category:    "Vault",
		Handler:     h.noteCommand,
	})
	h.registry.Register(&Command{
		Name:        "search",
		Description: "Search markdown notes in the vault",
		Usage:       ":search <query>",
		Aliases:     []string{"s"},
		Category:    "Vault",
		Handler:     h.searchCommand,
	})
}

func (h *Handler) vaultCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 1 && args[0] == "status" {
		status, err := h.deps.Vault.Status()
		if err != nil {
			return "", err
		}
		return presentation.FormatVaultStatus(status), nil
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	files, err := h.deps.Vault.List(path)
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent("Vault", presentation.FormatVaultListing(path, files), true)
	return fmt.Sprintf("%d entr(ies) opened in the document panel\n", len(files)), nil
}

func (h *Handler) noteCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: :note <path>")
	}
	path := strings.Join(args, " ")

	note, err := h.deps.Vault.ReadNote(path)
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent(note.Name, note.Content, true)
	if note.Modified != "" {
		return fmt.Sprintf("%s opened (modified %s)\n", note.Path, note.Modified), nil
	}
	return fmt.Sprintf("%s opened\n", note.Path), nil
}

func (h *Handler) searchCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: :search <query>")
	}
	query := strings.Join(args, " ")

	results, err := h.deps.Vault.Search(query)
	if err != nil {
		return "", err
	}

	h.deps.Viewer.SetContent("Search: "+query, presentation.FormatSearchResults(query, results), true)
	return fmt.Sprintf("%d note(s) matched\n", len(results)), nil
}
