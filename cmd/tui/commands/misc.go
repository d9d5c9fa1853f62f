package commands

import (
	"context"
	"fmt"
	"strings"
)

func (h *Handler) registerMisc() {
	h.registry.Register(&Command{
		Name:        "clear",
		Description: "Clear the console scrollback",
		Usage:       ":clear",
		Category:    "Console",
		Handler:     h.clearCommand,
	})
	h.registry.Register(&Command{
		Name:        "yank",
		Description: "Copy the last command output to the clipboard",
		Usage:       ":yank",
		Aliases:     []string{"y"},
		Category:    "Console",
		Handler:     h.yankCommand,
	})
	h.registry.Register(&Command{
		Name:        "update",
		Description: "Check for a newer release and self-update",
		Usage:       ":update [--check]",
		Category:    "System",
		Handler:     h.updateCommand,
	})
	h.registry.Register(&Command{
		Name:        "help",
		Description: "Show all commands",
		Usage:       ":help",
		Aliases:     []string{"h", "?"},
		Category:    "Console",
		Handler:     h.helpCommand,
	})
	h.registry.Register(&Command{
		Name:        "exit",
		Description: "Quit the application",
		Usage:       ":exit",
		Aliases:     []string{"q", "quit"},
		Category:    "Console",
		Handler:     h.exitCommand,
	})
}

func (h *Handler) clearCommand(ctx context.Context, args []string) (string, error) {
	h.deps.Console.ClearScreen()
	return "", nil
}

func (h *Handler) yankCommand(ctx context.Context, args []string) (string, error) {
	text := h.LastOutput()
	if text == "" {
		return "", fmt.Errorf("nothing to copy yet")
	}
	if err := h.deps.Clipboard.Copy(text); err != nil {
		return "", fmt.Errorf("clipboard unavailable: %w", err)
	}
	return fmt.Sprintf("copied %d byte(s)\n", len(text)), nil
}

func (h *Handler) updateCommand(ctx context.Context, args []string) (string, error) {
	if h.deps.Updater == nil {
		return "", fmt.Errorf("self-update is not available in this build")
	}

	info, err := h.deps.Updater.CheckForUpdates(ctx)
	if err != nil {
		return "", err
	}
	if !info.UpdateNeeded {
		return fmt.Sprintf("already up to date (%s)\n", info.CurrentVersion), nil
	}

	checkOnly := len(args) > 0 && args[0] == "--check"
	if checkOnly {
		return fmt.Sprintf("update available: %s -> %s\n", info.CurrentVersion, info.LatestVersion), nil
	}

	if err := h.deps.Updater.UpdateToLatest(ctx, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("updated to %s, restart to use the new version\n", info.LatestVersion), nil
}

func (h *Handler) helpCommand(ctx context.Context, args []string) (string, error) {
	var b strings.Builder
	b.WriteString("# Commands\n\n")

	category := ""
	for _, cmd := range h.registry.AllByCategory() {
		if cmd.Category != category {
			category = cmd.Category
			fmt.Fprintf(&b, "## %s\n\n", category)
		}
		fmt.Fprintf(&b, "- `%s` - %s\n", cmd.Usage, cmd.Description)
	}

	b.WriteString("\n## Keys\n\n")
	b.WriteString("- `Up`/`Down` - browse command history\n")
	b.WriteString("- `Ctrl+C` - abandon the current line\n")
	b.WriteString("- `Ctrl+L` - clear the console\n")
	b.WriteString("- `Tab` - switch between console and documents\n")
	b.WriteString("- `PgUp`/`PgDn` - scroll the document panel\n")
	b.WriteString("- `Ctrl+Q` - quit\n")
	b.WriteString("\nAnything without a leading `:` runs as a whitelisted shell command.\n")

	h.deps.Viewer.SetContent("Help", b.String(), true)
	return "help opened in the document panel\n", nil
}

func (h *Handler) exitCommand(ctx context.Context, args []string) (string, error) {
	h.deps.CommandBus.Emit("app.exit", nil)
	return "", nil
}
