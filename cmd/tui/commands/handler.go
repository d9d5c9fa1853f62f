package commands

import (
	"context"
	"fmt"
	"strings"
	"sync"

	cmdevents "github.com/lumensyntax-org/truthgit-desktop/cmd/events"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/helpers"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/events"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/truthgit"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/update"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/vault"
)

// Viewer is the document panel the commands publish into.
type Viewer interface {
	SetContent(title, content string, markdown bool)
}

// Console is the subset of console behavior commands may trigger.
type Console interface {
	ClearScreen()
}

// Deps carries everything the command set needs.
type Deps struct {
	TruthGit   *truthgit.Client
	Vault      *vault.Vault
	Settings   *config.SettingsManager
	Updater    *update.Updater
	Clipboard  *helpers.Clipboard
	Viewer     Viewer
	Console    Console
	CommandBus *cmdevents.CommandEventBus
	Publisher  events.Publisher
}

// Handler parses and runs colon commands from the console.
type Handler struct {
	deps     Deps
	registry *Registry
	logger   logging.Logger

	mu         sync.Mutex
	lastOutput string
}

func NewHandler(deps Deps) *Handler {
	h := &Handler{
		deps:     deps,
		registry: NewRegistry(),
		logger:   logging.NewComponentLogger("commands"),
	}
	h.registerAll()
	return h
}

// Execute runs one colon command line (leading ':' included) and
// returns its console output.
func (h *Handler) Execute(ctx context.Context, input string) (string, error) {
	line := strings.TrimPrefix(strings.TrimSpace(input), ":")
	args := SplitArgs(line)
	if len(args) == 0 {
		return "", fmt.Errorf("empty command, try :help")
	}

	cmd, ok := h.registry.Get(args[0])
	if !ok {
		return "", fmt.Errorf("unknown command :%s, try :help", args[0])
	}

	h.logger.Debug("running command", "command", cmd.Name)

	out, err := cmd.Handler(ctx, args[1:])
	if err != nil {
		return "", err
	}

	h.mu.Lock()
	h.lastOutput = out
	h.mu.Unlock()

	return out, nil
}

// LastOutput returns the most recent successful command output.
func (h *Handler) LastOutput() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastOutput
}

// Registry exposes the registered commands, for help rendering.
func (h *Handler) Registry() *Registry {
	return h.registry
}

func (h *Handler) registerAll() {
	h.registerVerify()
	h.registerClaims()
	h.registerTruthGit()
	h.registerVault()
	h.registerSettings()
	h.registerMisc()
}
