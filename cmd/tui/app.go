package tui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/awesome-gocui/gocui"

	cmdevents "github.com/lumensyntax-org/truthgit-desktop/cmd/events"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/commands"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/component"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/helpers"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/layout"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/events"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/history"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/shell"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/term"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/truthgit"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/update"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/vault"
)

type App struct {
	gui      *gocui.Gui
	settings *config.SettingsManager
	truthGit *truthgit.Client

	commandEventBus *cmdevents.CommandEventBus
	eventBus        events.EventBus

	layoutManager  *layout.Manager
	console        *component.ConsoleComponent
	viewer         *component.TextViewerComponent
	status         *component.StatusComponent
	commandHandler *commands.Handler

	keybindingsSetup bool
	started          bool

	statusMu   sync.Mutex
	stateText  string
	suggestion string
}

func NewApp(
	settings *config.SettingsManager,
	truthClient *truthgit.Client,
	vaultService *vault.Vault,
	updater *update.Updater,
	commandEventBus *cmdevents.CommandEventBus,
	eventBus events.EventBus,
) (*App, error) {
	// The terminal belongs to gocui from here on. Anything that would
	// write to stderr goes to the debug file instead.
	log.SetOutput(io.Discard)
	logging.SetGlobalLogger(logging.NewFileLoggerFromEnv("truthgit-desktop.log"))

	g, err := gocui.NewGui(gocui.OutputTrue, true)
	if err != nil {
		return nil, err
	}

	app := &App{
		gui:             g,
		settings:        settings,
		truthGit:        truthClient,
		commandEventBus: commandEventBus,
		eventBus:        eventBus,
	}
	guiCommon := &guiCommon{app: app}

	app.viewer = component.NewTextViewerComponent(guiCommon)
	app.status = component.NewStatusComponent(guiCommon)

	app.commandHandler = commands.NewHandler(commands.Deps{
		TruthGit:   truthClient,
		Vault:      vaultService,
		Settings:   settings,
		Updater:    updater,
		Clipboard:  helpers.NewClipboard(),
		Viewer:     app.viewer,
		Console:    app,
		CommandBus: commandEventBus,
		Publisher:  eventBus,
	})

	runner := shell.NewRunner(func() string {
		return shell.RepoParentDir(settings.GetSettings().TruthRepoPath)
	})
	executor := newConsoleExecutor(app.commandHandler, runner)

	app.console = component.NewConsoleComponent(
		guiCommon,
		executor,
		history.NewSessionHistory(),
		term.WithStateHook(app.onConsoleState),
	)
	app.stateText = term.StateIdle.String()
	app.console.SetInputHook(app.onConsoleInput)

	app.layoutManager = layout.NewManager(g)
	app.layoutManager.SetComponent(layout.PanelConsole, app.console)
	app.layoutManager.SetComponent(layout.PanelDocument, app.viewer)
	app.layoutManager.SetComponent(layout.PanelStatus, app.status)

	theme := presentation.DefaultTheme
	g.FrameColor = presentation.GetThemeColor(theme.BorderDefault)
	g.SelFrameColor = presentation.GetThemeColor(theme.BorderFocused)
	g.Cursor = true

	app.subscribeEvents()

	g.SetManagerFunc(func(gui *gocui.Gui) error {
		if err := app.layoutManager.Layout(gui); err != nil {
			return err
		}
		if !app.keybindingsSetup {
			if err := app.setupKeybindings(); err != nil {
				return err
			}
			app.keybindingsSetup = true
		}
		if !app.started {
			app.started = true
			app.console.Start()
			app.status.SetLeft(app.statusSummary())
			app.showWelcome()
			return app.layoutManager.FocusPanel(layout.PanelConsole)
		}
		return nil
	})

	return app, nil
}

// ClearScreen lets commands wipe the console scrollback.
func (app *App) ClearScreen() {
	app.console.ClearScreen()
}

func (app *App) Run() error {
	return app.gui.MainLoop()
}

func (app *App) Close() {
	app.gui.Close()
}

func (app *App) subscribeEvents() {
	app.commandEventBus.Subscribe("app.exit", func(interface{}) {
		app.gui.Update(func(*gocui.Gui) error {
			return gocui.ErrQuit
		})
	})

	app.eventBus.Subscribe("settings.changed", func(interface{}) {
		app.status.SetLeft(app.statusSummary())
	})

	// A completed verification can add claim and verification objects,
	// so the repository summary is refreshed.
	app.eventBus.Subscribe("verify.completed", func(interface{}) {
		app.status.SetLeft(app.statusSummary())
	})
}

func (app *App) setupKeybindings() error {
	if err := app.gui.SetKeybinding("", gocui.KeyTab, gocui.ModNone,
		func(*gocui.Gui, *gocui.View) error {
			app.layoutManager.FocusNext()
			return nil
		}); err != nil {
		return err
	}

	return app.gui.SetKeybinding("", gocui.KeyCtrlQ, gocui.ModNone,
		func(*gocui.Gui, *gocui.View) error {
			return gocui.ErrQuit
		})
}

func (app *App) onConsoleState(state term.State) {
	app.statusMu.Lock()
	app.stateText = state.String()
	if state == term.StateExecuting {
		app.suggestion = ""
	}
	app.statusMu.Unlock()

	app.refreshStatusRight()
	app.eventBus.Publish("console.state", events.ExecutionStateEvent{
		Executing: state == term.StateExecuting,
	})
}

// onConsoleInput surfaces the top shell suggestion for the pending
// buffer in the status line. Colon commands get no suggestions.
func (app *App) onConsoleInput(buffer string) {
	suggestion := ""
	if buffer != "" && !strings.HasPrefix(buffer, ":") {
		if matches := shell.Suggest(buffer); len(matches) > 0 && matches[0] != buffer {
			suggestion = matches[0]
		}
	}

	app.statusMu.Lock()
	app.suggestion = suggestion
	app.statusMu.Unlock()

	app.refreshStatusRight()
}

func (app *App) refreshStatusRight() {
	app.statusMu.Lock()
	text := app.stateText
	if app.suggestion != "" {
		text = app.suggestion + " | " + text
	}
	app.statusMu.Unlock()

	app.status.SetRight(text)
}

// statusSummary builds the left side of the status line: api mode plus a
// one-glance repository summary.
func (app *App) statusSummary() string {
	s := app.settings.GetSettings()

	repo := "repo: not initialized"
	if status, err := app.truthGit.Status(); err == nil && status.Exists {
		repo = fmt.Sprintf("repo: %s (%d claims)", s.TruthRepoPath, status.ClaimsCount)
	}

	return fmt.Sprintf("mode: %s | %s", s.APIMode, repo)
}

func (app *App) showWelcome() {
	welcome := "# TruthGit Desktop\n\n" +
		"Type `:help` for commands, or run a whitelisted shell command directly.\n\n" +
		"- `:verify \"<claim>\" --domain <domain>` runs a governance verification\n" +
		"- `:claims`, `:verifications`, `:audit` browse the truth repository\n" +
		"- `:vault`, `:note <path>`, `:search <query>` browse the knowledge vault\n"
	app.viewer.SetContent("Welcome", welcome, true)
}
