package component

import (
	"fmt"
	"strings"
	"sync"

	"github.com/awesome-gocui/gocui"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/term"
)

// screen is the console's display backend: an append-only scrollback
// plus the line being written. It implements term.Display; everything
// the session renders lands here and gocui only ever repaints the
// snapshot.
type screen struct {
	mu      sync.Mutex
	lines   []string
	current string

	// onChange fires after every mutation, outside the lock. The
	// component uses it to repaint, so output written by the dispatch
	// goroutine shows up without waiting for the next keystroke.
	onChange func()
}

func (s *screen) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *screen) Write(text string) {
	s.mu.Lock()
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		s.current += part
		if i < len(parts)-1 {
			s.lines = append(s.lines, s.current)
			s.current = ""
		}
	}
	s.mu.Unlock()
	s.changed()
}

func (s *screen) EraseChar() {
	s.mu.Lock()
	runes := []rune(s.current)
	if len(runes) > 0 {
		s.current = string(runes[:len(runes)-1])
	}
	s.mu.Unlock()
	s.changed()
}

func (s *screen) EraseLine() {
	s.mu.Lock()
	s.current = ""
	s.mu.Unlock()
	s.changed()
}

func (s *screen) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.current = ""
	s.mu.Unlock()
	s.changed()
}

// Snapshot returns the whole display contents, current line last.
func (s *screen) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return s.current
	}
	return strings.Join(s.lines, "\n") + "\n" + s.current
}

const consolePrompt = "truthgit ❯"

// ConsoleComponent is the embedded terminal: a gocui view fed by a
// term.Session over the screen backend.
type ConsoleComponent struct {
	*BaseComponent
	screen    *screen
	session   *term.Session
	inputHook func(string)
}

func NewConsoleComponent(gui types.Gui, executor term.Executor, history term.History, opts ...term.SessionOption) *ConsoleComponent {
	c := &ConsoleComponent{
		BaseComponent: NewBaseComponent("console", "console", gui),
		screen:        &screen{},
	}

	renderer := term.NewRenderer(c.screen, consolePrompt)
	c.session = term.NewSession(renderer, executor, history, opts...)
	c.screen.onChange = func() {
		c.gui.PostUIUpdate(func() { _ = c.Render() })
	}

	c.SetTitle(" Console ")
	c.SetWindowProperties(types.WindowProperties{
		Focusable:  true,
		Editable:   true,
		Wrap:       true,
		Autoscroll: true,
		Highlight:  false,
		Frame:      true,
	})

	return c
}

// Session exposes the console session for state queries.
func (c *ConsoleComponent) Session() *term.Session {
	return c.session
}

// Start emits the initial prompt.
func (c *ConsoleComponent) Start() {
	c.session.Start()
}

// ClearScreen wipes the scrollback. Goes through the session directly
// rather than a synthetic keystroke, because the `:clear` command runs
// while the session is Executing and keystrokes are dropped then.
func (c *ConsoleComponent) ClearScreen() {
	c.session.ClearScreen()
}

// SetInputHook registers a callback invoked with the pending buffer
// after every key event. Used for command suggestions.
func (c *ConsoleComponent) SetInputHook(fn func(string)) {
	c.inputHook = fn
}

// Editor translates gocui key events into console key events. Unknown
// special keys are dropped.
func (c *ConsoleComponent) Editor() gocui.Editor {
	return gocui.EditorFunc(func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
		ev, ok := translateKey(key, ch)
		if !ok {
			return
		}

		c.session.HandleKey(ev)
		if c.inputHook != nil {
			c.inputHook(c.session.Buffer())
		}
	})
}

func translateKey(key gocui.Key, ch rune) (term.KeyEvent, bool) {
	switch key {
	case gocui.KeyEnter:
		return term.ControlEvent(term.KeyEnter), true
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		return term.ControlEvent(term.KeyBackspace), true
	case gocui.KeyArrowUp:
		return term.ControlEvent(term.KeyArrowUp), true
	case gocui.KeyArrowDown:
		return term.ControlEvent(term.KeyArrowDown), true
	case gocui.KeyCtrlC:
		return term.ControlEvent(term.KeyInterrupt), true
	case gocui.KeyCtrlL:
		return term.ControlEvent(term.KeyClearScreen), true
	case gocui.KeySpace:
		return term.PrintableEvent(' '), true
	default:
		if ch != 0 {
			return term.PrintableEvent(ch), true
		}
		return term.KeyEvent{}, false
	}
}

// Render repaints the snapshot. Autoscroll keeps the prompt visible.
func (c *ConsoleComponent) Render() error {
	if err := c.BaseComponent.Render(); err != nil {
		return err
	}

	view := c.GetView()
	if view == nil {
		return nil
	}

	view.Clear()
	fmt.Fprint(view, c.screen.Snapshot())
	return nil
}
