package term

import (
	"context"
	"strings"
	"sync"
)

// State is the console's execution state. Exactly one command may be in
// flight at a time; all keystrokes are dropped while Executing.
type State int

const (
	StateIdle State = iota
	StateExecuting
)

func (s State) String() string {
	if s == StateExecuting {
		return "executing"
	}
	return "idle"
}

// Executor runs one opaque command and returns its structured result.
// The console performs no parsing of the command text.
type Executor interface {
	Execute(ctx context.Context, command string) (*Result, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, command string) (*Result, error)

func (f ExecutorFunc) Execute(ctx context.Context, command string) (*Result, error) {
	return f(ctx, command)
}

// History is the navigable ledger of previously submitted commands.
type History interface {
	Record(command string)
	Older() (string, bool)
	Newer() (string, bool)
	Reset()
}

// Session owns the line buffer, the history cursor and the Idle/Executing
// state machine, and classifies key events into editing actions. Event
// delivery is serialized by the UI loop; the mutex exists because the
// dispatch goroutine re-enters to render the result and flip back to Idle.
type Session struct {
	mu       sync.Mutex
	buf      LineBuffer
	history  History
	renderer *Renderer
	executor Executor
	state    State

	// onState, when set, is invoked after every state transition with
	// the lock released. Used by the status bar.
	onState func(State)
}

// SessionOption customizes a Session at construction time.
type SessionOption func(*Session)

// WithStateHook registers a callback for Idle/Executing transitions.
func WithStateHook(fn func(State)) SessionOption {
	return func(s *Session) { s.onState = fn }
}

func NewSession(renderer *Renderer, executor Executor, history History, opts ...SessionOption) *Session {
	s := &Session{
		renderer: renderer,
		executor: executor,
		history:  history,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start emits the initial prompt.
func (s *Session) Start() {
	s.mu.Lock()
	s.renderer.Prompt()
	s.mu.Unlock()
}

// State returns the current execution state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Buffer returns the current in-progress command text.
func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// HandleKey classifies one key event and applies the matching editing
// action. Events arriving while a command is executing are dropped, not
// queued.
func (s *Session) HandleKey(ev KeyEvent) {
	s.mu.Lock()

	if s.state == StateExecuting {
		s.mu.Unlock()
		return
	}

	switch ev.Key {
	case KeyEnter:
		line := s.buf.String()
		s.buf.Clear()
		s.renderer.Newline()
		if strings.TrimSpace(line) == "" {
			// Empty submission: no history, no executor, just a fresh prompt.
			s.renderer.Prompt()
			s.mu.Unlock()
			return
		}
		s.history.Record(line)
		s.state = StateExecuting
		s.mu.Unlock()
		s.notify(StateExecuting)
		go s.dispatch(line)
		return

	case KeyBackspace:
		if s.buf.Backspace() {
			s.renderer.EraseChar()
		}

	case KeyArrowUp:
		if entry, ok := s.history.Older(); ok {
			s.buf.Replace(entry)
			s.renderer.RedrawLine(entry)
		}

	case KeyArrowDown:
		if entry, ok := s.history.Newer(); ok {
			// An empty entry is the blank-line signal for stepping past
			// the newest command.
			s.buf.Replace(entry)
			s.renderer.RedrawLine(entry)
		}

	case KeyInterrupt:
		// Only the pending, unsubmitted line is affected; a command
		// already dispatched keeps running.
		s.renderer.Interrupt()
		s.buf.Clear()
		s.history.Reset()
		s.renderer.Prompt()

	case KeyClearScreen:
		s.renderer.ClearScreen(s.buf.String())

	default:
		if ev.Ch != 0 {
			s.buf.Append(ev.Ch)
			s.renderer.Echo(ev.Ch)
		}
	}

	s.mu.Unlock()
}

// ClearScreen wipes the display outside the keystroke path. Commands
// executing inside the dispatcher can call this while the session is
// still Executing; the prompt is then repainted by the dispatcher when
// the command finishes. When idle the prompt and pending line are
// redrawn immediately, matching the Ctrl+L keystroke.
func (s *Session) ClearScreen() {
	s.mu.Lock()
	if s.state == StateExecuting {
		s.renderer.Clear()
	} else {
		s.renderer.ClearScreen(s.buf.String())
	}
	s.mu.Unlock()
}

// dispatch invokes the executor and renders the outcome. It always
// returns the session to Idle and re-emits the prompt, whatever happened.
func (s *Session) dispatch(line string) {
	res, err := s.executor.Execute(context.Background(), line)

	s.mu.Lock()
	if err != nil {
		s.renderer.Failure(err)
	} else {
		s.renderer.Result(res)
	}
	s.state = StateIdle
	s.mu.Unlock()
	s.notify(StateIdle)
}

func (s *Session) notify(state State) {
	if s.onState != nil {
		s.onState(state)
	}
}
