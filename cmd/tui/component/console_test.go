package component

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/awesome-gocui/gocui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/history"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/term"
)

// fakeGui counts queued UI updates and runs them inline.
type fakeGui struct {
	mu    sync.Mutex
	posts int
}

func (g *fakeGui) GetGui() *gocui.Gui { return nil }

func (g *fakeGui) PostUIUpdate(fn func()) {
	g.mu.Lock()
	g.posts++
	g.mu.Unlock()
	fn()
}

func (g *fakeGui) Posts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.posts
}

func waitConsoleState(t *testing.T, states chan term.State, want term.State) {
	t.Helper()
	select {
	case st := <-states:
		require.Equal(t, want, st)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for state %v", want)
	}
}

func typeInto(s *term.Session, line string) {
	for _, ch := range line {
		s.HandleKey(term.PrintableEvent(ch))
	}
}

func TestConsoleComponent_RepaintsOnCommandOutput(t *testing.T) {
	gui := &fakeGui{}
	states := make(chan term.State, 4)
	release := make(chan struct{})
	exec := term.ExecutorFunc(func(ctx context.Context, command string) (*term.Result, error) {
		<-release
		return &term.Result{Stdout: "done", Success: true}, nil
	})

	c := NewConsoleComponent(gui, exec, history.NewSessionHistory(),
		term.WithStateHook(func(st term.State) { states <- st }))
	c.Start()

	typeInto(c.Session(), "run")
	c.Session().HandleKey(term.ControlEvent(term.KeyEnter))
	waitConsoleState(t, states, term.StateExecuting)

	before := gui.Posts()
	close(release)
	waitConsoleState(t, states, term.StateIdle)

	// The result and the fresh prompt each queued a repaint on their own;
	// the output is visible without another keystroke arriving.
	assert.Greater(t, gui.Posts(), before)
	assert.Contains(t, c.screen.Snapshot(), "done")
}

func TestConsoleComponent_ClearScreenWhileExecuting(t *testing.T) {
	gui := &fakeGui{}
	states := make(chan term.State, 4)

	var c *ConsoleComponent
	exec := term.ExecutorFunc(func(ctx context.Context, command string) (*term.Result, error) {
		// The :clear command chain: the handler clears the console while
		// its own execution is still in flight.
		c.ClearScreen()
		return &term.Result{Success: true}, nil
	})

	c = NewConsoleComponent(gui, exec, history.NewSessionHistory(),
		term.WithStateHook(func(st term.State) { states <- st }))
	c.Start()

	typeInto(c.Session(), ":clear")
	c.Session().HandleKey(term.ControlEvent(term.KeyEnter))
	waitConsoleState(t, states, term.StateExecuting)
	waitConsoleState(t, states, term.StateIdle)

	snapshot := c.screen.Snapshot()
	assert.NotContains(t, snapshot, ":clear", "scrollback wiped")
	assert.True(t, strings.Contains(snapshot, consolePrompt), "prompt repainted after the wipe")
}
