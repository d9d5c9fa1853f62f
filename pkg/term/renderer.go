package term

import (
	"fmt"
	"strings"
)

// Display is the output side of the terminal device: an append-only
// character stream plus the small set of control directives the console
// needs. Styled runs are plain ANSI SGR sequences inside Write.
type Display interface {
	// Write appends text to the stream. It may contain SGR styling and
	// newlines; the display never reinterprets it beyond that.
	Write(text string)
	// EraseChar removes one displayed column before the cursor.
	EraseChar()
	// EraseLine returns the cursor to the start of the current line and
	// erases its content. Used only by the redraw contract.
	EraseLine()
	// Clear wipes the entire display.
	Clear()
}

const (
	ansiReset = "\x1b[0m"
	ansiDim   = "\x1b[2m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// Result is the structured outcome of one executed command, produced by
// the external executor and consumed exactly once by the renderer.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Success  bool
}

// Renderer turns buffer mutations and execution results into ordered
// display writes. All output flows through here so the prompt, echo and
// result styling stay consistent.
type Renderer struct {
	display Display
	prompt  string
}

func NewRenderer(display Display, prompt string) *Renderer {
	return &Renderer{display: display, prompt: prompt}
}

// Prompt re-emits the styled prompt at the start of an idle period.
func (r *Renderer) Prompt() {
	r.display.Write(ansiGreen + r.prompt + ansiReset + " ")
}

// Echo writes a single typed character back to the display.
func (r *Renderer) Echo(ch rune) {
	r.display.Write(string(ch))
}

// EraseChar removes one echoed column after a backspace.
func (r *Renderer) EraseChar() {
	r.display.EraseChar()
}

// Newline terminates the current input line.
func (r *Renderer) Newline() {
	r.display.Write("\n")
}

// Interrupt marks an abandoned line.
func (r *Renderer) Interrupt() {
	r.display.Write("^C\n")
}

// RedrawLine is the single random-access exception: return to the line
// start, erase it, then rewrite prompt plus content. Used by history
// navigation and after a screen clear.
func (r *Renderer) RedrawLine(content string) {
	r.display.EraseLine()
	r.Prompt()
	if content != "" {
		r.display.Write(content)
	}
}

// Clear wipes the display without repainting anything.
func (r *Renderer) Clear() {
	r.display.Clear()
}

// ClearScreen wipes the display and redraws the prompt with the
// preserved buffer content.
func (r *Renderer) ClearScreen(content string) {
	r.display.Clear()
	r.Prompt()
	if content != "" {
		r.display.Write(content)
	}
}

// Result renders a command outcome: stdout, styled stderr, a dim exit
// code annotation on failure, then the prompt.
func (r *Renderer) Result(res *Result) {
	if res.Stdout != "" {
		r.display.Write(ensureNewline(res.Stdout))
	}
	if res.Stderr != "" {
		r.display.Write(ansiRed + ensureNewline(res.Stderr) + ansiReset)
	}
	if !res.Success {
		r.display.Write(fmt.Sprintf("%sExit code: %d%s\n", ansiDim, res.ExitCode, ansiReset))
	}
	r.Prompt()
}

// Failure renders an invocation failure (the executor could not be
// reached at all) as a single error-styled line, then the prompt.
func (r *Renderer) Failure(err error) {
	r.display.Write(ansiRed + ensureNewline(err.Error()) + ansiReset)
	r.Prompt()
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
