package term

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeDisplay records every directive in order and keeps a plain-text
// projection of the stream with SGR sequences stripped.
type fakeDisplay struct {
	ops  []string
	text strings.Builder
}

func (d *fakeDisplay) Write(text string) {
	d.ops = append(d.ops, "write:"+text)
	d.text.WriteString(stripSGR(text))
}

func (d *fakeDisplay) EraseChar() { d.ops = append(d.ops, "erasechar") }
func (d *fakeDisplay) EraseLine() { d.ops = append(d.ops, "eraseline") }
func (d *fakeDisplay) Clear()     { d.ops = append(d.ops, "clear") }

func stripSGR(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

func TestRenderer_Prompt(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d, "truthgit>")
	r.Prompt()
	assert.Equal(t, "truthgit> ", d.text.String())
	assert.Contains(t, d.ops[0], ansiGreen)
}

func TestRenderer_RedrawLine(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d, "$")
	r.RedrawLine("git log")

	assert.Equal(t, "eraseline", d.ops[0])
	assert.Equal(t, "$ git log", d.text.String())
}

func TestRenderer_ClearScreen(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d, "$")
	r.ClearScreen("pending")

	assert.Equal(t, "clear", d.ops[0])
	assert.Equal(t, "$ pending", d.text.String())
}

func TestRenderer_Result(t *testing.T) {
	t.Run("stdout then prompt", func(t *testing.T) {
		d := &fakeDisplay{}
		r := NewRenderer(d, "$")
		r.Result(&Result{Stdout: "hi", ExitCode: 0, Success: true})
		assert.Equal(t, "hi\n$ ", d.text.String())
	})

	t.Run("preserves trailing newline", func(t *testing.T) {
		d := &fakeDisplay{}
		r := NewRenderer(d, "$")
		r.Result(&Result{Stdout: "hi\n", Success: true})
		assert.Equal(t, "hi\n$ ", d.text.String())
	})

	t.Run("stderr styled and exit code on failure", func(t *testing.T) {
		d := &fakeDisplay{}
		r := NewRenderer(d, "$")
		r.Result(&Result{Stderr: "boom", ExitCode: 1, Success: false})

		assert.Equal(t, "boom\nExit code: 1\n$ ", d.text.String())
		assert.Contains(t, d.ops[0], ansiRed)
		assert.Contains(t, d.ops[1], ansiDim)
	})

	t.Run("no exit code line on success", func(t *testing.T) {
		d := &fakeDisplay{}
		r := NewRenderer(d, "$")
		r.Result(&Result{Stdout: "ok", Success: true})
		assert.NotContains(t, d.text.String(), "Exit code")
	})

	t.Run("stdout and stderr are kept separate", func(t *testing.T) {
		d := &fakeDisplay{}
		r := NewRenderer(d, "$")
		r.Result(&Result{Stdout: "out", Stderr: "err", ExitCode: 2, Success: false})
		assert.Equal(t, "out\nerr\nExit code: 2\n$ ", d.text.String())
	})
}

func TestRenderer_Failure(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d, "$")
	r.Failure(errors.New("command blocked"))

	assert.Equal(t, "command blocked\n$ ", d.text.String())
	assert.Contains(t, d.ops[0], ansiRed)
}

func TestRenderer_Interrupt(t *testing.T) {
	d := &fakeDisplay{}
	r := NewRenderer(d, "$")
	r.Interrupt()
	assert.Equal(t, "^C\n", d.text.String())
}
