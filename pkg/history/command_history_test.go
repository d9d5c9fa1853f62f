package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionHistory_Record(t *testing.T) {
	t.Run("appends in submission order", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("first")
		h.Record("second")
		assert.Equal(t, []string{"first", "second"}, h.Entries())
	})

	t.Run("ignores blank commands", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("")
		h.Record("   ")
		assert.Empty(t, h.Entries())
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("ls")
		h.Record("pwd")
		h.Record("ls")
		assert.Equal(t, []string{"ls", "pwd", "ls"}, h.Entries())
	})

	t.Run("resets cursor", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("first")
		h.Older()
		h.Record("second")
		assert.Equal(t, -1, h.cursor)
	})
}

func TestSessionHistory_Older(t *testing.T) {
	t.Run("empty history is a no-op", func(t *testing.T) {
		h := NewSessionHistory()
		entry, ok := h.Older()
		assert.False(t, ok)
		assert.Equal(t, "", entry)
	})

	t.Run("walks from newest to oldest", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("a")
		h.Record("b")

		entry, ok := h.Older()
		assert.True(t, ok)
		assert.Equal(t, "b", entry)

		entry, ok = h.Older()
		assert.True(t, ok)
		assert.Equal(t, "a", entry)
	})

	t.Run("clamps at the oldest entry without wrapping", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("only")
		for i := 0; i < 5; i++ {
			entry, ok := h.Older()
			assert.True(t, ok, "call %d", i)
			assert.Equal(t, "only", entry, "call %d", i)
		}
	})
}

func TestSessionHistory_Newer(t *testing.T) {
	t.Run("no-op when not browsing", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("a")
		entry, ok := h.Newer()
		assert.False(t, ok)
		assert.Equal(t, "", entry)
	})

	t.Run("blank line past the newest entry", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("a")
		h.Older()

		entry, ok := h.Newer()
		assert.True(t, ok)
		assert.Equal(t, "", entry)

		// Browsing mode was left; another Newer does nothing.
		_, ok = h.Newer()
		assert.False(t, ok)
	})

	t.Run("round trip after blank line", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("recent")
		h.Older()
		h.Newer()

		entry, ok := h.Older()
		assert.True(t, ok)
		assert.Equal(t, "recent", entry)
	})

	t.Run("up up down down sequence", func(t *testing.T) {
		h := NewSessionHistory()
		h.Record("a")
		h.Record("b")

		var seen []string
		for _, move := range []func() (string, bool){h.Older, h.Older, h.Newer, h.Newer} {
			entry, ok := move()
			assert.True(t, ok)
			seen = append(seen, entry)
		}
		assert.Equal(t, []string{"b", "a", "b", ""}, seen)
	})
}

func TestSessionHistory_Reset(t *testing.T) {
	h := NewSessionHistory()
	for i := 0; i < 3; i++ {
		h.Record(fmt.Sprintf("cmd%d", i))
	}
	h.Older()
	h.Older()
	h.Reset()

	// After a reset, Older starts again from the most recent entry.
	entry, ok := h.Older()
	assert.True(t, ok)
	assert.Equal(t, "cmd2", entry)
}
