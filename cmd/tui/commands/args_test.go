package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	t.Run("plain words", func(t *testing.T) {
		assert.Equal(t, []string{"verify", "water", "boils"}, SplitArgs("verify water boils"))
	})

	t.Run("double quoted claim stays one argument", func(t *testing.T) {
		args := SplitArgs(`verify "Water boils at 100C" --domain physics`)
		assert.Equal(t, []string{"verify", "Water boils at 100C", "--domain", "physics"}, args)
	})

	t.Run("single quotes", func(t *testing.T) {
		args := SplitArgs("note 'Daily/2026-08-24.md'")
		assert.Equal(t, []string{"note", "Daily/2026-08-24.md"}, args)
	})

	t.Run("collapses repeated whitespace", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitArgs("a \t  b"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitArgs(""))
		assert.Empty(t, SplitArgs("   "))
	})
}

func TestExtractFlag(t *testing.T) {
	t.Run("removes flag and value", func(t *testing.T) {
		value, rest := ExtractFlag([]string{"claim", "--domain", "physics", "text"}, "domain")
		assert.Equal(t, "physics", value)
		assert.Equal(t, []string{"claim", "text"}, rest)
	})

	t.Run("missing flag leaves args untouched", func(t *testing.T) {
		value, rest := ExtractFlag([]string{"claim", "text"}, "risk")
		assert.Empty(t, value)
		assert.Equal(t, []string{"claim", "text"}, rest)
	})

	t.Run("flag without value is ignored", func(t *testing.T) {
		value, rest := ExtractFlag([]string{"claim", "--risk"}, "risk")
		assert.Empty(t, value)
		assert.Equal(t, []string{"claim", "--risk"}, rest)
	})
}
