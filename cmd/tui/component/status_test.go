package component

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine_RightSegmentStaysAligned(t *testing.T) {
	ascii := statusLine(60, "mode: local | repo: /home/user/truth (3 claims)", "idle")
	accented := statusLine(60, "mode: local | repo: /home/ümläut/répo (3 claims)", "idle")

	// Both strings occupy the same number of display cells even though
	// the accented path is longer in bytes.
	assert.Equal(t, runewidth.StringWidth(ascii), runewidth.StringWidth(accented))
	assert.True(t, strings.HasSuffix(accented, "idle"))
}

func TestStatusLine_NarrowWidthKeepsOneGap(t *testing.T) {
	line := statusLine(10, "a very long left segment", "executing")
	assert.Equal(t, " a very long left segment executing", line)
}
