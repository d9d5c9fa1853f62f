package term

// LineBuffer holds the in-progress command text between submissions.
// It has no display side effects; callers pair every mutation with the
// matching Renderer write.
type LineBuffer struct {
	content []rune
}

// Append adds a single character to the end of the buffer.
func (b *LineBuffer) Append(ch rune) {
	b.content = append(b.content, ch)
}

// Backspace removes the last character. It reports whether a character
// was actually removed; on an empty buffer it is a no-op.
func (b *LineBuffer) Backspace() bool {
	if len(b.content) == 0 {
		return false
	}
	b.content = b.content[:len(b.content)-1]
	return true
}

// Replace swaps the whole buffer content, used by history navigation.
func (b *LineBuffer) Replace(text string) {
	b.content = []rune(text)
}

// Clear empties the buffer.
func (b *LineBuffer) Clear() {
	b.content = b.content[:0]
}

func (b *LineBuffer) String() string {
	return string(b.content)
}

func (b *LineBuffer) Len() int {
	return len(b.content)
}
