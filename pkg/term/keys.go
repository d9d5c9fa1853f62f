package term

// Key names the control keys the console reacts to. Printable input is
// carried in KeyEvent.Ch instead.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyArrowUp
	KeyArrowDown
	KeyInterrupt   // Ctrl+C
	KeyClearScreen // Ctrl+L
)

// KeyEvent is the console's input alphabet. The UI layer translates raw
// device keystrokes into this form before handing them to the Session.
type KeyEvent struct {
	Key Key
	Ch  rune
}

// PrintableEvent builds an event for a plain character keystroke.
func PrintableEvent(ch rune) KeyEvent {
	return KeyEvent{Ch: ch}
}

// ControlEvent builds an event for a named control key.
func ControlEvent(key Key) KeyEvent {
	return KeyEvent{Key: key}
}
