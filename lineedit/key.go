package lineedit

// Kind classifies a decoded key press.
type Kind int

const (
	// KeyChar is a printable byte; Ch holds it.
	KeyChar Kind = iota
	// KeyCtrl is a control chord; Ch holds the lowercase letter ('a' for Ctrl-A).
	KeyCtrl
	// KeyAlt is a meta chord; Ch holds the letter, or 0x7f for Alt-Backspace.
	KeyAlt
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Key is one decoded key press. Multi-byte escape sequences arrive as a
// single Key; the byte-level decoding lives in the repl package.
type Key struct {
	Kind Kind
	Ch   byte
}

// Char builds a printable-byte key.
func Char(ch byte) Key {
	return Key{Kind: KeyChar, Ch: ch}
}

// Ctrl builds a control-chord key for the given letter.
func Ctrl(ch byte) Key {
	return Key{Kind: KeyCtrl, Ch: ch}
}

// Alt builds a meta-chord key for the given letter.
func Alt(ch byte) Key {
	return Key{Kind: KeyAlt, Ch: ch}
}
