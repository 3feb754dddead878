package lineedit

// EmacsScheme implements emacs-style keybindings. Always in "insert mode";
// printable bytes go straight to the editor.
type EmacsScheme struct{}

// NewEmacsScheme creates a new emacs keybinding scheme.
func NewEmacsScheme() *EmacsScheme {
	return &EmacsScheme{}
}

// Name returns the scheme name.
func (s *EmacsScheme) Name() string {
	return "emacs"
}

// HandleKey processes a key press using emacs keybindings.
func (s *EmacsScheme) HandleKey(e *Editor, k Key) Event {
	switch k.Kind {
	case KeyEnter:
		return Event{Consumed: true, Submit: true}

	case KeyUp:
		return Event{Consumed: true, HistoryPrev: true}

	case KeyDown:
		return Event{Consumed: true, HistoryNext: true}

	case KeyLeft:
		e.Left()
		return Event{Consumed: true}

	case KeyRight:
		e.Right()
		return Event{Consumed: true}

	case KeyHome:
		e.Home()
		return Event{Consumed: true}

	case KeyEnd:
		e.End()
		return Event{Consumed: true}

	case KeyBackspace:
		e.SaveState()
		if e.DeleteBackward() {
			return Event{Consumed: true, TextChanged: true}
		}
		return Event{Consumed: true}

	case KeyDelete:
		e.SaveState()
		if e.DeleteForward() {
			return Event{Consumed: true, TextChanged: true}
		}
		return Event{Consumed: true}

	case KeyAlt:
		switch k.Ch {
		case 0x7f: // Alt-Backspace
			e.SaveState()
			e.DeleteWordBackward()
			return Event{Consumed: true, TextChanged: true}
		case 'b', 'B':
			e.WordLeft()
			return Event{Consumed: true}
		case 'f', 'F':
			e.WordRight()
			return Event{Consumed: true}
		case 'd', 'D':
			e.SaveState()
			e.DeleteWordForward()
			return Event{Consumed: true, TextChanged: true}
		}
		return Event{}

	case KeyCtrl:
		switch k.Ch {
		case 'a':
			e.Home()
			return Event{Consumed: true}
		case 'e':
			e.End()
			return Event{Consumed: true}
		case 'f':
			e.Right()
			return Event{Consumed: true}
		case 'b':
			e.Left()
			return Event{Consumed: true}
		case 'c':
			return Event{Consumed: true, Interrupt: true}
		case 'd':
			// End of input on an empty line, forward delete otherwise.
			if e.Len() == 0 {
				return Event{Consumed: true, Eof: true}
			}
			e.SaveState()
			if e.DeleteForward() {
				return Event{Consumed: true, TextChanged: true}
			}
			return Event{Consumed: true}
		case 'k':
			e.SaveState()
			e.KillToEnd()
			return Event{Consumed: true, TextChanged: true}
		case 'u':
			e.SaveState()
			e.KillToStart()
			return Event{Consumed: true, TextChanged: true}
		case 'w':
			e.SaveState()
			e.DeleteWordBackward()
			return Event{Consumed: true, TextChanged: true}
		case 't':
			e.SaveState()
			e.Transpose()
			return Event{Consumed: true, TextChanged: true}
		case 'p':
			return Event{Consumed: true, HistoryPrev: true}
		case 'n':
			return Event{Consumed: true, HistoryNext: true}
		case 'z', '_':
			if e.Undo() {
				return Event{Consumed: true, TextChanged: true}
			}
			return Event{Consumed: true}
		}
		return Event{}

	case KeyChar:
		if k.Ch >= 32 && k.Ch < 127 {
			e.Insert(k.Ch)
			return Event{Consumed: true, TextChanged: true}
		}
		return Event{}
	}

	return Event{}
}
