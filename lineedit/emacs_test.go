package lineedit

import "testing"

func TestEmacsPrintable(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	for _, ch := range []byte("hi") {
		ev := s.HandleKey(e, Char(ch))
		if !ev.Consumed || !ev.TextChanged {
			t.Errorf("printable byte %q not consumed", ch)
		}
	}
	if e.Text() != "hi" {
		t.Errorf("expected 'hi', got %q", e.Text())
	}
}

func TestEmacsEnterSubmits(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	ev := s.HandleKey(e, Key{Kind: KeyEnter})
	if !ev.Submit {
		t.Error("Enter should report Submit")
	}
}

func TestEmacsCtrlDEmptyIsEof(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	ev := s.HandleKey(e, Ctrl('d'))
	if !ev.Eof {
		t.Error("Ctrl-D on empty line should report Eof")
	}

	e.Set("x")
	e.Home()
	ev = s.HandleKey(e, Ctrl('d'))
	if ev.Eof {
		t.Error("Ctrl-D on non-empty line should not report Eof")
	}
	if e.Text() != "" {
		t.Errorf("Ctrl-D should forward-delete, got %q", e.Text())
	}
}

func TestEmacsCtrlCInterrupts(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	e.Set("partial")
	ev := s.HandleKey(e, Ctrl('c'))
	if !ev.Interrupt {
		t.Error("Ctrl-C should report Interrupt")
	}
}

func TestEmacsHistoryKeys(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	if !s.HandleKey(e, Key{Kind: KeyUp}).HistoryPrev {
		t.Error("Up should report HistoryPrev")
	}
	if !s.HandleKey(e, Key{Kind: KeyDown}).HistoryNext {
		t.Error("Down should report HistoryNext")
	}
	if !s.HandleKey(e, Ctrl('p')).HistoryPrev {
		t.Error("Ctrl-P should report HistoryPrev")
	}
	if !s.HandleKey(e, Ctrl('n')).HistoryNext {
		t.Error("Ctrl-N should report HistoryNext")
	}
}

func TestEmacsLineEditing(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	e.Set("hello world")

	s.HandleKey(e, Ctrl('a'))
	if e.Cursor() != 0 {
		t.Errorf("Ctrl-A: expected cursor 0, got %d", e.Cursor())
	}
	s.HandleKey(e, Ctrl('e'))
	if e.Cursor() != 11 {
		t.Errorf("Ctrl-E: expected cursor 11, got %d", e.Cursor())
	}

	s.HandleKey(e, Ctrl('w'))
	if e.Text() != "hello " {
		t.Errorf("Ctrl-W: expected 'hello ', got %q", e.Text())
	}

	s.HandleKey(e, Ctrl('u'))
	if e.Text() != "" {
		t.Errorf("Ctrl-U: expected empty, got %q", e.Text())
	}

	// Ctrl-_ undoes the kill
	s.HandleKey(e, Ctrl('_'))
	if e.Text() != "hello " {
		t.Errorf("undo: expected 'hello ', got %q", e.Text())
	}
}

func TestEmacsAltWordKeys(t *testing.T) {
	s := NewEmacsScheme()
	e := New()
	e.Set("foo bar")
	s.HandleKey(e, Alt('b'))
	if e.Cursor() != 4 {
		t.Errorf("Alt-B: expected cursor 4, got %d", e.Cursor())
	}
	s.HandleKey(e, Alt(0x7f))
	if e.Text() != "bar" {
		t.Errorf("Alt-Backspace: expected 'bar', got %q", e.Text())
	}
}
