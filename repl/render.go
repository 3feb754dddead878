package repl

import (
	"fmt"
	"io"

	"github.com/sebastian-j-ibanez/repl-suite/lineedit"
)

const (
	eraseToEnd = "\x1b[K"
)

// prompt returns the prompt for the line being edited: the continuation
// prompt once a multi-line command has pending lines.
func (r *Reader) prompt() string {
	if len(r.pending) > 0 {
		return r.opts.ContPrompt
	}
	return r.opts.Prompt
}

// echo writes the minimal terminal update for one handled key. Appending
// at the end of the line writes just the new byte; a pure cursor move
// emits a relative move; anything else rewrites the line suffix.
func (r *Reader) echo(k lineedit.Key, ev lineedit.Event, prevText string, prevCursor int) error {
	text := r.ed.Text()
	cursor := r.ed.Cursor()

	if !ev.TextChanged {
		if text != prevText {
			// Scheme misreported; fall back to a full rewrite.
			return r.redraw()
		}
		return r.moveCursor(cursor - prevCursor)
	}

	// Fast path: a printable byte appended at the end of the line.
	if k.Kind == lineedit.KeyChar && cursor == len(text) &&
		len(text) == len(prevText)+1 && prevCursor == len(prevText) {
		if _, err := r.con.Write([]byte{k.Ch}); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	return r.redraw()
}

// moveCursor emits a relative horizontal cursor move of delta cells.
func (r *Reader) moveCursor(delta int) error {
	var seq string
	switch {
	case delta == 0:
		return nil
	case delta > 0:
		seq = fmt.Sprintf("\x1b[%dC", delta)
	default:
		seq = fmt.Sprintf("\x1b[%dD", -delta)
	}
	if _, err := io.WriteString(r.con, seq); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// redraw rewrites the visible line from scratch: carriage return, prompt,
// text, erase to end of line, then cursor repositioning. This is the
// fallback path; steady-state typing goes through echo's byte append.
func (r *Reader) redraw() error {
	p := r.prompt()
	text := r.ed.Text()

	out := "\r" + p + text + eraseToEnd
	if tail := len(text) - r.ed.Cursor(); tail > 0 {
		out += fmt.Sprintf("\x1b[%dD", tail)
	}
	if _, err := io.WriteString(r.con, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
