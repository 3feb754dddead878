// Package repl reads logical commands from a raw-mode terminal: it
// decodes keystrokes, maintains the visible line, browses history, and
// assembles multi-line input until delimiters balance.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sebastian-j-ibanez/repl-suite/delim"
	"github.com/sebastian-j-ibanez/repl-suite/history"
	"github.com/sebastian-j-ibanez/repl-suite/lineedit"
)

// ErrInterrupt is returned by ReadCommand when the user presses Ctrl-C.
// The partial input is discarded and never reaches history.
var ErrInterrupt = errors.New("interrupted")

// Console is the byte-level terminal the Reader borrows. *term.Session
// satisfies it; tests use an in-memory fake.
type Console interface {
	io.Writer
	ReadByte() (byte, error)
}

// Options configures a Reader. Zero values get sensible defaults.
type Options struct {
	Prompt       string // main prompt, default "> "
	ContPrompt   string // continuation prompt for unbalanced lines, default "... "
	Pairs        []delim.Pair
	Quotes       []byte
	HistoryLimit int    // max retained entries, 0 = unlimited
	HistoryFile  string // newline-delimited history file, "" disables
	Scheme       lineedit.Scheme
}

// Reader turns raw bytes from a Console into completed commands. The
// history survives across ReadCommand calls; buffer and delimiter state
// are per call.
type Reader struct {
	con     Console
	opts    Options
	ed      *lineedit.Editor
	hist    *history.History
	scheme  lineedit.Scheme
	dec     decoder
	pending []string // completed-but-unsubmitted lines of the current command
}

// NewReader creates a Reader over con, loading the history file if one
// is configured.
func NewReader(con Console, opts Options) (*Reader, error) {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.ContPrompt == "" {
		opts.ContPrompt = "... "
	}
	if opts.Pairs == nil {
		opts.Pairs = delim.DefaultPairs
	}
	if opts.Scheme == nil {
		opts.Scheme = lineedit.NewEmacsScheme()
	}

	hist, err := history.Load(opts.HistoryFile, opts.HistoryLimit)
	if err != nil {
		return nil, err
	}

	return &Reader{
		con:    con,
		opts:   opts,
		ed:     lineedit.New(),
		hist:   hist,
		scheme: opts.Scheme,
	}, nil
}

// History exposes the command history, e.g. for a host's `history` builtin.
func (r *Reader) History() *history.History {
	return r.hist
}

// ReadCommand reads one logical command: it blocks on single-byte reads,
// applying each key fully (buffer, history, redraw) before the next read.
// Returns the joined multi-line text on submit, io.EOF for Ctrl-D on an
// empty buffer, ErrInterrupt for Ctrl-C, or the underlying I/O error.
// The caller owns terminal mode restoration on every path.
func (r *Reader) ReadCommand() (string, error) {
	r.pending = r.pending[:0]
	r.ed.Clear()
	r.ed.ClearUndo()
	r.hist.EndBrowse()

	if _, err := io.WriteString(r.con, r.opts.Prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	for {
		b, err := r.con.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("reading input: %w", err)
		}

		for _, k := range r.dec.Next(b) {
			cmd, done, err := r.apply(k)
			if err != nil {
				return "", err
			}
			if done {
				return cmd, nil
			}
		}
	}
}

// apply runs one key through the scheme and emits the matching redraw.
func (r *Reader) apply(k lineedit.Key) (cmd string, done bool, err error) {
	prevText := r.ed.Text()
	prevCursor := r.ed.Cursor()

	ev := r.scheme.HandleKey(r.ed, k)

	switch {
	case ev.Interrupt:
		r.pending = r.pending[:0]
		r.ed.Clear()
		if _, werr := io.WriteString(r.con, "^C\r\n"); werr != nil {
			return "", false, fmt.Errorf("writing output: %w", werr)
		}
		return "", false, ErrInterrupt

	case ev.Eof:
		// Only reachable with an empty current line; pending lines of a
		// multi-line command still block EOF.
		if len(r.pending) > 0 {
			return "", false, nil
		}
		if _, werr := io.WriteString(r.con, "\r\n"); werr != nil {
			return "", false, fmt.Errorf("writing output: %w", werr)
		}
		return "", false, io.EOF

	case ev.Submit:
		return r.submit()

	case ev.HistoryPrev:
		if line, ok := r.hist.Prev(r.ed.Text()); ok {
			r.ed.Set(line)
			return "", false, r.redraw()
		}
		return "", false, nil

	case ev.HistoryNext:
		if line, ok := r.hist.Next(); ok {
			r.ed.Set(line)
			return "", false, r.redraw()
		}
		return "", false, nil
	}

	if !ev.Consumed {
		return "", false, nil
	}
	return "", false, r.echo(k, ev, prevText, prevCursor)
}

// submit handles Enter: either the command is balanced and complete, or
// the current line joins the pending set and editing continues.
func (r *Reader) submit() (string, bool, error) {
	lines := append(append([]string{}, r.pending...), r.ed.Text())

	if _, err := io.WriteString(r.con, "\r\n"); err != nil {
		return "", false, fmt.Errorf("writing output: %w", err)
	}

	if !delim.Complete(lines, r.opts.Pairs, r.opts.Quotes) {
		r.pending = append(r.pending, r.ed.Text())
		r.ed.Clear()
		r.ed.ClearUndo()
		if _, err := io.WriteString(r.con, r.opts.ContPrompt); err != nil {
			return "", false, fmt.Errorf("writing output: %w", err)
		}
		return "", false, nil
	}

	cmd := strings.Join(lines, "\n")
	if r.hist.Add(cmd) {
		if err := history.AppendFile(r.opts.HistoryFile, cmd); err != nil {
			return "", false, err
		}
	}

	r.pending = r.pending[:0]
	r.ed.Clear()
	r.ed.ClearUndo()
	return cmd, true, nil
}
