// Package term handles raw terminal mode for byte-at-a-time input.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned by Open when the input stream is not a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// Session owns the terminal's mode for the duration of a read loop.
// Open one per terminal; concurrent sessions on the same device are
// undefined. Restore must run on every exit path.
type Session struct {
	in       *os.File
	out      *os.File
	fd       int
	original unix.Termios
	raw      bool
}

// Open snapshots the current terminal settings for in without changing them.
// Output (echo, cursor control) goes to out.
func Open(in, out *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("%s: %w", in.Name(), ErrNotTerminal)
	}
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("reading terminal settings: %w", err)
	}
	return &Session{in: in, out: out, fd: fd, original: *termios}, nil
}

// EnterRaw puts the terminal into raw mode: no line buffering, no echo,
// no driver signal handling, so Ctrl-C and Ctrl-D arrive as plain bytes.
// Reads block until a single byte is available.
func (s *Session) EnterRaw() error {
	raw := s.original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	s.raw = true
	return nil
}

// Restore puts the terminal back the way Open found it. Safe to call
// more than once, and a no-op if raw mode was never entered.
func (s *Session) Restore() error {
	if !s.raw {
		return nil
	}
	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &s.original); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	s.raw = false
	return nil
}

// Raw reports whether the session currently holds the terminal in raw mode.
func (s *Session) Raw() bool {
	return s.raw
}

// ReadByte blocks until one byte of input is available and returns it.
// Returns io.EOF when the input stream closes.
func (s *Session) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := s.in.Read(buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return buf[0], nil
}

// Write sends bytes straight to the terminal. os.File writes are
// unbuffered, so escape sequences take effect immediately.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// WriteString is Write for strings.
func (s *Session) WriteString(str string) (int, error) {
	return s.out.WriteString(str)
}

// Size returns the terminal width and height in cells.
func (s *Session) Size() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(s.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("detecting terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
