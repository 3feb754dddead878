// Package lineedit provides an editable line buffer with cursor tracking
// and emacs-style key handling.
package lineedit

// undoState is a snapshot of buffer and cursor for undo.
type undoState struct {
	text   []byte
	cursor int
}

// Editor is a single-line text editor. The cursor is an insertion point
// in [0, Len()].
type Editor struct {
	text    []byte
	cursor  int
	undoStk []undoState
	redoStk []undoState
	maxUndo int // 0 = unlimited
}

// New creates a new empty Editor.
func New() *Editor {
	return &Editor{}
}

// Text returns the current text.
func (e *Editor) Text() string {
	return string(e.text)
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the length of the text.
func (e *Editor) Len() int {
	return len(e.text)
}

// Clear resets the editor to empty.
func (e *Editor) Clear() {
	e.text = e.text[:0]
	e.cursor = 0
}

// Set replaces the text and moves the cursor to the end.
func (e *Editor) Set(text string) {
	e.text = []byte(text)
	e.cursor = len(e.text)
}

// SetCursor sets the cursor position, clamped to the valid range.
func (e *Editor) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(e.text) {
		pos = len(e.text)
	}
	e.cursor = pos
}

// Insert adds a byte at the cursor position and advances the cursor.
func (e *Editor) Insert(ch byte) {
	e.text = append(e.text, 0)
	copy(e.text[e.cursor+1:], e.text[e.cursor:])
	e.text[e.cursor] = ch
	e.cursor++
}

// InsertString adds a string at the cursor position.
func (e *Editor) InsertString(s string) {
	for i := 0; i < len(s); i++ {
		e.Insert(s[i])
	}
}

// DeleteBackward removes the byte before the cursor (backspace).
// Returns false when the cursor is at the start.
func (e *Editor) DeleteBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
	e.cursor--
	return true
}

// DeleteForward removes the byte at the cursor (delete).
// Returns false when the cursor is at the end.
func (e *Editor) DeleteForward() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
	return true
}

// Left moves the cursor one position left. Returns false at the start.
func (e *Editor) Left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	return true
}

// Right moves the cursor one position right. Returns false at the end.
func (e *Editor) Right() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	e.cursor++
	return true
}

// Home moves the cursor to the beginning of the line.
func (e *Editor) Home() {
	e.cursor = 0
}

// End moves the cursor to the end of the line.
func (e *Editor) End() {
	e.cursor = len(e.text)
}

// BeforeCursor returns the text before the cursor.
func (e *Editor) BeforeCursor() string {
	return string(e.text[:e.cursor])
}

// AfterCursor returns the text from the cursor to the end.
func (e *Editor) AfterCursor() string {
	return string(e.text[e.cursor:])
}

// SaveState pushes the current state onto the undo stack. Call before
// mutations that should be undoable.
func (e *Editor) SaveState() {
	if len(e.undoStk) > 0 {
		last := e.undoStk[len(e.undoStk)-1]
		if last.cursor == e.cursor && string(last.text) == string(e.text) {
			return
		}
	}

	textCopy := make([]byte, len(e.text))
	copy(textCopy, e.text)
	e.undoStk = append(e.undoStk, undoState{text: textCopy, cursor: e.cursor})

	if e.maxUndo > 0 && len(e.undoStk) > e.maxUndo {
		e.undoStk = e.undoStk[1:]
	}

	// A new change invalidates any redo path.
	e.redoStk = e.redoStk[:0]
}

// Undo restores the previous saved state. Returns false if there is none.
func (e *Editor) Undo() bool {
	if len(e.undoStk) == 0 {
		return false
	}

	textCopy := make([]byte, len(e.text))
	copy(textCopy, e.text)
	e.redoStk = append(e.redoStk, undoState{text: textCopy, cursor: e.cursor})

	last := e.undoStk[len(e.undoStk)-1]
	e.undoStk = e.undoStk[:len(e.undoStk)-1]
	e.text = last.text
	e.cursor = last.cursor
	return true
}

// Redo re-applies the most recently undone state. Returns false if there
// is nothing to redo.
func (e *Editor) Redo() bool {
	if len(e.redoStk) == 0 {
		return false
	}

	textCopy := make([]byte, len(e.text))
	copy(textCopy, e.text)
	e.undoStk = append(e.undoStk, undoState{text: textCopy, cursor: e.cursor})

	last := e.redoStk[len(e.redoStk)-1]
	e.redoStk = e.redoStk[:len(e.redoStk)-1]
	e.text = last.text
	e.cursor = last.cursor
	return true
}

// ClearUndo drops the undo and redo stacks. Called between commands so
// undo never reaches back into a submitted line.
func (e *Editor) ClearUndo() {
	e.undoStk = e.undoStk[:0]
	e.redoStk = e.redoStk[:0]
}

// SetMaxUndo caps the undo stack depth (0 = unlimited).
func (e *Editor) SetMaxUndo(max int) {
	e.maxUndo = max
}

// isWordChar reports whether b is a word character (alphanumeric or underscore).
func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

// charClass returns 0 for whitespace, 1 for word characters, 2 for the rest.
func charClass(b byte) int {
	if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
		return 0
	}
	if isWordChar(b) {
		return 1
	}
	return 2
}

// wordBoundaryLeft finds the previous word boundary.
func (e *Editor) wordBoundaryLeft() int {
	if e.cursor == 0 {
		return 0
	}
	i := e.cursor - 1
	for i > 0 && charClass(e.text[i]) == 0 {
		i--
	}
	if i == 0 {
		return 0
	}
	class := charClass(e.text[i])
	for i > 0 && charClass(e.text[i-1]) == class {
		i--
	}
	return i
}

// wordBoundaryRight finds the next word boundary.
func (e *Editor) wordBoundaryRight() int {
	if e.cursor >= len(e.text) {
		return len(e.text)
	}
	i := e.cursor
	class := charClass(e.text[i])
	for i < len(e.text) && charClass(e.text[i]) == class {
		i++
	}
	for i < len(e.text) && charClass(e.text[i]) == 0 {
		i++
	}
	return i
}

// WordLeft moves the cursor to the previous word boundary.
func (e *Editor) WordLeft() {
	e.cursor = e.wordBoundaryLeft()
}

// WordRight moves the cursor to the next word boundary.
func (e *Editor) WordRight() {
	e.cursor = e.wordBoundaryRight()
}

// DeleteWordBackward deletes from the cursor back to the previous word
// boundary (Ctrl-W).
func (e *Editor) DeleteWordBackward() {
	newPos := e.wordBoundaryLeft()
	e.text = append(e.text[:newPos], e.text[e.cursor:]...)
	e.cursor = newPos
}

// DeleteWordForward deletes from the cursor to the next word boundary (Alt-D).
func (e *Editor) DeleteWordForward() {
	newPos := e.wordBoundaryRight()
	e.text = append(e.text[:e.cursor], e.text[newPos:]...)
}

// KillToEnd deletes from the cursor to the end of the line (Ctrl-K).
func (e *Editor) KillToEnd() {
	e.text = e.text[:e.cursor]
}

// KillToStart deletes from the beginning of the line to the cursor (Ctrl-U).
func (e *Editor) KillToStart() {
	e.text = e.text[e.cursor:]
	e.cursor = 0
}

// Transpose swaps the byte before the cursor with the one at the cursor
// (Ctrl-T). At the end of the line it swaps the last two bytes.
func (e *Editor) Transpose() {
	if e.cursor == 0 || len(e.text) < 2 {
		return
	}
	pos := e.cursor
	if pos == len(e.text) {
		pos--
	}
	if pos > 0 {
		e.text[pos-1], e.text[pos] = e.text[pos], e.text[pos-1]
		if e.cursor < len(e.text) {
			e.cursor++
		}
	}
}
