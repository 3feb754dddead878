package lineedit

// Event describes the outcome of handling a key press.
type Event struct {
	Consumed    bool // the scheme handled the key
	TextChanged bool // editor content was modified
	Submit      bool // user pressed Enter
	HistoryPrev bool // user asked for an older history entry
	HistoryNext bool // user asked for a newer history entry
	Eof         bool // end of input (Ctrl-D on an empty line)
	Interrupt   bool // user pressed Ctrl-C
}

// Scheme interprets key presses and translates them to editor actions.
type Scheme interface {
	// Name returns the scheme name for display/config.
	Name() string

	// HandleKey applies one decoded key press to the editor and returns
	// an Event describing what happened. History and session signals are
	// reported in the Event, not acted on; the caller owns those.
	HandleKey(e *Editor, k Key) Event
}
