// Package delim tracks open/close balance of delimiter pairs and quoted
// literals across the lines of a multi-line command.
package delim

// Pair is one configured delimiter pair, e.g. '(' and ')'.
type Pair struct {
	Open  byte
	Close byte
}

// DefaultPairs covers the usual bracket delimiters.
var DefaultPairs = []Pair{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
}

// DefaultQuotes covers double and single quoted string literals.
var DefaultQuotes = []byte{'"', '\''}

// Tracker counts unmatched openers for each configured pair and tracks
// whether the text is inside an unterminated quoted literal. Counts never
// go negative: a closer with no matching opener is ignored.
type Tracker struct {
	pairs  []Pair
	quotes []byte
	counts []int
	quote  byte // active quote byte, 0 when outside a literal
}

// New creates a Tracker for the given pairs and quote characters.
func New(pairs []Pair, quotes []byte) *Tracker {
	return &Tracker{
		pairs:  pairs,
		quotes: quotes,
		counts: make([]int, len(pairs)),
	}
}

// Reset clears all counts and the literal flag.
func (t *Tracker) Reset() {
	for i := range t.counts {
		t.counts[i] = 0
	}
	t.quote = 0
}

// Feed scans one line, updating counts and the literal flag. Delimiters
// inside a quoted literal are inert; only the same quote byte ends the
// literal, and a literal stays open across line boundaries.
func (t *Tracker) Feed(line string) {
	for i := 0; i < len(line); i++ {
		ch := line[i]

		if t.quote != 0 {
			if ch == t.quote {
				t.quote = 0
			}
			continue
		}

		if t.isQuote(ch) {
			t.quote = ch
			continue
		}

		for p, pair := range t.pairs {
			switch ch {
			case pair.Open:
				t.counts[p]++
			case pair.Close:
				if t.counts[p] > 0 {
					t.counts[p]--
				}
			}
		}
	}
}

// Balanced reports whether every pair is closed and no literal is open.
func (t *Tracker) Balanced() bool {
	if t.quote != 0 {
		return false
	}
	for _, c := range t.counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// InLiteral reports whether the fed text ends inside a quoted literal.
func (t *Tracker) InLiteral() bool {
	return t.quote != 0
}

// Open returns the number of unmatched openers for the pair at index i.
func (t *Tracker) Open(i int) int {
	return t.counts[i]
}

func (t *Tracker) isQuote(ch byte) bool {
	for _, q := range t.quotes {
		if ch == q {
			return true
		}
	}
	return false
}

// Complete reports whether lines form a balanced command under the given
// configuration. It scans from scratch so earlier edits (backspace,
// history recall) cannot leave stale counts behind.
func Complete(lines []string, pairs []Pair, quotes []byte) bool {
	t := New(pairs, quotes)
	for _, line := range lines {
		t.Feed(line)
	}
	return t.Balanced()
}
