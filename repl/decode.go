package repl

import "github.com/sebastian-j-ibanez/repl-suite/lineedit"

// maxSeq caps buffered escape-sequence bytes; longer sequences are
// treated as malformed and dropped.
const maxSeq = 8

type decodeState int

const (
	stateNormal decodeState = iota
	stateEsc                // saw ESC, waiting for '[' or an Alt chord
	stateCSI                // inside ESC [ ..., waiting for the final byte
	stateSkip               // discarding an overlong sequence until its final byte
)

// decoder is a small lookahead state machine turning the raw byte stream
// into key presses. Multi-byte sequences yield nothing until they
// complete; unrecognized sequences are dropped, and an ESC followed by an
// unrelated byte flushes that byte back through as a literal.
type decoder struct {
	state decodeState
	seq   []byte
}

// Next feeds one byte and returns the keys it completes (usually zero or
// one).
func (d *decoder) Next(b byte) []lineedit.Key {
	switch d.state {
	case stateEsc:
		return d.nextEsc(b)
	case stateCSI:
		return d.nextCSI(b)
	case stateSkip:
		if b < 0x20 || b > 0x3f {
			d.state = stateNormal
		}
		return nil
	}
	return d.nextNormal(b)
}

func (d *decoder) nextNormal(b byte) []lineedit.Key {
	switch {
	case b == 0x1b:
		d.state = stateEsc
		return nil
	case b == '\r' || b == '\n':
		return []lineedit.Key{{Kind: lineedit.KeyEnter}}
	case b == 0x7f || b == 0x08:
		return []lineedit.Key{{Kind: lineedit.KeyBackspace}}
	case b == 0x1f: // Ctrl-_
		return []lineedit.Key{lineedit.Ctrl('_')}
	case b < 0x20:
		return []lineedit.Key{lineedit.Ctrl('a' + b - 1)}
	default:
		return []lineedit.Key{lineedit.Char(b)}
	}
}

func (d *decoder) nextEsc(b byte) []lineedit.Key {
	switch b {
	case '[':
		d.state = stateCSI
		d.seq = d.seq[:0]
		return nil
	case 0x1b:
		// Restart: treat the second ESC as the introducer.
		return nil
	case 'b', 'B', 'f', 'F', 'd', 'D':
		d.state = stateNormal
		return []lineedit.Key{lineedit.Alt(b)}
	case 0x7f:
		d.state = stateNormal
		return []lineedit.Key{lineedit.Alt(0x7f)}
	default:
		// Not a sequence we know; drop the ESC and flush the byte
		// back through as a literal.
		d.state = stateNormal
		return d.nextNormal(b)
	}
}

func (d *decoder) nextCSI(b byte) []lineedit.Key {
	// Parameter (0x30-0x3F) and intermediate (0x20-0x2F) bytes continue
	// the sequence; a final byte (0x40-0x7E) terminates it.
	if b >= 0x20 && b <= 0x3f {
		d.seq = append(d.seq, b)
		if len(d.seq) > maxSeq {
			d.state = stateSkip
		}
		return nil
	}
	if b < 0x40 || b > 0x7e {
		// Malformed; discard the whole sequence.
		d.state = stateNormal
		return nil
	}

	d.state = stateNormal
	params := string(d.seq)

	switch b {
	case 'A':
		return []lineedit.Key{{Kind: lineedit.KeyUp}}
	case 'B':
		return []lineedit.Key{{Kind: lineedit.KeyDown}}
	case 'C':
		return []lineedit.Key{{Kind: lineedit.KeyRight}}
	case 'D':
		return []lineedit.Key{{Kind: lineedit.KeyLeft}}
	case 'H':
		return []lineedit.Key{{Kind: lineedit.KeyHome}}
	case 'F':
		return []lineedit.Key{{Kind: lineedit.KeyEnd}}
	case '~':
		switch params {
		case "1", "7":
			return []lineedit.Key{{Kind: lineedit.KeyHome}}
		case "4", "8":
			return []lineedit.Key{{Kind: lineedit.KeyEnd}}
		case "3":
			return []lineedit.Key{{Kind: lineedit.KeyDelete}}
		}
	}

	// Recognized shape, unrecognized meaning: a single stray key must
	// not abort the session, so it is silently dropped.
	return nil
}
