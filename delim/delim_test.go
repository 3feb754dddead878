package delim

import "testing"

func TestUnbalancedParen(t *testing.T) {
	tr := New(DefaultPairs, nil)
	tr.Feed("foo(")
	if tr.Balanced() {
		t.Error("'foo(' should be unbalanced")
	}
	if tr.Open(0) != 1 {
		t.Errorf("expected 1 open paren, got %d", tr.Open(0))
	}

	tr.Feed(")")
	if !tr.Balanced() {
		t.Error("closing paren should balance")
	}
}

func TestNestedPairs(t *testing.T) {
	tr := New(DefaultPairs, nil)
	tr.Feed("f([{")
	tr.Feed("}] )")
	if !tr.Balanced() {
		t.Error("nested pairs closed across lines should balance")
	}
}

func TestMismatchedCloserIgnored(t *testing.T) {
	tr := New(DefaultPairs, nil)
	tr.Feed(")))")
	if !tr.Balanced() {
		t.Error("stray closers should leave counts at zero")
	}
	if tr.Open(0) != 0 {
		t.Errorf("count went negative-ish: %d", tr.Open(0))
	}

	// A stray closer must not eat a later legitimate opener.
	tr.Feed("(")
	if tr.Balanced() {
		t.Error("opener after stray closers should count")
	}
}

func TestQuotedLiteralSuspendsPairs(t *testing.T) {
	tr := New(DefaultPairs, DefaultQuotes)
	tr.Feed(`say "(unclosed"`)
	if !tr.Balanced() {
		t.Error("paren inside closed literal should be inert")
	}
}

func TestUnterminatedLiteral(t *testing.T) {
	tr := New(DefaultPairs, DefaultQuotes)
	tr.Feed(`say "oops`)
	if tr.Balanced() {
		t.Error("unterminated literal should block completion")
	}
	if !tr.InLiteral() {
		t.Error("InLiteral should report the open quote")
	}

	// The literal continues onto the next line until the same quote.
	tr.Feed(`still 'inert' here"`)
	if !tr.Balanced() {
		t.Error("closing quote on a later line should balance")
	}
}

func TestDifferentQuoteInsideLiteral(t *testing.T) {
	tr := New(DefaultPairs, DefaultQuotes)
	tr.Feed(`"it's"`)
	if !tr.Balanced() {
		t.Error("single quote inside a double-quoted literal should be inert")
	}
}

func TestReset(t *testing.T) {
	tr := New(DefaultPairs, DefaultQuotes)
	tr.Feed(`((("`)
	tr.Reset()
	if !tr.Balanced() {
		t.Error("Reset should clear counts and literal flag")
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{"plain", []string{"hello"}, true},
		{"open paren", []string{"foo("}, false},
		{"closed across lines", []string{"foo(", ")"}, true},
		{"open literal", []string{`"ab`}, false},
		{"literal closed next line", []string{`"ab`, `cd"`}, true},
		{"empty", []string{""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Complete(tt.lines, DefaultPairs, DefaultQuotes); got != tt.want {
				t.Errorf("Complete(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}
