package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func toks(s string) []string {
	raw := Tokenize(s)
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = string(t)
	}
	return out
}

func TestTokenizeReconstructsInput(t *testing.T) {
	inputs := []string{
		"Sat Oct 11 17:13:46 UTC 2003",
		"10/11/03",
		"1990-01-01T23:59:59.5",
		"19990101T235959.5",
		"3rd of March, 2024 4pm",
		"12,34",
		"12.3.4",
	}
	for _, s := range inputs {
		var rebuilt string
		for _, tok := range Tokenize(s) {
			rebuilt += string(tok)
		}
		if s == "12,34" {
			assert.Equal(t, "12.34", rebuilt, "comma normalized to decimal point")
			continue
		}
		assert.Equal(t, s, rebuilt, "tokenizing %q should reconstruct losslessly", s)
	}
}

func TestTokenizeNoMixedClassToken(t *testing.T) {
	for _, tok := range Tokenize("Sat Oct 11 17:13:46 UTC 2003, 3rd of March") {
		if tok.IsSpace() || len(tok) == 1 && !tok.AllDigits() && !tok.AllLetters() {
			continue
		}
		mixed := false
		hasLetter, hasDigit := false, false
		for _, r := range tok {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
				hasLetter = true
			}
			if r >= '0' && r <= '9' {
				hasDigit = true
			}
		}
		if hasLetter && hasDigit {
			mixed = true
		}
		assert.False(t, mixed, "token %q mixes letters and digits", tok)
	}
}

func TestCommaAsDecimalSeparatorNormalized(t *testing.T) {
	got := toks("12,34")
	assert.Equal(t, []string{"12.34"}, got)
}

func TestTrailingCommaSplits(t *testing.T) {
	got := toks("12,")
	assert.Equal(t, []string{"12", "."}, got)
}

func TestMultipleDotsSplit(t *testing.T) {
	got := toks("12.3.4")
	assert.Equal(t, []string{"12", ".", "3", ".", "4"}, got)
}

func TestOrdinalSuffixSplits(t *testing.T) {
	got := toks("3rd")
	assert.Equal(t, []string{"3", "rd"}, got)
}

func TestDecimalSecondsStaysIntact(t *testing.T) {
	got := toks("59.5")
	assert.Equal(t, []string{"59.5"}, got)
}

func TestISOCompactTimestamp(t *testing.T) {
	got := toks("19990101T235959.5")
	assert.Equal(t, []string{"19990101", "T", "235959.5"}, got)
}

func TestPunctuationEmittedSingly(t *testing.T) {
	got := toks("10/11/03")
	assert.Equal(t, []string{"10", "/", "11", "/", "03"}, got)
}

func TestWhitespaceCollapsedToSingleSpaceTokens(t *testing.T) {
	got := toks("a  b")
	assert.Equal(t, []string{"a", " ", " ", "b"}, got)
}

func TestResetAllowsRetokenize(t *testing.T) {
	l := New("Oct 11")
	first, _ := l.Next()
	assert.Equal(t, Token("Oct"), first)
	l.Reset()
	again, _ := l.Next()
	assert.Equal(t, Token("Oct"), again)
}
