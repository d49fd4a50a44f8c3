// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram_test

import (
	"testing"

	"github.com/creachadair/jgram"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"кошка", `"кошка"`},
	}
	for _, test := range tests {
		got := string(jgram.Quote(test.input))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},               // missing quotes
		{`"missing quote`, ``, true}, // missing quotes
		{`missing quote"`, ``, true}, // missing quotes
		{`""`, ``, false},
		{`"ok go"`, "ok go", false},
		{`"abc\ndef"`, "abc\ndef", false},
		{`"\tabc\n"`, "\tabc\n", false},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},
		{`"a \u0026 b"`, "a & b", false}, // short Unicode escape
		{`"\u"`, ``, true},   // incomplete Unicode escape
		{`"\u00"`, ``, true}, // incomplete Unicode escape
		{`"\u00x9"`, ``, true}, // invalid hex digit
		{`"\q"`, ``, true},     // unknown escape
		{`"a\"b"`, `a"b`, false},
		{`"a\\b\\cd"`, `a\b\cd`, false},
		{`"\ud83d\ude03"`, "\U0001f603", false}, // surrogate pair
		{`"\ud800"`, "\ufffd", false},                // lone surrogate half
		{`"\ud800x"`, "\ufffd"+"x", false},           // lone surrogate half
	}

	for _, test := range tests {
		got, err := jgram.Unquote([]byte(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			}
			continue
		}
		if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if s := string(got); s != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, s, test.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"tabs\tand\nnewlines",
		"quotes \" and \\ slashes",
		"emoji \U0001f603 and accents é",
		"control \x01\x02\x1f chars",
	}
	for _, input := range inputs {
		q := jgram.Quote(input)
		dec, err := jgram.Unquote(q)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", q, err)
		} else if got := string(dec); got != input {
			t.Errorf("Round trip %#q: got %#q", input, got)
		}

		// A quoted string is itself a valid JSON value.
		if !jgram.IsValid(string(q)) {
			t.Errorf("IsValid(%#q): got false, want true", q)
		}
	}
}
