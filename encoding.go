// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"errors"

	"github.com/creachadair/jgram/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string literal. The contents are escaped and
// double quotation marks are added.
func Quote(src string) []byte { return escape.Quote(mem.S(src)) }

// Unquote decodes a JSON string literal. The double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents. Surrogate pairs are combined.
//
// Unquote is strict: an invalid or incomplete escape sequence is an error,
// matching what the grammar accepts. A string validated by Parse or IsValid
// always unquotes without error.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}
