// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles encoding and decoding of JSON string literals.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var ctrlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal. The contents are escaped and
// enclosing double quotation marks are added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		if r < utf8.RuneSelf {
			switch {
			case r == '\\' || r == '"':
				buf = append(buf, '\\', byte(r))
			case r >= ' ':
				buf = append(buf, byte(r))
			case ctrlEsc[r] != 0:
				buf = append(buf, '\\', ctrlEsc[r])
			default:
				buf = appendHexRune(buf, r)
			}
			continue
		}
		switch r {
		case '\ufffd', '\u2028', '\u2029':
			// replacement rune, line and paragraph separators
			buf = appendHexRune(buf, r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}

func appendHexRune(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
}

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and
// surrogate pairs are combined. Invalid and incomplete escape sequences are
// reported as errors.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		ch := src.At(0)
		src = src.SliceFrom(1)
		switch ch {
		case '"', '\\', '/':
			dec = append(dec, ch)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeHexRune(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		default:
			return nil, fmt.Errorf("invalid character %q after escape", ch)
		}
	}
}

// decodeHexRune decodes the rune denoted by the "\uXXXX" escape whose hex
// digits begin src, combining a surrogate pair into its supplementary rune
// when a second escape follows the first.
func decodeHexRune(src mem.RO) (rune, mem.RO, error) {
	v, err := parseHex4(src)
	if err != nil {
		return 0, src, err
	}
	src = src.SliceFrom(4)
	if !utf16.IsSurrogate(v) {
		return v, src, nil
	}

	// A high surrogate may be followed by a second escape for the low half.
	// A surrogate half that does not combine stands as itself; the caller's
	// AppendRune renders it as the replacement rune.
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		w, err := parseHex4(src.SliceFrom(2))
		if err == nil {
			if r := utf16.DecodeRune(v, w); r != utf8.RuneError {
				return r, src.SliceFrom(6), nil
			}
		}
	}
	return v, src, nil
}

// parseHex4 decodes exactly four hexadecimal digits from the front of data.
func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
