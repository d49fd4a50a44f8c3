// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"errors"
	"fmt"
	"strings"
)

// RootType is the structural category of the root value of a document,
// either an object or an array.
type RootType byte

// Constants defining the valid RootType values.
const (
	Object RootType = 1 + iota // root value is an object: { ... }
	Array                      // root value is an array: [ ... ]
)

func (r RootType) String() string {
	switch r {
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return "invalid"
}

// A Document is a validated JSON document. A Document is returned only by a
// successful Parse, and its root value is always an object or an array.
type Document struct {
	Content string   // the document text, with surrounding whitespace removed
	Root    RootType // the shape of the root value
}

// ErrEmptyInput is reported by Parse when its input is empty or contains
// only whitespace. The check precedes any grammar matching.
var ErrEmptyInput = errors.New("empty JSON input")

// ErrTooDeep is reported by Parse when the nesting depth of the input
// exceeds the parser's limit.
var ErrTooDeep = errors.New("nesting depth exceeds limit")

// defaultMaxDepth is the nesting limit applied when MaxDepth is zero.
var defaultMaxDepth = 1000

// A SyntaxError reports that the input does not conform to the JSON
// grammar. Its offset marks the furthest position the parser reached before
// failing, across all the grammar alternatives it attempted.
type SyntaxError struct {
	Offset   int     // byte offset in the trimmed input, 0-based
	Location LineCol // line and column of Offset
	Message  string  // describes what was expected at Offset
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// A RootTypeError reports that the input is syntactically valid JSON whose
// root is a primitive value, which the document policy disallows.
type RootTypeError struct {
	Rule string // the name of the grammar rule the root value matched
}

// Error satisfies the error interface.
func (e *RootTypeError) Error() string {
	return fmt.Sprintf("unexpected root type %s: a document root must be an object or array", e.Rule)
}

// A Parser carries the settings for parsing JSON documents. The zero value
// is ready for use and applies the strict JSON grammar. A Parser holds no
// state between calls, so a single value may be used concurrently by
// multiple goroutines.
type Parser struct {
	// MaxDepth limits how deeply objects and arrays may nest before parsing
	// fails with ErrTooDeep. If MaxDepth <= 0, a default limit of 1000
	// applies.
	MaxDepth int

	// AllowComments accepts line ("// ...") and block ("/* ... */") comments
	// wherever whitespace is permitted. Comments are a non-standard
	// extension of the JSON spec.
	AllowComments bool

	// AllowTrailingCommas accepts a comma directly before the closing
	// bracket of an object or array. Trailing commas are a non-standard
	// extension of the JSON spec.
	AllowTrailingCommas bool
}

func (p Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return defaultMaxDepth
}

// Parse validates input against the JSON grammar and returns a Document
// recording the shape of its root value.
//
// If input is empty or all whitespace, Parse reports ErrEmptyInput. If
// input violates the grammar, Parse reports an error of concrete type
// [*SyntaxError]. If input is grammar-valid but its root value is a
// primitive rather than an object or array, Parse reports an error of
// concrete type [*RootTypeError]. If nesting exceeds the depth limit, Parse
// reports ErrTooDeep.
func (p Parser) Parse(input string) (*Document, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyInput
	}
	m := &matcher{in: text, opts: p}
	root, ok := m.json()
	if !ok {
		if m.deep {
			return nil, ErrTooDeep
		}
		return nil, m.syntaxError()
	}
	switch root {
	case ruleObject:
		return &Document{Content: text, Root: Object}, nil
	case ruleArray:
		return &Document{Content: text, Root: Array}, nil
	}
	return nil, &RootTypeError{Rule: root.String()}
}

// IsValid reports whether input conforms to the JSON grammar. Empty or
// all-whitespace input is not valid.
//
// Unlike Parse, IsValid does not restrict the root value: a bare primitive
// such as "true" or "42" is grammar-valid even though Parse rejects it as a
// document. IsValid answers the strictly broader question.
func (p Parser) IsValid(input string) bool {
	text := strings.TrimSpace(input)
	if text == "" {
		return false
	}
	m := &matcher{in: text, opts: p}
	_, ok := m.json()
	return ok
}

// Parse validates input with a zero Parser. See [Parser.Parse].
func Parse(input string) (*Document, error) { return Parser{}.Parse(input) }

// IsValid reports whether input conforms to the JSON grammar, using a zero
// Parser. See [Parser.IsValid].
func IsValid(input string) bool { return Parser{}.IsValid(input) }

// syntaxError converts the matcher's furthest failure into a SyntaxError.
func (m *matcher) syntaxError() *SyntaxError {
	msg := "malformed input"
	if len(m.want) > 0 {
		msg = "expected " + joinLabels(m.want)
	}
	return &SyntaxError{
		Offset:   m.failPos,
		Location: lineCol(m.in, m.failPos),
		Message:  msg,
	}
}
