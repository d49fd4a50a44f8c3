// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import (
	"fmt"
	"strings"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineCol converts a byte offset in text into a line and column position.
// An offset past the end of text reports the position just after the input.
func lineCol(text string, offset int) LineCol {
	if offset > len(text) {
		offset = len(text)
	}
	pre := text[:offset]
	line := strings.Count(pre, "\n") + 1
	col := offset
	if i := strings.LastIndexByte(pre, '\n'); i >= 0 {
		col = offset - i - 1
	}
	return LineCol{Line: line, Column: col}
}
