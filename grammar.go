// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jgram

import "strings"

// A rule names a production of the JSON grammar.
type rule byte

// The alternatives of the value production, in the order they are tried.
const (
	ruleObject rule = iota
	ruleArray
	ruleString
	ruleNumber
	ruleTrue
	ruleFalse
	ruleNull

	numRules
)

var ruleName = [numRules]string{
	ruleObject: "object",
	ruleArray:  "array",
	ruleString: "string",
	ruleNumber: "number",
	ruleTrue:   "true",
	ruleFalse:  "false",
	ruleNull:   "null",
}

func (r rule) String() string {
	if int(r) >= len(ruleName) {
		return "invalid"
	}
	return ruleName[r]
}

// valueRule is the recognizer for each alternative of the value production.
// Alternatives are tried in index order (ordered choice): the first rule to
// succeed wins, and a failed rule must not affect its successors beyond the
// failure bookkeeping.
var valueRule [numRules]func(*matcher) bool

func init() {
	valueRule = [numRules]func(*matcher) bool{
		ruleObject: (*matcher).object,
		ruleArray:  (*matcher).array,
		ruleString: (*matcher).stringLit,
		ruleNumber: (*matcher).number,
		ruleTrue:   (*matcher).litTrue,
		ruleFalse:  (*matcher).litFalse,
		ruleNull:   (*matcher).litNull,
	}
}

// A matcher holds the state of a single attempt to match the grammar against
// an input string. Each call to Parse or IsValid constructs a fresh matcher,
// so the engine is reentrant without synchronization.
type matcher struct {
	in   string
	pos  int // current offset, 0-based
	opts Parser

	depth int  // current container nesting depth
	deep  bool // nesting limit was exceeded

	// Failure bookkeeping: the furthest offset at which any rule failed, and
	// the labels of what was expected there. Backtracking produces many
	// shallow failures; the deepest one is the informative diagnostic.
	failPos int
	want    []string
}

// fail records that label was expected at pos. Failures before the current
// high-water mark are discarded; a failure past it resets the expectation
// set.
func (m *matcher) fail(pos int, label string) {
	if pos < m.failPos {
		return
	}
	if pos > m.failPos {
		m.failPos = pos
		m.want = m.want[:0]
	}
	for _, w := range m.want {
		if w == label {
			return
		}
	}
	m.want = append(m.want, label)
}

// json matches the document production: optional whitespace, a single value,
// optional whitespace, end of input. It reports which alternative of the
// value production matched at the root.
func (m *matcher) json() (rule, bool) {
	m.space()
	root, ok := m.value()
	if !ok {
		return 0, false
	}
	m.space()
	if m.pos != len(m.in) {
		m.fail(m.pos, "end of input")
		return 0, false
	}
	return root, true
}

// value matches a single JSON value by ordered choice among the alternatives
// of valueRule. A failed alternative restores the start position before the
// next is tried.
func (m *matcher) value() (rule, bool) {
	start := m.pos
	for r, match := range valueRule {
		if match(m) {
			return rule(r), true
		} else if m.deep {
			return 0, false
		}
		m.pos = start
	}
	m.fail(start, "value")
	return 0, false
}

// object matches '{' [ member (',' member)* ] '}'. A comma must be followed
// by another member unless trailing commas are enabled.
func (m *matcher) object() bool {
	if !m.eat('{') {
		return false
	}
	if !m.enter() {
		return false
	}
	defer m.leave()
	m.space()
	open := m.pos
	if m.eat('}') {
		return true
	}
	if !m.member() {
		m.fail(open, `"}"`)
		return false
	}
	for {
		m.space()
		if m.eat('}') {
			return true
		}
		if !m.eat(',') {
			m.fail(m.pos, `","`)
			m.fail(m.pos, `"}"`)
			return false
		}
		m.space()
		if m.opts.AllowTrailingCommas && m.eat('}') {
			return true
		}
		if !m.member() {
			return false
		}
	}
}

// member matches a single object member: a string key, a colon, and a value.
func (m *matcher) member() bool {
	start := m.pos
	if !m.stringLit() {
		m.fail(start, "string")
		return false
	}
	m.space()
	if !m.eat(':') {
		m.fail(m.pos, `":"`)
		return false
	}
	m.space()
	_, ok := m.value()
	return ok
}

// array matches '[' [ value (',' value)* ] ']', rejecting trailing commas
// unless they are enabled.
func (m *matcher) array() bool {
	if !m.eat('[') {
		return false
	}
	if !m.enter() {
		return false
	}
	defer m.leave()
	m.space()
	open := m.pos
	if m.eat(']') {
		return true
	}
	if _, ok := m.value(); !ok {
		m.fail(open, `"]"`)
		return false
	}
	for {
		m.space()
		if m.eat(']') {
			return true
		}
		if !m.eat(',') {
			m.fail(m.pos, `","`)
			m.fail(m.pos, `"]"`)
			return false
		}
		m.space()
		if m.opts.AllowTrailingCommas && m.eat(']') {
			return true
		}
		if _, ok := m.value(); !ok {
			return false
		}
	}
}

// stringLit matches a quoted string literal, checking escape sequences and
// rejecting unescaped control characters. The text is validated in place,
// not decoded; see Unquote for decoding.
func (m *matcher) stringLit() bool {
	if !m.eat('"') {
		return false
	}
	for m.pos < len(m.in) {
		switch ch := m.in[m.pos]; {
		case ch == '"':
			m.pos++
			return true
		case ch == '\\':
			m.pos++
			if !m.escape() {
				return false
			}
		case ch < 0x20:
			m.fail(m.pos, "string character")
			return false
		default:
			m.pos++
		}
	}
	m.fail(len(m.in), "closing quote")
	return false
}

// escape matches the remainder of an escape sequence, after the backslash.
func (m *matcher) escape() bool {
	if m.pos >= len(m.in) {
		m.fail(len(m.in), "escape character")
		return false
	}
	switch m.in[m.pos] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		m.pos++
		return true
	case 'u':
		m.pos++
		for i := 0; i < 4; i++ {
			if m.pos >= len(m.in) || !isHexDigit(m.in[m.pos]) {
				m.fail(m.pos, "hex digit")
				return false
			}
			m.pos++
		}
		return true
	}
	m.fail(m.pos, "escape character")
	return false
}

// number matches a numeric literal: an optional sign, an integer part with
// no redundant leading zero, an optional fraction, and an optional exponent.
// A redundant leading zero ends the match after the zero, so that the
// leftover digits fail in the enclosing rule (e.g. "01" matches "0" and the
// document rule rejects the trailing "1").
func (m *matcher) number() bool {
	start := m.pos
	m.eat('-')
	if !m.eat('0') && !m.digits() {
		if m.pos > start {
			m.fail(m.pos, "digit") // a bare sign
		}
		return false
	}
	if m.eat('.') {
		if !m.digits() {
			m.fail(m.pos, "digit")
			return false
		}
	}
	if m.pos < len(m.in) && (m.in[m.pos] == 'e' || m.in[m.pos] == 'E') {
		m.pos++
		if m.pos < len(m.in) && (m.in[m.pos] == '+' || m.in[m.pos] == '-') {
			m.pos++
		}
		if !m.digits() {
			m.fail(m.pos, "exponent digit")
			return false
		}
	}
	return true
}

// digits consumes a run of decimal digits and reports whether there was at
// least one.
func (m *matcher) digits() bool {
	n := 0
	for m.pos < len(m.in) && isDigit(m.in[m.pos]) {
		m.pos++
		n++
	}
	return n > 0
}

func (m *matcher) litTrue() bool  { return m.literal("true") }
func (m *matcher) litFalse() bool { return m.literal("false") }
func (m *matcher) litNull() bool  { return m.literal("null") }

// literal matches the given constant exactly, provided it is not followed by
// a name continuation character (so "truee" does not partially match).
func (m *matcher) literal(text string) bool {
	if !strings.HasPrefix(m.in[m.pos:], text) {
		return false
	}
	end := m.pos + len(text)
	if end < len(m.in) && isNameByte(m.in[end]) {
		return false
	}
	m.pos = end
	return true
}

// enter records entry into a container rule (object or array), failing when
// another level of nesting would exceed the depth limit. Scalar values do
// not contribute to nesting depth.
func (m *matcher) enter() bool {
	if m.depth >= m.opts.maxDepth() {
		m.deep = true
		return false
	}
	m.depth++
	return true
}

func (m *matcher) leave() { m.depth-- }

// eat consumes ch if it is the next byte of input.
func (m *matcher) eat(ch byte) bool {
	if m.pos < len(m.in) && m.in[m.pos] == ch {
		m.pos++
		return true
	}
	return false
}

// space consumes insignificant whitespace, and comments if they are enabled.
func (m *matcher) space() {
	for m.pos < len(m.in) {
		switch m.in[m.pos] {
		case ' ', '\t', '\r', '\n':
			m.pos++
		case '/':
			if !m.opts.AllowComments || !m.comment() {
				return
			}
		default:
			return
		}
	}
}

// comment consumes a line comment (// ... to LF or end of input) or a block
// comment (/* ... */). An unterminated block comment fails.
// Precondition: the input at the current position begins with '/'.
func (m *matcher) comment() bool {
	rest := m.in[m.pos:]
	switch {
	case strings.HasPrefix(rest, "//"):
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			m.pos += i + 1
		} else {
			m.pos = len(m.in)
		}
		return true
	case strings.HasPrefix(rest, "/*"):
		if i := strings.Index(rest[2:], "*/"); i >= 0 {
			m.pos += i + 4
			return true
		}
		m.fail(len(m.in), `"*/"`)
		return false
	}
	return false
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// isNameByte reports whether ch may continue an identifier-like token.
func isNameByte(ch byte) bool {
	return ch == '_' || isDigit(ch) ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// joinLabels makes a human-readable summary of a set of expectation labels.
func joinLabels(want []string) string {
	if len(want) == 1 {
		return want[0]
	}
	last := len(want) - 1
	return strings.Join(want[:last], ", ") + " or " + want[last]
}
