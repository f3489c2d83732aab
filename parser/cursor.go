// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/protoschema/ast"
	"github.com/bufbuild/protoschema/reporter"
)

// cursor scans characters out of a source buffer, keeping track of the
// current line so that errors can be reported with a position.
type cursor struct {
	filename string
	data     []byte

	// data[pos] is the next byte to be read.
	pos int
	// Zero-based number of the current line.
	line int
	// Offset of the first byte of the current line.
	lineStart int
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.data)
}

// position returns the source position of the next byte to be read.
func (c *cursor) position() ast.SourcePos {
	return ast.SourcePos{
		Filename: c.filename,
		Offset:   c.pos,
		Line:     c.line + 1,
		Col:      c.pos - c.lineStart + 1,
	}
}

// advance consumes and returns the next byte, updating line tracking.
func (c *cursor) advance() byte {
	ch := c.data[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.lineStart = c.pos
	}
	return ch
}

// errorAt returns a syntax error of the given kind at pos. If format is not
// empty, it is appended to the kind's message.
func (c *cursor) errorAt(pos ast.SourcePos, kind error, format string, args ...any) error {
	if format == "" {
		return reporter.Errorf(pos, "syntax error: %w", kind)
	}
	return reporter.Errorf(pos, "syntax error: %w%s", kind, fmt.Sprintf(format, args...))
}

// errorf returns a syntax error of the given kind at the current position.
func (c *cursor) errorf(kind error, format string, args ...any) error {
	return c.errorAt(c.position(), kind, format, args...)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isWordChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-' || ch == '.'
}

// skipSpace skips whitespace, but not comments.
func (c *cursor) skipSpace() {
	for !c.atEOF() && isSpace(c.data[c.pos]) {
		c.advance()
	}
}

// skipSpaceAndComments skips whitespace and comments, discarding the
// comments. When it returns without error, either the cursor is at EOF or the
// next byte is significant.
func (c *cursor) skipSpaceAndComments() error {
	for {
		c.skipSpace()
		if c.atEOF() || c.data[c.pos] != '/' {
			return nil
		}
		if _, err := c.readComment(); err != nil {
			return err
		}
	}
}

// peekChar returns the next significant byte without consuming it.
func (c *cursor) peekChar() (byte, error) {
	if err := c.skipSpaceAndComments(); err != nil {
		return 0, err
	}
	if c.atEOF() {
		return 0, c.errorf(ErrUnexpectedEOF, "")
	}
	return c.data[c.pos], nil
}

// readChar consumes and returns the next significant byte.
func (c *cursor) readChar() (byte, error) {
	ch, err := c.peekChar()
	if err != nil {
		return 0, err
	}
	c.pos++
	return ch, nil
}

// expect consumes the next significant byte, which must be want.
func (c *cursor) expect(want byte) error {
	ch, err := c.peekChar()
	if err != nil {
		return err
	}
	if ch != want {
		if want == ';' {
			return c.errorf(ErrExpectedSemicolon, ", found %q", rune(ch))
		}
		return c.errorf(ErrExpectedPunctuation, " '%c', found %q", want, rune(ch))
	}
	c.pos++
	return nil
}

// readWord reads a non-empty run of word characters. Leading whitespace is
// skipped, but comments are not.
func (c *cursor) readWord() (string, error) {
	c.skipSpace()
	start := c.pos
	for !c.atEOF() && isWordChar(c.data[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		if c.atEOF() {
			return "", c.errorf(ErrExpectedWord, ", found end of file")
		}
		return "", c.errorf(ErrExpectedWord, ", found %q", rune(c.data[c.pos]))
	}
	return string(c.data[start:c.pos]), nil
}

// readInt reads a word and parses it as a base-10 integer.
func (c *cursor) readInt() (int, error) {
	c.skipSpace()
	pos := c.position()
	word, err := c.readWord()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		return 0, c.errorAt(pos, ErrInvalidInteger, " but was %q", word)
	}
	return int(v), nil
}

// readString reads a quoted string or, if the next significant byte is not a
// quote, a word.
func (c *cursor) readString() (string, error) {
	ch, err := c.peekChar()
	if err != nil {
		return "", err
	}
	if ch == '"' {
		return c.readQuotedString()
	}
	return c.readWord()
}

// readQuotedString reads a double-quoted string. The cursor must be at the
// opening quote. A backslash causes the byte after it to be taken literally;
// no other escape processing is done.
func (c *cursor) readQuotedString() (string, error) {
	c.pos++ // opening quote
	var sb strings.Builder
	for !c.atEOF() {
		ch := c.advance()
		if ch == '"' {
			return sb.String(), nil
		}
		if ch == '\\' {
			if c.atEOF() {
				break
			}
			ch = c.advance()
		}
		sb.WriteByte(ch)
	}
	return "", c.errorf(ErrUnterminatedString, "")
}
