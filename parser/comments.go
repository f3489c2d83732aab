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

import "strings"

// readDocumentation skips whitespace and returns the text of all comments
// found before the next significant byte. Multiple comments are joined with
// newlines. By convention, comments before a declaration document that
// declaration.
func (c *cursor) readDocumentation() (string, error) {
	var docs []string
	for {
		c.skipSpace()
		if c.atEOF() || c.data[c.pos] != '/' {
			return strings.Join(docs, "\n"), nil
		}
		comment, err := c.readComment()
		if err != nil {
			return "", err
		}
		docs = append(docs, comment)
	}
}

// readComment reads a line or block comment and returns its text. The cursor
// must be at the leading slash.
func (c *cursor) readComment() (string, error) {
	slash := c.position()
	c.pos++
	if c.atEOF() {
		return "", c.errorAt(slash, ErrUnexpectedCharacter, " '/'")
	}

	switch c.data[c.pos] {
	case '*':
		c.pos++
		start := c.pos
		for !c.atEOF() {
			if c.data[c.pos] == '*' && c.pos+1 < len(c.data) && c.data[c.pos+1] == '/' {
				body := string(c.data[start:c.pos])
				c.pos += 2
				return blockCommentText(body), nil
			}
			c.advance()
		}
		return "", c.errorf(ErrUnterminatedComment, "")

	case '/':
		c.pos++
		start := c.pos
		for !c.atEOF() && c.data[c.pos] != '\n' {
			c.pos++
		}
		body := string(c.data[start:c.pos])
		if !c.atEOF() {
			c.advance()
		}
		return strings.TrimSpace(body), nil

	default:
		return "", c.errorAt(slash, ErrUnexpectedCharacter, " '/'")
	}
}

// blockCommentText strips the decoration from the body of a block comment:
// surrounding whitespace, a leading '*' on each line, and blank lines at the
// start and end.
func blockCommentText(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		lines[i] = strings.TrimSpace(line)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
