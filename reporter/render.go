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

package reporter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// Renderer renders errors along with the source line they point to.
type Renderer struct {
	// If set, applied to the error message line.
	Message func(string) string
	// If set, applied to the caret that marks the error column.
	Caret func(string) string
}

// Render is a shorthand for rendering with a zero Renderer.
func Render(w io.Writer, source []byte, err ErrorWithPos) error {
	return Renderer{}.Render(w, source, err)
}

// Render writes err to w. If source is the text of the file the error is
// about and the error's position falls inside of it, the offending line is
// printed beneath the message, with a caret under the error column:
//
//	foo.proto:3:10: syntax error: expected ';'
//	   3 | message M {
//	     |          ^
func (r Renderer) Render(w io.Writer, source []byte, err ErrorWithPos) error {
	var out strings.Builder
	out.WriteString(apply(r.Message, err.Error()))
	out.WriteByte('\n')

	pos := err.GetPosition()
	line, ok := sourceLine(source, pos.Line)
	if ok && pos.Col > 0 {
		col := pos.Col - 1
		if col > len(line) {
			col = len(line)
		}
		lineNo := strconv.Itoa(pos.Line)
		gutter := strings.Repeat(" ", len(lineNo))

		var text strings.Builder
		stringWidth(0, line, &text)
		caretAt := stringWidth(0, line[:col], nil)

		fmt.Fprintf(&out, " %s | %s\n", lineNo, strings.TrimRight(text.String(), " "))
		fmt.Fprintf(&out, " %s | %s%s\n", gutter, strings.Repeat(" ", caretAt), apply(r.Caret, "^"))
	}

	_, werr := io.WriteString(w, out.String())
	return werr
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}

// sourceLine returns the given 1-based line of source, without its line
// terminator.
func sourceLine(source []byte, line int) (string, bool) {
	if line <= 0 {
		return "", false
	}
	for i := 1; i < line; i++ {
		nl := bytes.IndexByte(source, '\n')
		if nl < 0 {
			return "", false
		}
		source = source[nl+1:]
	}
	if nl := bytes.IndexByte(source, '\n'); nl >= 0 {
		source = source[:nl]
	}
	return strings.TrimSuffix(string(source), "\r"), true
}

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops. If out is not nil, the text is written to
// it with tabs expanded into spaces.
func stringWidth(column int, text string, out *strings.Builder) int {
	// We can't just use StringWidth, because that doesn't respect tabstops
	// correctly.
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		next := text
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if out != nil {
			out.WriteString(next)
		}

		if haveTab {
			tab := TabstopWidth - (column % TabstopWidth)
			column += tab
			if out != nil {
				out.WriteString(strings.Repeat(" ", tab))
			}
		}
	}
	return column
}
