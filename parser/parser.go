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
	"bytes"
	"io"

	"github.com/bufbuild/protoschema/ast"
	"github.com/bufbuild/protoschema/reporter"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Parse reads all of r and parses it as schema source. The given filename is
// used only to identify the file in the result and in error positions.
//
// Syntax errors are passed to handler. Parsing stops at the first one; if the
// handler's reporter returns nil for it, reporter.ErrInvalidSource is
// returned. An error reading from r is returned as is.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.File, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(filename, contents, handler)
}

// ParseBytes parses the given schema source using a default error handler.
func ParseBytes(filename string, data []byte) (*ast.File, error) {
	return parse(filename, data, reporter.NewHandler(nil))
}

func parse(filename string, data []byte, handler *reporter.Handler) (*ast.File, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	// if file has UTF8 byte order marker preface, consume it
	data = bytes.TrimPrefix(data, utf8Bom)

	p := &parser{
		cursor:  cursor{filename: filename, data: data},
		handler: handler,
	}
	file, err := p.readFile()
	if err != nil {
		if err := handler.HandleError(err); err != nil {
			return nil, err
		}
		// The reporter swallowed the error.
		return nil, handler.Error()
	}
	return file, nil
}

// parser holds the state of a single parse. It must not be reused.
type parser struct {
	cursor
	handler *reporter.Handler

	pkg          string
	hasPkg       bool
	dependencies []string
	// Includes types that were declared inside of other messages.
	messages []*ast.MessageType
	enums    []*ast.EnumType
}

func (p *parser) readFile() (*ast.File, error) {
	for {
		doc, err := p.readDocumentation()
		if err != nil {
			return nil, err
		}
		if p.atEOF() {
			return ast.NewFile(p.filename, p.pkg, p.dependencies, p.messages, p.enums), nil
		}
		if _, err := p.readDeclaration(doc, false); err != nil {
			return nil, err
		}
	}
}
