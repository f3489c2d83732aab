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
	"strings"

	"github.com/bufbuild/protoschema/ast"
)

type declKind int

const (
	declNone declKind = iota
	declField
)

// declResult is the outcome of parsing one declaration. Only declarations
// of kind declField carry a value; all others are applied to the parser's
// state as they are read.
type declResult struct {
	kind  declKind
	field *ast.Field
}

// readDeclaration reads the declaration that starts at the cursor. If nested
// is true, the declaration is in the body of a message.
func (p *parser) readDeclaration(doc string, nested bool) (declResult, error) {
	start := p.position()
	word, err := p.readWord()
	if err != nil {
		return declResult{}, err
	}

	kw := lookupKeyword(word)
	switch kw {
	case keywordMessage:
		if nested {
			p.handler.HandleWarning(start, ErrNestedTypeFlattened)
		}
		return declResult{}, p.readMessage(doc)

	case keywordEnum:
		if nested {
			p.handler.HandleWarning(start, ErrNestedTypeFlattened)
		}
		return declResult{}, p.readEnum(doc)

	case keywordPackage:
		if nested {
			return declResult{}, p.errorAt(start, ErrInvalidContext, ": nested package")
		}
		if p.hasPkg {
			return declResult{}, p.errorAt(start, ErrDuplicatePackage, "")
		}
		name, err := p.readWord()
		if err != nil {
			return declResult{}, err
		}
		p.pkg, p.hasPkg = name, true
		return declResult{}, p.expect(';')

	case keywordOption:
		if nested {
			return declResult{}, p.errorAt(start, ErrInvalidContext, ": nested option")
		}
		if _, err := p.readWord(); err != nil {
			return declResult{}, err
		}
		if err := p.expect('='); err != nil {
			return declResult{}, err
		}
		// The value is discarded.
		if _, err := p.readString(); err != nil {
			return declResult{}, err
		}
		return declResult{}, p.expect(';')

	case keywordImport:
		if nested {
			return declResult{}, p.errorAt(start, ErrInvalidContext, ": nested import")
		}
		path, err := p.readString()
		if err != nil {
			return declResult{}, err
		}
		p.dependencies = append(p.dependencies, path)
		return declResult{}, p.expect(';')

	case keywordRequired, keywordOptional, keywordRepeated:
		if !nested {
			return declResult{}, p.errorAt(start, ErrInvalidContext, ": fields must be nested")
		}
		label, _ := kw.label()
		field, err := p.readField(doc, label)
		if err != nil {
			return declResult{}, err
		}
		return declResult{kind: declField, field: field}, nil

	case keywordExtensions:
		if !nested {
			return declResult{}, p.errorAt(start, ErrInvalidContext, ": extensions must be nested")
		}
		// Range start, the literal "to", and range end. The range itself
		// is not retained.
		for range 3 {
			if _, err := p.readWord(); err != nil {
				return declResult{}, err
			}
		}
		return declResult{}, p.expect(';')

	default:
		return declResult{}, p.errorAt(start, ErrUnknownDeclaration, ": %s", word)
	}
}

// readMessage reads a message declaration after the "message" keyword.
func (p *parser) readMessage(doc string) error {
	name, err := p.readWord()
	if err != nil {
		return err
	}
	if err := p.expect('{'); err != nil {
		return err
	}

	var fields []*ast.Field
	for {
		fieldDoc, err := p.readDocumentation()
		if err != nil {
			return err
		}
		ch, err := p.peekChar()
		if err != nil {
			return err
		}
		if ch == '}' {
			p.pos++
			break
		}

		res, err := p.readDeclaration(fieldDoc, true)
		if err != nil {
			return err
		}
		switch res.kind {
		case declField:
			fields = append(fields, res.field)
		case declNone:
		}
	}

	p.messages = append(p.messages, ast.NewMessageType(name, doc, fields))
	return nil
}

// readEnum reads an enum declaration after the "enum" keyword.
func (p *parser) readEnum(doc string) error {
	name, err := p.readWord()
	if err != nil {
		return err
	}
	if err := p.expect('{'); err != nil {
		return err
	}

	var values []*ast.EnumValue
	for {
		valueDoc, err := p.readDocumentation()
		if err != nil {
			return err
		}
		ch, err := p.peekChar()
		if err != nil {
			return err
		}
		if ch == '}' {
			p.pos++
			break
		}

		value, err := p.readEnumValue(valueDoc)
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	p.enums = append(p.enums, ast.NewEnumType(name, doc, values))
	return nil
}

// readEnumValue reads NAME '=' INT ';'.
func (p *parser) readEnumValue(doc string) (*ast.EnumValue, error) {
	name, err := p.readWord()
	if err != nil {
		return nil, err
	}
	if err := p.expect('='); err != nil {
		return nil, err
	}
	tag, err := p.readInt()
	if err != nil {
		return nil, err
	}
	if err := p.expect(';'); err != nil {
		return nil, err
	}
	return ast.NewEnumValue(name, tag, doc), nil
}

// readField reads a field declaration after its label.
func (p *parser) readField(doc string, label ast.Label) (*ast.Field, error) {
	typeName, err := p.readWord()
	if err != nil {
		return nil, err
	}
	name, err := p.readWord()
	if err != nil {
		return nil, err
	}
	if err := p.expect('='); err != nil {
		return nil, err
	}
	tag, err := p.readInt()
	if err != nil {
		return nil, err
	}

	opts := []ast.FieldOption{ast.WithDocumentation(doc)}
	ch, err := p.peekChar()
	if err != nil {
		return nil, err
	}
	if ch == '[' {
		options, err := p.readOptions()
		if err != nil {
			return nil, err
		}
		if v, ok := options.get("deprecated"); ok {
			opts = append(opts, ast.WithDeprecated(strings.EqualFold(v, "true")))
		}
		if v, ok := options.get("default"); ok {
			opts = append(opts, ast.WithDefault(v))
		}
	}
	if err := p.expect(';'); err != nil {
		return nil, err
	}
	return ast.NewField(label, typeName, name, tag, opts...), nil
}

// optionList is the key/value list in a field's brackets, in the order the
// keys first appeared.
type optionList struct {
	keys   []string
	values map[string]string
}

func (o *optionList) set(key, value string) {
	if o.values == nil {
		o.values = map[string]string{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *optionList) get(key string) (string, bool) {
	v, ok := o.values[key]
	return v, ok
}

// readOptions reads a bracketed list of key=value pairs. The cursor must be
// at the opening bracket. Later values for a key replace earlier ones.
func (p *parser) readOptions() (*optionList, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	result := &optionList{}
	// Handle '[]' as a special case. Otherwise we need state to avoid
	// invalid cases like '[,]'.
	ch, err := p.peekChar()
	if err != nil {
		return nil, err
	}
	if ch == ']' {
		p.pos++
		return result, nil
	}

	// Each iteration of this loop reads a value.
	for {
		key, err := p.readWord()
		if err != nil {
			return nil, err
		}
		if err := p.expect('='); err != nil {
			return nil, err
		}
		value, err := p.readString()
		if err != nil {
			return nil, err
		}
		result.set(key, value)

		ch, err := p.peekChar()
		if err != nil {
			return nil, err
		}
		switch ch {
		case ']':
			p.pos++
			return result, nil
		case ',':
			p.pos++
		default:
			return nil, p.errorf(ErrExpectedSeparator, ", found %q", rune(ch))
		}
	}
}
