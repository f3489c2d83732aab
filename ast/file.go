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

package ast

import "slices"

// File is the result of parsing a single schema source file.
type File struct {
	name         string
	pkg          string
	hasPkg       bool
	dependencies []string
	messages     []*MessageType
	enums        []*EnumType
}

// NewFile creates a new *File. The given name identifies the file in
// diagnostics; it is never used to access the file system. If pkg is empty,
// the file has no package declaration.
//
// The given slices are copied.
func NewFile(name, pkg string, dependencies []string, messages []*MessageType, enums []*EnumType) *File {
	return &File{
		name:         name,
		pkg:          pkg,
		hasPkg:       pkg != "",
		dependencies: slices.Clone(dependencies),
		messages:     slices.Clone(messages),
		enums:        slices.Clone(enums),
	}
}

// Name returns the name that identifies the file.
func (f *File) Name() string {
	return f.name
}

// Package returns the file's package name. The second return value is false
// if the file has no package declaration.
func (f *File) Package() (string, bool) {
	return f.pkg, f.hasPkg
}

// Dependencies returns the paths of the file's imports, in the order they
// were declared. Duplicates are retained.
func (f *File) Dependencies() []string {
	return slices.Clone(f.dependencies)
}

// MessageTypes returns the message types declared in the file.
func (f *File) MessageTypes() []*MessageType {
	return slices.Clone(f.messages)
}

// EnumTypes returns the enum types declared in the file.
func (f *File) EnumTypes() []*EnumType {
	return slices.Clone(f.enums)
}

// MessageType returns the message type with the given name, or nil if the
// file declares no such type. If more than one has the name, the first is
// returned.
func (f *File) MessageType(name string) *MessageType {
	for _, m := range f.messages {
		if m.name == name {
			return m
		}
	}
	return nil
}

// EnumType returns the enum type with the given name, or nil if the file
// declares no such type. If more than one has the name, the first is
// returned.
func (f *File) EnumType(name string) *EnumType {
	for _, e := range f.enums {
		if e.name == name {
			return e
		}
	}
	return nil
}

// MessageType is a message declaration.
type MessageType struct {
	name          string
	documentation string
	fields        []*Field
}

// NewMessageType creates a new *MessageType. The given slice is copied.
func NewMessageType(name, documentation string, fields []*Field) *MessageType {
	return &MessageType{
		name:          name,
		documentation: documentation,
		fields:        slices.Clone(fields),
	}
}

// Name returns the message name as declared.
func (m *MessageType) Name() string {
	return m.name
}

// Documentation returns the comment text that preceded the declaration, or
// the empty string if there was none.
func (m *MessageType) Documentation() string {
	return m.documentation
}

// Fields returns the message's fields in declaration order.
func (m *MessageType) Fields() []*Field {
	return slices.Clone(m.fields)
}

// Field returns the field with the given name, or nil if there is none.
func (m *MessageType) Field(name string) *Field {
	for _, fld := range m.fields {
		if fld.name == name {
			return fld
		}
	}
	return nil
}

// Field is a field declaration in the body of a message.
type Field struct {
	label         Label
	typeName      string
	name          string
	tag           int
	defaultValue  string
	hasDefault    bool
	deprecated    bool
	documentation string
}

// FieldOption configures optional attributes of a field in NewField.
type FieldOption func(*Field)

// WithDefault sets the raw text of the field's default value.
func WithDefault(value string) FieldOption {
	return func(f *Field) {
		f.defaultValue = value
		f.hasDefault = true
	}
}

// WithDeprecated sets whether the field is deprecated.
func WithDeprecated(deprecated bool) FieldOption {
	return func(f *Field) {
		f.deprecated = deprecated
	}
}

// WithDocumentation sets the field's documentation.
func WithDocumentation(documentation string) FieldOption {
	return func(f *Field) {
		f.documentation = documentation
	}
}

// NewField creates a new *Field.
func NewField(label Label, typeName, name string, tag int, opts ...FieldOption) *Field {
	f := &Field{
		label:    label,
		typeName: typeName,
		name:     name,
		tag:      tag,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Label returns the field's cardinality.
func (f *Field) Label() Label {
	return f.label
}

// Type returns the name of the field's type exactly as written in the
// source. It is not resolved or validated.
func (f *Field) Type() string {
	return f.typeName
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Tag returns the field number.
func (f *Field) Tag() int {
	return f.tag
}

// Default returns the raw text of the field's default value. The second
// return value is false if no default was given.
func (f *Field) Default() (string, bool) {
	return f.defaultValue, f.hasDefault
}

// IsDeprecated reports whether the field was marked deprecated=true.
func (f *Field) IsDeprecated() bool {
	return f.deprecated
}

// Documentation returns the comment text that preceded the field.
func (f *Field) Documentation() string {
	return f.documentation
}

// EnumType is an enum declaration.
type EnumType struct {
	name          string
	documentation string
	values        []*EnumValue
}

// NewEnumType creates a new *EnumType. The given slice is copied.
func NewEnumType(name, documentation string, values []*EnumValue) *EnumType {
	return &EnumType{
		name:          name,
		documentation: documentation,
		values:        slices.Clone(values),
	}
}

// Name returns the enum name as declared.
func (e *EnumType) Name() string {
	return e.name
}

// Documentation returns the comment text that preceded the declaration.
func (e *EnumType) Documentation() string {
	return e.documentation
}

// Values returns the enum's values in declaration order.
func (e *EnumType) Values() []*EnumValue {
	return slices.Clone(e.values)
}

// EnumValue is a single named constant in an enum declaration.
type EnumValue struct {
	name          string
	tag           int
	documentation string
}

// NewEnumValue creates a new *EnumValue.
func NewEnumValue(name string, tag int, documentation string) *EnumValue {
	return &EnumValue{name: name, tag: tag, documentation: documentation}
}

// Name returns the value name.
func (v *EnumValue) Name() string {
	return v.name
}

// Tag returns the value's number.
func (v *EnumValue) Tag() int {
	return v.tag
}

// Documentation returns the comment text that preceded the value.
func (v *EnumValue) Documentation() string {
	return v.documentation
}
