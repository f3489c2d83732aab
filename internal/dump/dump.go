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

// Package dump converts parsed files into plain structs that can be encoded
// as YAML or JSON. It backs the CLI's output and the parser's golden tests.
package dump

import "github.com/bufbuild/protoschema/ast"

// File mirrors ast.File.
type File struct {
	Name         string    `yaml:"name" json:"name"`
	Package      *string   `yaml:"package,omitempty" json:"package,omitempty"`
	Dependencies []string  `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Messages     []Message `yaml:"messages,omitempty" json:"messages,omitempty"`
	Enums        []Enum    `yaml:"enums,omitempty" json:"enums,omitempty"`
}

// Message mirrors ast.MessageType.
type Message struct {
	Name          string  `yaml:"name" json:"name"`
	Documentation string  `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Fields        []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Field mirrors ast.Field.
type Field struct {
	Label         ast.Label `yaml:"label" json:"label"`
	Type          string    `yaml:"type" json:"type"`
	Name          string    `yaml:"name" json:"name"`
	Tag           int       `yaml:"tag" json:"tag"`
	Default       *string   `yaml:"default,omitempty" json:"default,omitempty"`
	Deprecated    bool      `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Documentation string    `yaml:"documentation,omitempty" json:"documentation,omitempty"`
}

// Enum mirrors ast.EnumType.
type Enum struct {
	Name          string  `yaml:"name" json:"name"`
	Documentation string  `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Values        []Value `yaml:"values,omitempty" json:"values,omitempty"`
}

// Value mirrors ast.EnumValue.
type Value struct {
	Name          string `yaml:"name" json:"name"`
	Tag           int    `yaml:"tag" json:"tag"`
	Documentation string `yaml:"documentation,omitempty" json:"documentation,omitempty"`
}

// FromFile converts f.
func FromFile(f *ast.File) File {
	out := File{
		Name:         f.Name(),
		Dependencies: f.Dependencies(),
	}
	if pkg, ok := f.Package(); ok {
		out.Package = &pkg
	}
	for _, m := range f.MessageTypes() {
		msg := Message{Name: m.Name(), Documentation: m.Documentation()}
		for _, fld := range m.Fields() {
			field := Field{
				Label:         fld.Label(),
				Type:          fld.Type(),
				Name:          fld.Name(),
				Tag:           fld.Tag(),
				Deprecated:    fld.IsDeprecated(),
				Documentation: fld.Documentation(),
			}
			if def, ok := fld.Default(); ok {
				field.Default = &def
			}
			msg.Fields = append(msg.Fields, field)
		}
		out.Messages = append(out.Messages, msg)
	}
	for _, e := range f.EnumTypes() {
		enum := Enum{Name: e.Name(), Documentation: e.Documentation()}
		for _, v := range e.Values() {
			enum.Values = append(enum.Values, Value{Name: v.Name(), Tag: v.Tag(), Documentation: v.Documentation()})
		}
		out.Enums = append(out.Enums, enum)
	}
	return out
}
