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
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protoschema/ast"
	"github.com/bufbuild/protoschema/reporter"
)

func TestEmptyParse(t *testing.T) {
	t.Parallel()
	errHandler := reporter.NewHandler(nil)
	file, err := Parse("foo.proto", bytes.NewReader(nil), errHandler)
	require.NoError(t, err)
	assert.Equal(t, "foo.proto", file.Name())
	_, hasPkg := file.Package()
	assert.False(t, hasPkg)
	assert.Empty(t, file.Dependencies())
	assert.Empty(t, file.MessageTypes())
	assert.Empty(t, file.EnumTypes())
}

func TestJunkParse(t *testing.T) {
	t.Parallel()
	inputs := map[string]string{
		"quotes":         `'';`,
		"dot":            `.`,
		"brace":          `}`,
		"slash":          `/`,
		"open message":   `message {`,
		"open string":    `import "`,
		"lonely label":   `message M { required`,
		"missing tag":    `message M { optional int32 x = ; }`,
		"option garbage": `message M { optional int32 x = 1 [=]; }`,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes(fmt.Sprintf("%s.proto", name), []byte(input))
			// we expect this to error... but we don't want it to panic
			require.Error(t, err, "junk input should have returned error")
			var errWithPos reporter.ErrorWithPos
			assert.True(t, errors.As(err, &errWithPos), "error should carry a position: %v", err)
		})
	}
}

func TestParsePackage(t *testing.T) {
	t.Parallel()
	file, err := ParseBytes("test.proto", []byte("package a.b.c;"))
	require.NoError(t, err)
	pkg, ok := file.Package()
	assert.True(t, ok)
	assert.Equal(t, "a.b.c", pkg)

	_, err = ParseBytes("test.proto", []byte("package a;\npackage b;"))
	require.ErrorIs(t, err, ErrDuplicatePackage)
	assert.Equal(t, "test.proto:2:1: syntax error: too many package names", err.Error())
}

func TestParseImportsAndOptions(t *testing.T) {
	t.Parallel()
	source := `
import "a.proto";
option java_package = "com.example";
import b.proto;
option optimize_for = SPEED;
import "dir/c.proto";
`
	file, err := ParseBytes("test.proto", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.proto", "b.proto", "dir/c.proto"}, file.Dependencies())

	// The returned slice is a copy.
	deps := file.Dependencies()
	deps[0] = "mutated"
	assert.Equal(t, "a.proto", file.Dependencies()[0])
}

func TestParseRepeatedImports(t *testing.T) {
	t.Parallel()
	file, err := ParseBytes("test.proto", []byte(`import "a"; import "a"; import b; import "a";`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", "b", "a"}, file.Dependencies())
}

func TestParseMessage(t *testing.T) {
	t.Parallel()
	file, err := ParseBytes("test.proto", []byte("message M { required int32 f = 1; }"))
	require.NoError(t, err)
	require.Len(t, file.MessageTypes(), 1)
	msg := file.MessageTypes()[0]
	assert.Equal(t, "M", msg.Name())
	assert.Empty(t, msg.Documentation())
	require.Len(t, msg.Fields(), 1)

	field := msg.Fields()[0]
	assert.Equal(t, ast.LabelRequired, field.Label())
	assert.Equal(t, "int32", field.Type())
	assert.Equal(t, "f", field.Name())
	assert.Equal(t, 1, field.Tag())
	_, hasDefault := field.Default()
	assert.False(t, hasDefault)
	assert.False(t, field.IsDeprecated())
	assert.Same(t, field, msg.Field("f"))
	assert.Same(t, msg, file.MessageType("M"))
	assert.Nil(t, file.MessageType("N"))
}

func TestParseFieldLabels(t *testing.T) {
	t.Parallel()
	source := `message M {
  required string a = 1;
  optional bytes b = 2;
  repeated foo.Bar c = 3;
  extensions 100 to 199;
}`
	file, err := ParseBytes("test.proto", []byte(source))
	require.NoError(t, err)
	msg := file.MessageType("M")
	require.NotNil(t, msg)
	var labels []ast.Label
	var names []string
	for _, field := range msg.Fields() {
		labels = append(labels, field.Label())
		names = append(names, field.Name())
	}
	assert.Equal(t, []ast.Label{ast.LabelRequired, ast.LabelOptional, ast.LabelRepeated}, labels)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, "foo.Bar", msg.Field("c").Type())
}

func TestParseFieldOptions(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name           string
		options        string
		wantDeprecated bool
		wantDefault    string
		wantHasDefault bool
	}{
		{name: "none", options: ""},
		{name: "empty", options: "[]"},
		{
			name:           "both",
			options:        `[deprecated=true, default="x y"]`,
			wantDeprecated: true,
			wantDefault:    "x y",
			wantHasDefault: true,
		},
		{
			name:           "quoted values",
			options:        `[deprecated="true", default="5"]`,
			wantDeprecated: true,
			wantDefault:    "5",
			wantHasDefault: true,
		},
		{name: "deprecated false", options: "[deprecated=false]"},
		{name: "deprecated malformed", options: "[deprecated=yes]"},
		{name: "deprecated case insensitive", options: "[deprecated=TRUE]", wantDeprecated: true},
		{name: "unquoted default", options: "[default=7]", wantDefault: "7", wantHasDefault: true},
		{name: "escaped default", options: `[default="a\"b"]`, wantDefault: `a"b`, wantHasDefault: true},
		{name: "last value wins", options: "[default=1, default=2]", wantDefault: "2", wantHasDefault: true},
		{name: "unknown keys ignored", options: "[packed=true, json_name=foo]"},
		{name: "comments inside", options: "[ /* c */ deprecated = true /* d */ ]", wantDeprecated: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			source := fmt.Sprintf("message M { optional int32 f = 1 %s; }", testCase.options)
			file, err := ParseBytes("test.proto", []byte(source))
			require.NoError(t, err)
			field := file.MessageType("M").Field("f")
			require.NotNil(t, field)
			assert.Equal(t, testCase.wantDeprecated, field.IsDeprecated())
			def, hasDefault := field.Default()
			assert.Equal(t, testCase.wantHasDefault, hasDefault)
			assert.Equal(t, testCase.wantDefault, def)
		})
	}
}

func TestParseEnum(t *testing.T) {
	t.Parallel()
	source := `
// Colors.
enum Color {
  RED = 0;
  // The green one.
  GREEN = 1;
  BLUE = -2;
}`
	file, err := ParseBytes("test.proto", []byte(source))
	require.NoError(t, err)
	enum := file.EnumType("Color")
	require.NotNil(t, enum)
	assert.Equal(t, "Colors.", enum.Documentation())
	values := enum.Values()
	require.Len(t, values, 3)
	assert.Equal(t, "RED", values[0].Name())
	assert.Equal(t, 0, values[0].Tag())
	assert.Empty(t, values[0].Documentation())
	assert.Equal(t, "GREEN", values[1].Name())
	assert.Equal(t, "The green one.", values[1].Documentation())
	assert.Equal(t, -2, values[2].Tag())
}

func TestParseDocumentation(t *testing.T) {
	t.Parallel()
	source := `/** doc */
message A {
  // first
  // second
  optional int32 x = 1;
  optional int32 y = 2;
}

// A blank line does not detach this.

message B {}
`
	file, err := ParseBytes("test.proto", []byte(source))
	require.NoError(t, err)
	a := file.MessageType("A")
	require.NotNil(t, a)
	assert.Equal(t, "doc", a.Documentation())
	assert.Equal(t, "first\nsecond", a.Field("x").Documentation())
	assert.Empty(t, a.Field("y").Documentation())
	assert.Equal(t, "A blank line does not detach this.", file.MessageType("B").Documentation())
}

func TestParseNestedTypes(t *testing.T) {
	t.Parallel()
	source := `message Outer {
  message Inner {
    optional int32 x = 1;
  }
  enum Kind {
    A = 0;
  }
  optional Inner inner = 1;
}
message Last {}
`
	var warnings []reporter.ErrorWithPos
	rep := reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err)
	})
	file, err := Parse("test.proto", strings.NewReader(source), reporter.NewHandler(rep))
	require.NoError(t, err)

	var names []string
	for _, msg := range file.MessageTypes() {
		names = append(names, msg.Name())
	}
	// Nested types are completed before the type that contains them.
	assert.Equal(t, []string{"Inner", "Outer", "Last"}, names)
	require.Len(t, file.EnumTypes(), 1)
	assert.Equal(t, "Kind", file.EnumTypes()[0].Name())
	require.Len(t, file.MessageType("Outer").Fields(), 1)

	require.Len(t, warnings, 2)
	for _, warning := range warnings {
		assert.ErrorIs(t, warning, ErrNestedTypeFlattened)
	}
	assert.Equal(t, ast.SourcePos{Filename: "test.proto", Line: 2, Col: 3, Offset: 18}, warnings[0].GetPosition())
	assert.Equal(t, 5, warnings[1].GetPosition().Line)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		source  string
		wantErr error
		wantMsg string
	}{
		{
			name:    "field at file scope",
			source:  "optional int32 x = 1;",
			wantErr: ErrInvalidContext,
			wantMsg: "test.proto:1:1: syntax error: invalid context: fields must be nested",
		},
		{
			name:    "extensions at file scope",
			source:  "\nextensions 1 to 2;",
			wantErr: ErrInvalidContext,
			wantMsg: "test.proto:2:1: syntax error: invalid context: extensions must be nested",
		},
		{
			name:    "nested import",
			source:  `message M { import "x.proto"; }`,
			wantErr: ErrInvalidContext,
			wantMsg: "test.proto:1:13: syntax error: invalid context: nested import",
		},
		{
			name:    "nested option",
			source:  "message M { option a = b; }",
			wantErr: ErrInvalidContext,
			wantMsg: "test.proto:1:13: syntax error: invalid context: nested option",
		},
		{
			name:    "nested package",
			source:  "message M {\n  package p;\n}",
			wantErr: ErrInvalidContext,
			wantMsg: "test.proto:2:3: syntax error: invalid context: nested package",
		},
		{
			name:    "unknown keyword",
			source:  "service S {}",
			wantErr: ErrUnknownDeclaration,
			wantMsg: "test.proto:1:1: syntax error: unexpected label: service",
		},
		{
			name:    "keywords are case sensitive",
			source:  "Message M {}",
			wantErr: ErrUnknownDeclaration,
			wantMsg: "test.proto:1:1: syntax error: unexpected label: Message",
		},
		{
			name:    "unterminated comment",
			source:  "message M {} /* oops",
			wantErr: ErrUnterminatedComment,
			wantMsg: "test.proto:1:21: syntax error: unterminated comment",
		},
		{
			name:    "unterminated string",
			source:  `import "a.proto;`,
			wantErr: ErrUnterminatedString,
			wantMsg: "test.proto:1:17: syntax error: unterminated string",
		},
		{
			name:    "missing semicolon",
			source:  "package a.b\nmessage M {}",
			wantErr: ErrExpectedSemicolon,
			wantMsg: "test.proto:2:1: syntax error: expected ';', found 'm'",
		},
		{
			name:    "missing brace",
			source:  "message M;",
			wantErr: ErrExpectedPunctuation,
			wantMsg: "test.proto:1:10: syntax error: expected '{', found ';'",
		},
		{
			name:    "bad tag",
			source:  "message M { optional int32 x = one; }",
			wantErr: ErrInvalidInteger,
			wantMsg: `test.proto:1:32: syntax error: expected an integer but was "one"`,
		},
		{
			name:    "tag out of range",
			source:  "enum E { A = 4294967296; }",
			wantErr: ErrInvalidInteger,
			wantMsg: `test.proto:1:14: syntax error: expected an integer but was "4294967296"`,
		},
		{
			name:    "bad option separator",
			source:  "message M { optional int32 x = 1 [deprecated=true;] }",
			wantErr: ErrExpectedSeparator,
			wantMsg: "test.proto:1:50: syntax error: expected ',' or ']', found ';'",
		},
		{
			name:    "eof in message",
			source:  "message M {\n  optional int32 x = 1;\n",
			wantErr: ErrUnexpectedEOF,
			wantMsg: "test.proto:3:1: syntax error: unexpected end of file",
		},
		{
			name:    "eof instead of name",
			source:  "message",
			wantErr: ErrExpectedWord,
			wantMsg: "test.proto:1:8: syntax error: expected a word, found end of file",
		},
		{
			name:    "punctuation instead of name",
			source:  "message {",
			wantErr: ErrExpectedWord,
			wantMsg: "test.proto:1:9: syntax error: expected a word, found '{'",
		},
		{
			name:    "stray slash",
			source:  "message M {}\n/ x",
			wantErr: ErrUnexpectedCharacter,
			wantMsg: "test.proto:2:1: syntax error: unexpected character '/'",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			file, err := ParseBytes("test.proto", []byte(testCase.source))
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, file)
			assert.Equal(t, testCase.wantMsg, err.Error())
		})
	}
}

func TestParseErrorReporter(t *testing.T) {
	t.Parallel()
	var reported []reporter.ErrorWithPos
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		reported = append(reported, err)
		return nil
	}, nil)
	handler := reporter.NewHandler(rep)
	file, err := Parse("test.proto", strings.NewReader("optional int32 x = 1;"), handler)
	assert.Nil(t, file)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], ErrInvalidContext)
	assert.Equal(t, ast.SourcePos{Filename: "test.proto", Line: 1, Col: 1}, reported[0].GetPosition())

	// A reporter that returns its own error aborts with that error.
	sentinel := errors.New("stop")
	rep = reporter.NewReporter(func(reporter.ErrorWithPos) error { return sentinel }, nil)
	_, err = Parse("test.proto", strings.NewReader("}"), reporter.NewHandler(rep))
	assert.Same(t, sentinel, err)
}

func TestParseReadError(t *testing.T) {
	t.Parallel()
	readErr := errors.New("disk on fire")
	_, err := Parse("test.proto", iotest.ErrReader(readErr), reporter.NewHandler(nil))
	assert.Same(t, readErr, err)
}

func TestParseByteOrderMark(t *testing.T) {
	t.Parallel()
	data := append([]byte{0xEF, 0xBB, 0xBF}, "package p;"...)
	file, err := ParseBytes("test.proto", data)
	require.NoError(t, err)
	pkg, _ := file.Package()
	assert.Equal(t, "p", pkg)
}
