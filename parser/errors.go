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

import "errors"

// Sentinel errors that identify the kind of a syntax error. The errors
// returned by Parse are reporter.ErrorWithPos values that wrap one of
// these, so they can be tested for with errors.Is.
var (
	ErrUnexpectedEOF       = errors.New("unexpected end of file")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrInvalidInteger      = errors.New("expected an integer")
	ErrExpectedWord        = errors.New("expected a word")
	ErrExpectedPunctuation = errors.New("expected")
	ErrExpectedSemicolon   = errors.New("expected ';'")
	ErrExpectedSeparator   = errors.New("expected ',' or ']'")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrInvalidContext      = errors.New("invalid context")
	ErrDuplicatePackage    = errors.New("too many package names")
	ErrUnknownDeclaration  = errors.New("unexpected label")
)

// ErrNestedTypeFlattened is a sentinel error that may be passed to a warning
// reporter. It is reported when a message or enum is declared inside the
// body of another message. Such a type is still parsed, but it is added to
// the file's top-level types since the document model does not retain
// nesting. The error the reporter receives will be wrapped with the source
// position of the nested declaration.
var ErrNestedTypeFlattened = errors.New("nested type declaration is flattened into the file")
