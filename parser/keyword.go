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

import "github.com/bufbuild/protoschema/ast"

// keyword is a word that can start a declaration.
type keyword int

const (
	keywordUnknown keyword = iota
	keywordMessage
	keywordEnum
	keywordPackage
	keywordOption
	keywordImport
	keywordRequired
	keywordOptional
	keywordRepeated
	keywordExtensions
)

// keywords is case-sensitive.
var keywords = map[string]keyword{
	"message":    keywordMessage,
	"enum":       keywordEnum,
	"package":    keywordPackage,
	"option":     keywordOption,
	"import":     keywordImport,
	"required":   keywordRequired,
	"optional":   keywordOptional,
	"repeated":   keywordRepeated,
	"extensions": keywordExtensions,
}

// lookupKeyword returns the keyword for word, or keywordUnknown.
func lookupKeyword(word string) keyword {
	return keywords[word]
}

// label returns the field label this keyword introduces, if any.
func (k keyword) label() (ast.Label, bool) {
	switch k {
	case keywordRequired:
		return ast.LabelRequired, true
	case keywordOptional:
		return ast.LabelOptional, true
	case keywordRepeated:
		return ast.LabelRepeated, true
	default:
		return 0, false
	}
}
