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

// Package cases converts identifiers between case styles.
package cases

import (
	"strings"
	"unicode"
)

// Camel converts a snake_case name to camelCase the way protoc does when it
// derives a field's JSON name. Words are split only on underscores, the
// first rune of every word after the first is uppercased, and all other
// runes are kept as is. So "foo_bar" becomes "fooBar" and "_foo" becomes
// "Foo".
func Camel(str string) string {
	buf := new(strings.Builder)
	firstWord := true
	for word := range strings.SplitSeq(str, "_") {
		firstRune := true
		for _, r := range word {
			if firstRune && !firstWord {
				r = unicode.ToUpper(r)
			}
			buf.WriteRune(r)
			firstRune = false
		}
		firstWord = false
	}
	return buf.String()
}
