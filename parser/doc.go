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

// Package parser contains the logic for parsing schema source code into the
// document model defined in package ast.
//
// The parser is a hand-written recursive-descent parser. It does not use a
// separate lexer: it scans characters directly out of the source buffer as
// each production needs them. Comments that immediately precede a
// declaration are collected as that declaration's documentation.
//
// Only syntax is checked. Field types are not resolved and imports are not
// followed. Any syntax error aborts the parse; no partial result is ever
// returned.
package parser
