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

// Package ast defines the document model produced by parsing a schema
// source file.
//
// The root of the model is a *File. A file holds its package name, the
// paths it imports, and the message and enum types it declares. Message
// types hold fields and enum types hold values. Each element also carries
// its documentation, which is the text of the comments that immediately
// precede its declaration.
//
// The model is flat. Message and enum types declared inside the body of
// another message are not linked to their enclosing message; they appear
// in the file's list of types like any other declaration.
//
// All values in this package are immutable. They must be created using the
// factory functions in this package (NewFile, NewMessageType, and so on).
// Accessors that return slices return copies, so a caller cannot modify the
// contents of an element after it has been constructed.
package ast
