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

// Package protoschema provides the entry point for parsing many schema source
// files at once. Parsing a single file is done by package parser; this
// package adds file loading, via a Resolver, and parses the requested files
// in parallel.
//
// The source language is a small subset of the Protocol Buffers language:
// packages, imports, file options, messages with labeled fields, and enums.
// The result for each file is an *ast.File, a flat, immutable document
// model meant to be consumed by code generators. Package descriptor can
// turn that model into descriptor protos.
//
// # Resolvers
//
// A Resolver is how the compiler locates the source code for a file name.
// The most common implementation is a SourceResolver, which opens files,
// optionally searching a list of import paths:
//
//	compiler := protoschema.Compiler{
//	    Resolver: &protoschema.SourceResolver{
//	        ImportPaths: []string{"./schemas"},
//	    },
//	}
//	files, err := compiler.Compile(ctx, "foo.proto", "bar.proto")
//
// Imports declared in the compiled files are recorded in the results but
// are never loaded.
//
// # Errors
//
// Syntax errors are passed to the Compiler's Reporter, if one is set. The
// first syntax error in a file aborts that file. Errors carry a position and
// implement reporter.ErrorWithPos.
package protoschema
