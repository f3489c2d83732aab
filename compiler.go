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

package protoschema

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/protoschema/ast"
	"github.com/bufbuild/protoschema/parser"
	"github.com/bufbuild/protoschema/reporter"
)

// Compiler handles parsing tasks, to turn schema source files into
// documents.
//
// Each file is loaded through the Resolver and parsed on its own goroutine.
// Files are independent: imports are recorded but never loaded, so a file
// can be parsed without waiting for any other.
type Compiler struct {
	// Resolves path/file names into source code or already-parsed files.
	// This field is the only required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the compilation after encountering any
	// errors and ignores all warnings.
	//
	// Files are parsed concurrently, so the reporter's functions may be
	// called from several goroutines at once.
	Reporter reporter.Reporter
}

// Compile parses the given file names. The results are in the same order as
// the given names. If any file cannot be loaded or parsed, the error for the
// first such file (in the order given) is returned.
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]*ast.File, error) {
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if par > cpus {
			par = cpus
		}
	}

	e := executor{
		c:       c,
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.compile(ctx, f)
	}

	parsed := make([]*ast.File, len(files))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		parsed[i] = r.res
	}

	return parsed, nil
}

type result struct {
	ready chan struct{}
	res   *ast.File
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(f *ast.File) {
	r.res = f
	close(r.ready)
}

type executor struct {
	c *Compiler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

// compile starts parsing the given file, unless it has already been
// started, and returns its pending result.
func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doCompile(ctx, file, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// if results included a reader, don't leave it open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	parsed, err := e.asFile(file, sr)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(parsed)
}

func (e *executor) asFile(name string, r SearchResult) (*ast.File, error) {
	if r.AST != nil {
		if r.AST.Name() != name {
			return nil, fmt.Errorf("search result for %q returned file for %q", name, r.AST.Name())
		}
		return r.AST, nil
	}
	if r.Source == nil {
		return nil, fmt.Errorf("search result for %q contained no source", name)
	}
	// Each file gets its own handler so that it fails with its own error.
	return parser.Parse(name, r.Source, reporter.NewHandler(e.c.Reporter))
}
