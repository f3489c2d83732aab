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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bufbuild/protoschema"
	"github.com/bufbuild/protoschema/reporter"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningStyle = color.New(color.FgYellow, color.Bold).SprintFunc()
	caretStyle   = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func configureColor(disable bool) {
	color.NoColor = disable || !isatty.IsTerminal(os.Stderr.Fd())
}

// diagnostics prints errors and warnings reported while parsing. It is used
// from several goroutines at once.
type diagnostics struct {
	out io.Writer

	mu       sync.Mutex
	errors   int
	warnings int
	// Contents of every file loaded through resolver, by name.
	sources map[string][]byte
}

// resolver wraps res so that the contents of each file it loads are kept
// for printing the offending line of a diagnostic.
func (d *diagnostics) resolver(res protoschema.Resolver) protoschema.Resolver {
	return protoschema.ResolverFunc(func(path string) (protoschema.SearchResult, error) {
		result, err := res.FindFileByPath(path)
		if err != nil || result.Source == nil {
			return result, err
		}
		data, err := io.ReadAll(result.Source)
		if c, ok := result.Source.(io.Closer); ok {
			_ = c.Close()
		}
		if err != nil {
			return protoschema.SearchResult{}, err
		}

		d.mu.Lock()
		if d.sources == nil {
			d.sources = map[string][]byte{}
		}
		d.sources[path] = data
		d.mu.Unlock()
		return protoschema.SearchResult{Source: bytes.NewReader(data)}, nil
	})
}

// reporter returns a reporter that prints every error and warning and lets
// parsing of other files carry on.
func (d *diagnostics) reporter() reporter.Reporter {
	return reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			d.print(err, errorStyle)
			d.mu.Lock()
			d.errors++
			d.mu.Unlock()
			return nil
		},
		func(err reporter.ErrorWithPos) {
			log.Debugf("warning in %s: %v", err.GetPosition().Filename, err.Unwrap())
			d.print(err, warningStyle)
			d.mu.Lock()
			d.warnings++
			d.mu.Unlock()
		},
	)
}

func (d *diagnostics) print(err reporter.ErrorWithPos, style func(...any) string) {
	r := reporter.Renderer{
		Message: func(s string) string { return style(s) },
		Caret:   func(s string) string { return caretStyle(s) },
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	// Without the source, the message is printed on its own.
	source, ok := d.sources[err.GetPosition().Filename]
	if !ok {
		log.Debugf("no source loaded for %s", err.GetPosition().Filename)
	}
	if err := r.Render(d.out, source, err); err != nil {
		log.Errorf("cannot write diagnostics: %v", err)
	}
}

func (d *diagnostics) counts() (errs, warnings int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errors, d.warnings
}

// printError prints an error that ended the command. Syntax errors have
// already been printed by the diagnostics reporter by then.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle("error:"), err)
}
