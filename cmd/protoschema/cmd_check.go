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
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/protoschema"
	"github.com/bufbuild/protoschema/reporter"
)

func newCheckCmd() *cobra.Command {
	var failOnWarnings bool

	cmd := &cobra.Command{
		Use:   "check <pattern>...",
		Short: "Report syntax errors in all files matching the given globs",
		Long: `Report syntax errors in all files matching the given globs.

Patterns use doublestar syntax, so "schemas/**/*.proto" matches every .proto
file below the schemas directory. Every matching file is parsed, even after
errors are found in others.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.New("no files match the given patterns")
			}
			log.Infof("checking %d file(s)", len(files))

			diags := &diagnostics{out: cmd.ErrOrStderr()}
			comp := protoschema.Compiler{
				Resolver: diags.resolver(&protoschema.SourceResolver{}),
				Reporter: diags.reporter(),
			}

			// Each file is compiled on its own so that an error in one does
			// not stop the others.
			var g errgroup.Group
			g.SetLimit(runtime.NumCPU())
			for _, file := range files {
				g.Go(func() error {
					_, err := comp.Compile(cmd.Context(), file)
					if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
						// Not a syntax error, so the reporter has not seen it.
						return fmt.Errorf("%s: %w", file, err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			errs, warnings := diags.counts()
			fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) checked, %d error(s), %d warning(s)\n", len(files), errs, warnings)
			if errs > 0 || (failOnWarnings && warnings > 0) {
				return errors.New("check failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, "exit with an error if any warnings are reported")

	return cmd
}

// expandPatterns returns the sorted, de-duplicated set of files matching the
// given globs.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		log.Debugf("pattern %q matched %d file(s)", pattern, len(matches))
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
