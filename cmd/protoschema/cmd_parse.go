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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/protoschema"
	"github.com/bufbuild/protoschema/ast"
	"github.com/bufbuild/protoschema/descriptor"
	"github.com/bufbuild/protoschema/internal/dump"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var importPaths []string

	cmd := &cobra.Command{
		Use:           "parse <file>...",
		Short:         "Parse schema files and print the resulting documents",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			diags := &diagnostics{out: cmd.ErrOrStderr()}
			comp := protoschema.Compiler{
				Resolver: diags.resolver(&protoschema.SourceResolver{ImportPaths: importPaths}),
				Reporter: diags.reporter(),
			}
			log.Infof("parsing %d file(s)", len(args))
			files, err := comp.Compile(cmd.Context(), args...)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			return writeFiles(cmd.OutOrStdout(), outputFormat, files)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format (yaml, json, descriptor)")
	cmd.Flags().StringSliceVarP(&importPaths, "import-path", "I", nil, "directories to search for the named files")

	return cmd
}

func writeFiles(w io.Writer, format string, files []*ast.File) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, f := range files {
			if err := enc.Encode(dump.FromFile(f)); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		for _, f := range files {
			if err := enc.Encode(dump.FromFile(f)); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
		}
		return nil
	case "descriptor":
		data, err := protojson.MarshalOptions{Multiline: true}.Marshal(descriptor.ToFileDescriptorSet(files...))
		if err != nil {
			return fmt.Errorf("encode descriptor: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
