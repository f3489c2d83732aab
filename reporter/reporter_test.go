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

package reporter

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protoschema/ast"
)

var errBoom = errors.New("boom")

func TestErrorWithPos(t *testing.T) {
	t.Parallel()
	pos := ast.SourcePos{Filename: "foo.proto", Line: 2, Col: 7, Offset: 20}
	err := Errorf(pos, "syntax error: %w", errBoom)
	assert.Equal(t, "foo.proto:2:7: syntax error: boom", err.Error())
	assert.Equal(t, pos, err.GetPosition())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, "syntax error: boom", err.Unwrap().Error())

	var ewp ErrorWithPos
	require.ErrorAs(t, Error(pos, errBoom), &ewp)
	assert.Equal(t, errBoom, ewp.Unwrap())
}

func TestHandlerDefaultReporter(t *testing.T) {
	t.Parallel()
	h := NewHandler(nil)
	assert.NoError(t, h.Error())

	pos := ast.SourcePos{Filename: "foo.proto", Line: 1, Col: 1}
	err := h.HandleError(Errorf(pos, "first"))
	require.Error(t, err)
	assert.Equal(t, "foo.proto:1:1: first", err.Error())

	// subsequent errors short-circuit to the first
	err2 := h.HandleError(Errorf(pos, "second"))
	assert.Equal(t, err, err2)
	assert.Equal(t, err, h.Error())
}

func TestHandlerSwallowedErrors(t *testing.T) {
	t.Parallel()
	var reported []string
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		reported = append(reported, err.Error())
		return nil
	}, nil))

	pos := ast.SourcePos{Filename: "foo.proto", Line: 1, Col: 1}
	assert.NoError(t, h.HandleError(Errorf(pos, "first")))
	assert.NoError(t, h.HandleError(Errorf(pos, "second")))
	assert.Equal(t, []string{"foo.proto:1:1: first", "foo.proto:1:1: second"}, reported)
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
}

func TestHandlerNonPositionedError(t *testing.T) {
	t.Parallel()
	called := false
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		called = true
		return nil
	}, nil))
	err := h.HandleError(errBoom)
	assert.Equal(t, errBoom, err)
	assert.False(t, called, "reporter only sees errors with positions")
	assert.Equal(t, errBoom, h.Error())
}

func TestHandlerWarnings(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var warnings []string
	h := NewHandler(NewReporter(nil, func(err ErrorWithPos) {
		mu.Lock()
		defer mu.Unlock()
		warnings = append(warnings, err.Error())
	}))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HandleWarning(ast.SourcePos{Filename: "foo.proto", Line: 3, Col: 5}, errBoom)
		}()
	}
	wg.Wait()
	assert.Len(t, warnings, 4)
	assert.Equal(t, "foo.proto:3:5: boom", warnings[0])
	assert.NoError(t, h.Error(), "warnings do not fail the handler")
}

func TestRender(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		source string
		pos    ast.SourcePos
		want   string
	}{
		{
			name:   "simple",
			source: "message M {\n\trequired int32 f = 1\n}\n",
			pos:    ast.SourcePos{Filename: "x.proto", Line: 3, Col: 1},
			want:   "x.proto:3:1: boom\n 3 | }\n   | ^\n",
		},
		{
			name:   "tabs",
			source: "\tfoo bar",
			pos:    ast.SourcePos{Filename: "x.proto", Line: 1, Col: 6},
			want:   "x.proto:1:6: boom\n 1 |     foo bar\n   |         ^\n",
		},
		{
			name:   "wide characters",
			source: "// x\n名前 x\n",
			pos:    ast.SourcePos{Filename: "x.proto", Line: 2, Col: 8},
			want:   "x.proto:2:8: boom\n 2 | 名前 x\n   |      ^\n",
		},
		{
			name:   "end of file",
			source: "message M {",
			pos:    ast.SourcePos{Filename: "x.proto", Line: 1, Col: 12},
			want:   "x.proto:1:12: boom\n 1 | message M {\n   |            ^\n",
		},
		{
			name:   "line out of range",
			source: "message M {}",
			pos:    ast.SourcePos{Filename: "x.proto", Line: 4, Col: 1},
			want:   "x.proto:4:1: boom\n",
		},
		{
			name: "no source",
			pos:  ast.SourcePos{Filename: "x.proto", Line: 1, Col: 1},
			want: "x.proto:1:1: boom\n 1 | \n   | ^\n",
		},
		{
			name:   "unknown position",
			source: "message M {}",
			pos:    ast.UnknownPos("x.proto"),
			want:   "x.proto: boom\n",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var sb strings.Builder
			err := Render(&sb, []byte(testCase.source), Error(testCase.pos, errBoom))
			require.NoError(t, err)
			assert.Equal(t, testCase.want, sb.String())
		})
	}
}

func TestRendererStyles(t *testing.T) {
	t.Parallel()
	r := Renderer{
		Message: func(s string) string { return "<" + s + ">" },
		Caret:   func(s string) string { return "[" + s + "]" },
	}
	var sb strings.Builder
	err := r.Render(&sb, []byte("ab"), Error(ast.SourcePos{Filename: "x.proto", Line: 1, Col: 2}, errBoom))
	require.NoError(t, err)
	assert.Equal(t, "<x.proto:1:2: boom>\n 1 | ab\n   |  [^]\n", sb.String())
}
