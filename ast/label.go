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

package ast

import "fmt"

// Label is the cardinality of a field.
type Label int8

const (
	// LabelRequired indicates that a field must be present exactly once.
	LabelRequired Label = iota + 1
	// LabelOptional indicates that a field may be absent.
	LabelOptional
	// LabelRepeated indicates that a field may occur any number of times.
	LabelRepeated
)

var labelNames = [...]string{
	LabelRequired: "REQUIRED",
	LabelOptional: "OPTIONAL",
	LabelRepeated: "REPEATED",
}

// String implements [fmt.Stringer].
func (l Label) String() string {
	if l < LabelRequired || l > LabelRepeated {
		return fmt.Sprintf("Label(%d)", int8(l))
	}
	return labelNames[l]
}

// IsValid reports whether l is one of the defined labels.
func (l Label) IsValid() bool {
	return l >= LabelRequired && l <= LabelRepeated
}

// MarshalText implements [encoding.TextMarshaler]. It is used when a model
// is rendered as JSON or YAML.
func (l Label) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("invalid label: %d", int8(l))
	}
	return []byte(labelNames[l]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Label) UnmarshalText(text []byte) error {
	for i, name := range labelNames {
		if name != "" && name == string(text) {
			*l = Label(i)
			return nil
		}
	}
	return fmt.Errorf("unknown label: %q", text)
}
