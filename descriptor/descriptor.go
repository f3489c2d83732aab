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

// Package descriptor converts a parsed schema file into a descriptor proto,
// which is the form most Protobuf tooling (such as protoc plugins) consumes.
//
// The conversion is purely structural. Type names are copied as written,
// without resolving them against the file's package or its imports, so
// message and enum references are reported only through type_name and the
// type field is left unset for them.
package descriptor

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/bufbuild/protoschema/ast"
	"github.com/bufbuild/protoschema/internal"
)

var labels = map[ast.Label]descriptorpb.FieldDescriptorProto_Label{
	ast.LabelRequired: descriptorpb.FieldDescriptorProto_LABEL_REQUIRED,
	ast.LabelOptional: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL,
	ast.LabelRepeated: descriptorpb.FieldDescriptorProto_LABEL_REPEATED,
}

// ToFileDescriptorProto converts the given file into a descriptor proto.
// The result always uses proto2 syntax, since the schema language supports
// required fields and explicit defaults.
func ToFileDescriptorProto(file *ast.File) *descriptorpb.FileDescriptorProto {
	fd := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(file.Name()),
		Dependency: file.Dependencies(),
	}
	if pkg, ok := file.Package(); ok {
		fd.Package = proto.String(pkg)
	}
	for _, msg := range file.MessageTypes() {
		fd.MessageType = append(fd.MessageType, toDescriptorProto(msg))
	}
	for _, enum := range file.EnumTypes() {
		fd.EnumType = append(fd.EnumType, toEnumDescriptorProto(enum))
	}
	return fd
}

func toDescriptorProto(msg *ast.MessageType) *descriptorpb.DescriptorProto {
	md := &descriptorpb.DescriptorProto{Name: proto.String(msg.Name())}
	for _, fld := range msg.Fields() {
		md.Field = append(md.Field, toFieldDescriptorProto(fld))
	}
	return md
}

func toFieldDescriptorProto(fld *ast.Field) *descriptorpb.FieldDescriptorProto {
	fd := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(fld.Name()),
		Number:   proto.Int32(int32(fld.Tag())),
		JsonName: proto.String(internal.JSONName(fld.Name())),
	}
	if lbl, ok := labels[fld.Label()]; ok {
		fd.Label = lbl.Enum()
	}
	if typ, ok := internal.FieldTypes[fld.Type()]; ok {
		fd.Type = typ.Enum()
	} else {
		fd.TypeName = proto.String(fld.Type())
	}
	if def, ok := fld.Default(); ok {
		fd.DefaultValue = proto.String(def)
	}
	if fld.IsDeprecated() {
		fd.Options = &descriptorpb.FieldOptions{Deprecated: proto.Bool(true)}
	}
	return fd
}

func toEnumDescriptorProto(enum *ast.EnumType) *descriptorpb.EnumDescriptorProto {
	ed := &descriptorpb.EnumDescriptorProto{Name: proto.String(enum.Name())}
	for _, val := range enum.Values() {
		ed.Value = append(ed.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(val.Name()),
			Number: proto.Int32(int32(val.Tag())),
		})
	}
	return ed
}

// ToFileDescriptorSet converts all of the given files into a single
// descriptor set, in the order given.
func ToFileDescriptorSet(files ...*ast.File) *descriptorpb.FileDescriptorSet {
	set := &descriptorpb.FileDescriptorSet{}
	for _, f := range files {
		set.File = append(set.File, ToFileDescriptorProto(f))
	}
	return set
}
