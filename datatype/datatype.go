// Copyright 2020 DataStax
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

// Package datatype models the recursive column type descriptor carried in result and prepared
// metadata: a self-describing tree of primitives, collections, tuples, custom types and UDTs.
// Descriptors are read-only from the client's perspective in protocol v3 — the server is always the
// one emitting them — but WriteDescriptor/LengthOfDescriptor are provided for symmetric round-trip
// testing.
package datatype

import (
	"fmt"
	"io"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/primitive"
)

// UdtField is one field of a user-defined type descriptor.
type UdtField struct {
	Name string
	Type *Descriptor
}

// Descriptor is a recursive sum describing a column's CQL type. Exactly one set of fields is
// meaningful for a given Code: Custom for DataTypeCodeCustom, Elem for List/Set, Key+Value for Map,
// Elements for Tuple, and Keyspace/Name/Fields for Udt. Primitive leaves use only Code.
type Descriptor struct {
	Code primitive.DataTypeCode

	// Custom carries the server-supplied fully-qualified class name for DataTypeCodeCustom.
	Custom string

	// Elem is the nested element descriptor for List and Set.
	Elem *Descriptor

	// Key and Value are the nested descriptors for Map.
	Key   *Descriptor
	Value *Descriptor

	// Elements are the fixed-arity nested descriptors for Tuple.
	Elements []*Descriptor

	// Keyspace, Name and Fields describe a Udt. Udt values are not decoded (they yield Unknown);
	// the descriptor is still parsed so the stream position stays correct for sibling columns.
	Keyspace string
	Name     string
	Fields   []UdtField
}

// IsPrimitive reports whether d is a leaf primitive type (including Unknown).
func (d *Descriptor) IsPrimitive() bool {
	switch d.Code {
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet, primitive.DataTypeCodeMap,
		primitive.DataTypeCodeTuple, primitive.DataTypeCodeUdt, primitive.DataTypeCodeCustom:
		return false
	default:
		return true
	}
}

func (d *Descriptor) String() string {
	switch d.Code {
	case primitive.DataTypeCodeCustom:
		return fmt.Sprintf("Custom(%s)", d.Custom)
	case primitive.DataTypeCodeList:
		return fmt.Sprintf("List(%v)", d.Elem)
	case primitive.DataTypeCodeSet:
		return fmt.Sprintf("Set(%v)", d.Elem)
	case primitive.DataTypeCodeMap:
		return fmt.Sprintf("Map(%v, %v)", d.Key, d.Value)
	case primitive.DataTypeCodeTuple:
		return fmt.Sprintf("Tuple%v", d.Elements)
	case primitive.DataTypeCodeUdt:
		return fmt.Sprintf("Udt(%s.%s)", d.Keyspace, d.Name)
	default:
		return d.Code.String()
	}
}

// Primitive builds a leaf descriptor for a non-recursive primitive code.
func Primitive(code primitive.DataTypeCode) *Descriptor {
	return &Descriptor{Code: code}
}

// ReadDescriptor reads one [short] type id and recurses as needed: Custom reads a class name,
// List/Set read one nested descriptor, Map reads two, Tuple reads an arity-prefixed sequence,
// Udt reads keyspace/name/fields, and any other id is treated as a primitive leaf (unknown ids
// included; they still obey the length-prefixed skip discipline during value decoding).
func ReadDescriptor(source io.Reader) (*Descriptor, error) {
	code, err := primitive.ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read data type code: %w", err)
	}
	return readDescriptorBody(primitive.DataTypeCode(code), source)
}

func readDescriptorBody(code primitive.DataTypeCode, source io.Reader) (*Descriptor, error) {
	switch code {
	case primitive.DataTypeCodeCustom:
		name, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read custom type class name: %w", err)
		}
		return &Descriptor{Code: code, Custom: name}, nil
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		elem, err := ReadDescriptor(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read %v element type: %w", code, err)
		}
		return &Descriptor{Code: code, Elem: elem}, nil
	case primitive.DataTypeCodeMap:
		key, err := ReadDescriptor(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read map key type: %w", err)
		}
		value, err := ReadDescriptor(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read map value type: %w", err)
		}
		return &Descriptor{Code: code, Key: key, Value: value}, nil
	case primitive.DataTypeCodeTuple:
		n, err := primitive.ReadShort(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read tuple arity: %w", err)
		}
		elements := make([]*Descriptor, n)
		for i := range elements {
			elements[i], err = ReadDescriptor(source)
			if err != nil {
				return nil, fmt.Errorf("cannot read tuple element %d type: %w", i, err)
			}
		}
		return &Descriptor{Code: code, Elements: elements}, nil
	case primitive.DataTypeCodeUdt:
		keyspace, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read udt keyspace: %w", err)
		}
		name, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read udt name: %w", err)
		}
		n, err := primitive.ReadShort(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read udt field count: %w", err)
		}
		fields := make([]UdtField, n)
		for i := range fields {
			fieldName, err := primitive.ReadString(source)
			if err != nil {
				return nil, fmt.Errorf("cannot read udt field %d name: %w", i, err)
			}
			fieldType, err := ReadDescriptor(source)
			if err != nil {
				return nil, fmt.Errorf("cannot read udt field %d type: %w", i, err)
			}
			fields[i] = UdtField{Name: fieldName, Type: fieldType}
		}
		return &Descriptor{Code: code, Keyspace: keyspace, Name: name, Fields: fields}, nil
	default:
		return &Descriptor{Code: code}, nil
	}
}

// WriteDescriptor writes d in the pre-order layout ReadDescriptor expects.
func WriteDescriptor(d *Descriptor, dest io.Writer) error {
	if d == nil {
		return cqlerr.New(cqlerr.Protocol, "cannot write nil data type descriptor")
	}
	if err := primitive.WriteShort(uint16(d.Code), dest); err != nil {
		return fmt.Errorf("cannot write data type code: %w", err)
	}
	switch d.Code {
	case primitive.DataTypeCodeCustom:
		return primitive.WriteString(d.Custom, dest)
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		return WriteDescriptor(d.Elem, dest)
	case primitive.DataTypeCodeMap:
		if err := WriteDescriptor(d.Key, dest); err != nil {
			return err
		}
		return WriteDescriptor(d.Value, dest)
	case primitive.DataTypeCodeTuple:
		if err := primitive.WriteShort(uint16(len(d.Elements)), dest); err != nil {
			return err
		}
		for _, elem := range d.Elements {
			if err := WriteDescriptor(elem, dest); err != nil {
				return err
			}
		}
		return nil
	case primitive.DataTypeCodeUdt:
		if err := primitive.WriteString(d.Keyspace, dest); err != nil {
			return err
		}
		if err := primitive.WriteString(d.Name, dest); err != nil {
			return err
		}
		if err := primitive.WriteShort(uint16(len(d.Fields)), dest); err != nil {
			return err
		}
		for _, field := range d.Fields {
			if err := primitive.WriteString(field.Name, dest); err != nil {
				return err
			}
			if err := WriteDescriptor(field.Type, dest); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// LengthOfDescriptor computes the encoded length of d: the number of bytes WriteDescriptor writes.
func LengthOfDescriptor(d *Descriptor) int {
	length := primitive.LengthOfShort
	switch d.Code {
	case primitive.DataTypeCodeCustom:
		length += primitive.LengthOfString(d.Custom)
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		length += LengthOfDescriptor(d.Elem)
	case primitive.DataTypeCodeMap:
		length += LengthOfDescriptor(d.Key) + LengthOfDescriptor(d.Value)
	case primitive.DataTypeCodeTuple:
		length += primitive.LengthOfShort
		for _, elem := range d.Elements {
			length += LengthOfDescriptor(elem)
		}
	case primitive.DataTypeCodeUdt:
		length += primitive.LengthOfString(d.Keyspace) + primitive.LengthOfString(d.Name) + primitive.LengthOfShort
		for _, field := range d.Fields {
			length += primitive.LengthOfString(field.Name) + LengthOfDescriptor(field.Type)
		}
	}
	return length
}
