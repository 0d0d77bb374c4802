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

// Package value implements the CQL value model: a tagged sum of column values, and symmetric
// length-prefixed encode/decode driven by a column type descriptor (datatype.Descriptor).
package value

import (
	"math/big"
	"net"

	"github.com/cqlgo/native3/datatype"
	"github.com/cqlgo/native3/primitive"
)

// MapPair is one (key, value) entry of a decoded Map value, kept in wire order.
type MapPair struct {
	Key   *Value
	Value *Value
}

// Value is a tagged sum mirroring a column type descriptor. Which field is meaningful is
// determined by Type.Code, exactly as Type determines which field of datatype.Descriptor is
// meaningful. Null is the distinguished variant representing the protocol's -1 length marker; a
// Null Value carries no other payload.
type Value struct {
	Type *datatype.Descriptor
	Null bool

	Str   string
	I32   int32
	I64   int64
	Bool  bool
	F32   float32
	F64   float64
	Bytes []byte
	Uuid  *primitive.UUID
	Inet  net.IP

	DecimalScale    int32
	DecimalUnscaled *big.Int

	Varint *big.Int

	// Elems holds List/Set elements, or Tuple elements in descriptor order.
	Elems []*Value
	// Pairs holds Map entries in wire order.
	Pairs []MapPair
}

// NewNull builds the Null variant for type t.
func NewNull(t *datatype.Descriptor) *Value { return &Value{Type: t, Null: true} }

func NewVarChar(s string) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeVarchar), Str: s}
}

func NewAscii(s string) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeAscii), Str: s}
}

func NewText(s string) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeText), Str: s}
}

func NewInt(i int32) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeInt), I32: i}
}

func NewBigint(i int64) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeBigint), I64: i}
}

func NewTimestamp(i int64) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeTimestamp), I64: i}
}

func NewCounter(i int64) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeCounter), I64: i}
}

func NewBoolean(b bool) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeBoolean), Bool: b}
}

func NewFloat(f float32) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeFloat), F32: f}
}

func NewDouble(f float64) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeDouble), F64: f}
}

func NewBlob(b []byte) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeBlob), Bytes: b}
}

func NewUuid(u *primitive.UUID) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeUuid), Uuid: u}
}

func NewTimeUuid(u *primitive.UUID) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeTimeuuid), Uuid: u}
}

func NewInet(ip net.IP) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeInet), Inet: ip}
}

func NewDecimal(scale int32, unscaled *big.Int) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeDecimal), DecimalScale: scale, DecimalUnscaled: unscaled}
}

func NewVarint(v *big.Int) *Value {
	return &Value{Type: datatype.Primitive(primitive.DataTypeCodeVarint), Varint: v}
}

func NewList(elemType *datatype.Descriptor, elems []*Value) *Value {
	return &Value{Type: &datatype.Descriptor{Code: primitive.DataTypeCodeList, Elem: elemType}, Elems: elems}
}

func NewSet(elemType *datatype.Descriptor, elems []*Value) *Value {
	return &Value{Type: &datatype.Descriptor{Code: primitive.DataTypeCodeSet, Elem: elemType}, Elems: elems}
}

func NewMap(keyType, valueType *datatype.Descriptor, pairs []MapPair) *Value {
	return &Value{Type: &datatype.Descriptor{Code: primitive.DataTypeCodeMap, Key: keyType, Value: valueType}, Pairs: pairs}
}

func NewTuple(t *datatype.Descriptor, elems []*Value) *Value {
	return &Value{Type: t, Elems: elems}
}

// NewUnknown builds an Unknown-leaf value carrying its raw, unparsed body bytes.
func NewUnknown(t *datatype.Descriptor, raw []byte) *Value {
	return &Value{Type: t, Bytes: raw}
}
