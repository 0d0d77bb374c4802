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

package datatype_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlgo/native3/datatype"
	"github.com/cqlgo/native3/primitive"
)

func roundTrip(t *testing.T, d *datatype.Descriptor) *datatype.Descriptor {
	buf := &bytes.Buffer{}
	require.NoError(t, datatype.WriteDescriptor(d, buf))
	assert.Equal(t, datatype.LengthOfDescriptor(d), buf.Len())
	decoded, err := datatype.ReadDescriptor(buf)
	require.NoError(t, err)
	return decoded
}

func TestPrimitiveDescriptor(t *testing.T) {
	decoded := roundTrip(t, datatype.Primitive(primitive.DataTypeCodeVarchar))
	assert.Equal(t, primitive.DataTypeCodeVarchar, decoded.Code)
	assert.True(t, decoded.IsPrimitive())
}

func TestListOfSetOfInt(t *testing.T) {
	d := &datatype.Descriptor{
		Code: primitive.DataTypeCodeList,
		Elem: &datatype.Descriptor{
			Code: primitive.DataTypeCodeSet,
			Elem: datatype.Primitive(primitive.DataTypeCodeInt),
		},
	}
	decoded := roundTrip(t, d)
	require.Equal(t, primitive.DataTypeCodeList, decoded.Code)
	require.Equal(t, primitive.DataTypeCodeSet, decoded.Elem.Code)
	assert.Equal(t, primitive.DataTypeCodeInt, decoded.Elem.Elem.Code)
	assert.False(t, decoded.IsPrimitive())
}

func TestMapTextToTupleIntListBoolean(t *testing.T) {
	// List<Map<Text, Tuple<Int, List<Boolean>>>> — exercises arbitrary nesting depth.
	inner := &datatype.Descriptor{
		Code: primitive.DataTypeCodeTuple,
		Elements: []*datatype.Descriptor{
			datatype.Primitive(primitive.DataTypeCodeInt),
			{Code: primitive.DataTypeCodeList, Elem: datatype.Primitive(primitive.DataTypeCodeBoolean)},
		},
	}
	m := &datatype.Descriptor{
		Code:  primitive.DataTypeCodeMap,
		Key:   datatype.Primitive(primitive.DataTypeCodeText),
		Value: inner,
	}
	outer := &datatype.Descriptor{Code: primitive.DataTypeCodeList, Elem: m}

	decoded := roundTrip(t, outer)
	require.Equal(t, primitive.DataTypeCodeMap, decoded.Elem.Code)
	require.Equal(t, primitive.DataTypeCodeTuple, decoded.Elem.Value.Code)
	require.Len(t, decoded.Elem.Value.Elements, 2)
	assert.Equal(t, primitive.DataTypeCodeBoolean, decoded.Elem.Value.Elements[1].Elem.Code)
}

func TestCustomDescriptor(t *testing.T) {
	d := &datatype.Descriptor{Code: primitive.DataTypeCodeCustom, Custom: "org.apache.cassandra.db.marshal.LexicalUUIDType"}
	decoded := roundTrip(t, d)
	assert.Equal(t, "org.apache.cassandra.db.marshal.LexicalUUIDType", decoded.Custom)
}

func TestTupleDescriptor(t *testing.T) {
	d := &datatype.Descriptor{
		Code: primitive.DataTypeCodeTuple,
		Elements: []*datatype.Descriptor{
			datatype.Primitive(primitive.DataTypeCodeInt),
			datatype.Primitive(primitive.DataTypeCodeVarchar),
			datatype.Primitive(primitive.DataTypeCodeFloat),
		},
	}
	decoded := roundTrip(t, d)
	require.Len(t, decoded.Elements, 3)
	assert.Equal(t, primitive.DataTypeCodeFloat, decoded.Elements[2].Code)
}

func TestUdtDescriptorIsSkippable(t *testing.T) {
	d := &datatype.Descriptor{
		Code:     primitive.DataTypeCodeUdt,
		Keyspace: "rust",
		Name:     "address",
		Fields: []datatype.UdtField{
			{Name: "street", Type: datatype.Primitive(primitive.DataTypeCodeVarchar)},
			{Name: "zip", Type: datatype.Primitive(primitive.DataTypeCodeInt)},
		},
	}
	decoded := roundTrip(t, d)
	assert.Equal(t, "rust", decoded.Keyspace)
	require.Len(t, decoded.Fields, 2)
	assert.Equal(t, "zip", decoded.Fields[1].Name)
	assert.False(t, decoded.IsPrimitive())
}

func TestUnknownTypeCodeIsPrimitiveLeaf(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteShort(0x00FF, buf))
	decoded, err := datatype.ReadDescriptor(buf)
	require.NoError(t, err)
	assert.True(t, decoded.IsPrimitive())
	assert.Equal(t, primitive.DataTypeCode(0x00FF), decoded.Code)
}
