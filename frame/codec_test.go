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

package frame_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlgo/native3/frame"
	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
)

func TestDecodeFrameReady(t *testing.T) {
	input := []byte{131, 0, 0, 1, 2, 0, 0, 0, 0}
	f, err := frame.NewCodec().DecodeFrame(bytes.NewReader(input))
	require.NoError(t, err)
	assert.True(t, f.Header.IsResponse)
	assert.EqualValues(t, 1, f.Header.StreamId)
	assert.Equal(t, primitive.OpCodeReady, f.Header.OpCode)
	assert.EqualValues(t, 0, f.Header.BodyLength)
	_, ok := f.Body.(*message.Ready)
	assert.True(t, ok)
}

func TestDecodeFrameErrorAlreadyExists(t *testing.T) {
	input := []byte{131, 0, 0, 0, 0, 0, 0, 0, 49, 0, 0, 0x24, 0, 0, 35}
	input = append(input, []byte(`Cannot add existing keyspace "rust"`)...)
	input = append(input, 0, 4, 'r', 'u', 's', 't', 0, 0)
	f, err := frame.NewCodec().DecodeFrame(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, primitive.OpCodeError, f.Header.OpCode)
	body := f.Body.(*message.Error)
	assert.Equal(t, primitive.ErrorCodeAlreadyExists, body.Code)
	assert.Equal(t, `Cannot add existing keyspace "rust"`, body.Message)
	assert.Equal(t, "rust", body.Keyspace)
	assert.Equal(t, "", body.Name)
}

func TestDecodeFrameSchemaChangeKeyspace(t *testing.T) {
	input := []byte{
		131, 0, 0, 0, 8, 0, 0, 0, 29,
		0, 0, 0, 5,
		0, 7, 'C', 'R', 'E', 'A', 'T', 'E', 'D',
		0, 8, 'K', 'E', 'Y', 'S', 'P', 'A', 'C', 'E',
		0, 4, 'r', 'u', 's', 't',
	}
	f, err := frame.NewCodec().DecodeFrame(bytes.NewReader(input))
	require.NoError(t, err)
	sc := f.Body.(*message.SchemaChange)
	assert.Equal(t, "CREATED", sc.ChangeType)
	assert.Equal(t, "KEYSPACE", sc.Target)
	assert.Equal(t, "rust", sc.Keyspace)
	assert.Equal(t, "", sc.Name)
}

func TestDecodeFrameSchemaChangeTable(t *testing.T) {
	input := []byte{
		131, 0, 0, 0, 8, 0, 0, 0, 32,
		0, 0, 0, 5,
		0, 7, 'C', 'R', 'E', 'A', 'T', 'E', 'D',
		0, 5, 'T', 'A', 'B', 'L', 'E',
		0, 4, 'r', 'u', 's', 't',
		0, 4, 't', 'e', 's', 't',
	}
	f, err := frame.NewCodec().DecodeFrame(bytes.NewReader(input))
	require.NoError(t, err)
	sc := f.Body.(*message.SchemaChange)
	assert.Equal(t, "TABLE", sc.Target)
	assert.Equal(t, "test", sc.Name)
}

func TestDecodeFrameResultVoid(t *testing.T) {
	input := []byte{131, 0, 0, 0, 8, 0, 0, 0, 4, 0, 0, 0, 1}
	f, err := frame.NewCodec().DecodeFrame(bytes.NewReader(input))
	require.NoError(t, err)
	_, ok := f.Body.(*message.Void)
	assert.True(t, ok)
}

func TestDecodeFrameResultRows(t *testing.T) {
	input := []byte{
		131, 0, 0, 0, 8,
		0, 0, 0, 59, // body length
		0, 0, 0, 2, // kind = Rows
		0, 0, 0, 1, // flags = GLOBAL_TABLES_SPEC
		0, 0, 0, 2, // column count
		0, 4, 'r', 'u', 's', 't',
		0, 4, 't', 'e', 's', 't',
		0, 2, 'i', 'd', 0x00, 0x0D, // varchar
		0, 5, 'v', 'a', 'l', 'u', 'e', 0x00, 0x08, // float
		0, 0, 0, 1, // row count
		0, 0, 0, 4, 'a', 's', 'd', 'f',
		0, 0, 0, 4, 0x3F, 0x9E, 0x04, 0x19,
	}
	f, err := frame.NewCodec().DecodeFrame(bytes.NewReader(input))
	require.NoError(t, err)
	rows := f.Body.(*message.Rows)
	require.Len(t, rows.Rows, 1)
	row := rows.Rows[0]
	assert.Equal(t, "asdf", row.Values[0].Str)
	assert.InDelta(t, 1.2345, row.Values[1].F32, 1e-6)
}
