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

package message_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
	"github.com/cqlgo/native3/value"
)

func TestDecodeResultVoid(t *testing.T) {
	body := []byte{0, 0, 0, 1}
	msg, err := message.DecodeResult(bytes.NewReader(body))
	require.NoError(t, err)
	_, ok := msg.(*message.Void)
	assert.True(t, ok)
}

func TestDecodeSchemaChangeKeyspace(t *testing.T) {
	body := []byte{
		0, 0, 0, 5, // kind = SchemaChange
		0, 7, 'C', 'R', 'E', 'A', 'T', 'E', 'D',
		0, 8, 'K', 'E', 'Y', 'S', 'P', 'A', 'C', 'E',
		0, 4, 'r', 'u', 's', 't',
	}
	msg, err := message.DecodeResult(bytes.NewReader(body))
	require.NoError(t, err)
	sc := msg.(*message.SchemaChange)
	assert.Equal(t, "CREATED", sc.ChangeType)
	assert.Equal(t, "KEYSPACE", sc.Target)
	assert.Equal(t, "rust", sc.Keyspace)
	assert.Equal(t, "", sc.Name)
}

func TestDecodeSchemaChangeTable(t *testing.T) {
	body := []byte{
		0, 0, 0, 5,
		0, 7, 'C', 'R', 'E', 'A', 'T', 'E', 'D',
		0, 5, 'T', 'A', 'B', 'L', 'E',
		0, 4, 'r', 'u', 's', 't',
		0, 4, 't', 'e', 's', 't',
	}
	msg, err := message.DecodeResult(bytes.NewReader(body))
	require.NoError(t, err)
	sc := msg.(*message.SchemaChange)
	assert.Equal(t, "TABLE", sc.Target)
	assert.Equal(t, "rust", sc.Keyspace)
	assert.Equal(t, "test", sc.Name)
}

func TestDecodeSchemaChangeIllegalTarget(t *testing.T) {
	body := []byte{
		0, 0, 0, 5,
		0, 7, 'C', 'R', 'E', 'A', 'T', 'E', 'D',
		0, 8, 'F', 'U', 'N', 'C', 'T', 'I', 'O', 'N',
		0, 4, 'r', 'u', 's', 't',
	}
	_, err := message.DecodeResult(bytes.NewReader(body))
	require.Error(t, err)
	assert.True(t, cqlerr.Is(err, cqlerr.Protocol))
}

func TestDecodeErrorAlreadyExists(t *testing.T) {
	body := []byte{
		0, 0, 0x24, 0,
		0, 35,
	}
	body = append(body, []byte(`Cannot add existing keyspace "rust"`)...)
	body = append(body, 0, 4, 'r', 'u', 's', 't', 0, 0)
	msg, err := message.DecodeError(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, primitive.ErrorCodeAlreadyExists, msg.Code)
	assert.Equal(t, `Cannot add existing keyspace "rust"`, msg.Message)
	assert.Equal(t, "rust", msg.Keyspace)
	assert.Equal(t, "", msg.Name)
}

func TestRowGetColumn(t *testing.T) {
	metadata := &message.Metadata{ColumnCount: 1, Columns: []*message.ColumnMeta{{Name: "id"}}}
	row := &message.Row{Metadata: metadata, Values: []*value.Value{value.NewInt(7)}}

	v, ok := row.GetColumn("id")
	require.True(t, ok)
	assert.Equal(t, int32(7), v.I32)

	_, ok = row.GetColumn("missing")
	assert.False(t, ok)
}
