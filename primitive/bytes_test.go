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

package primitive_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlgo/native3/primitive"
)

func TestBytesRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteBytes([]byte{1, 2, 3}, buf))
	decoded, err := primitive.ReadBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, decoded)
}

func TestBytesNull(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteBytes(nil, buf))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())
	decoded, err := primitive.ReadBytes(buf)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestShortBytesRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteShortBytes([]byte{9, 9}, buf))
	decoded, err := primitive.ReadShortBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 9}, decoded)
}

func TestShortBytesEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteShortBytes([]byte{}, buf))
	decoded, err := primitive.ReadShortBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{}, decoded)
}

func TestLongStringRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteLongString("SELECT * FROM t", buf))
	decoded, err := primitive.ReadLongString(buf)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t", decoded)
}

func TestUuidRoundTrip(t *testing.T) {
	var u primitive.UUID
	for i := range u {
		u[i] = byte(i)
	}
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteUuid(&u, buf))
	decoded, err := primitive.ReadUuid(buf)
	require.NoError(t, err)
	assert.Equal(t, u, *decoded)
}
