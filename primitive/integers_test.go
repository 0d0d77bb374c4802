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

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/primitive"
)

func TestByteRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteByte(0xAB, buf))
	assert.Equal(t, []byte{0xAB}, buf.Bytes())
	decoded, err := primitive.ReadByte(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), decoded)
}

func TestShortRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteShort(0x1234, buf))
	assert.Equal(t, []byte{0x12, 0x34}, buf.Bytes())
	decoded, err := primitive.ReadShort(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), decoded)
}

func TestIntRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteInt(-1, buf))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())
	decoded, err := primitive.ReadInt(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), decoded)
}

func TestLongRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteLong(1<<40, buf))
	decoded, err := primitive.ReadLong(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), decoded)
}

func TestReadIntUnexpectedEOF(t *testing.T) {
	_, err := primitive.ReadInt(bytes.NewReader([]byte{0x00, 0x01}))
	require.Error(t, err)
	assert.True(t, cqlerr.Is(err, cqlerr.UnexpectedEOF))
}
