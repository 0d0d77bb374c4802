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

	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
)

func TestErrorAlreadyExistsRoundTrip(t *testing.T) {
	m := &message.Error{
		Code:     primitive.ErrorCodeAlreadyExists,
		Message:  "table already exists",
		Keyspace: "ks",
		Name:     "t",
	}
	buf := &bytes.Buffer{}
	require.NoError(t, m.Encode(buf))

	decoded, err := message.DecodeError(buf)
	require.NoError(t, err)
	assert.Equal(t, "ks", decoded.Keyspace)
	assert.Equal(t, "t", decoded.Name)
}

func TestErrorUnavailableRoundTrip(t *testing.T) {
	m := &message.Error{
		Code:        primitive.ErrorCodeUnavailable,
		Message:     "not enough replicas",
		Consistency: primitive.ConsistencyLevelQuorum,
		Required:    3,
		Alive:       1,
	}
	buf := &bytes.Buffer{}
	require.NoError(t, m.Encode(buf))

	decoded, err := message.DecodeError(buf)
	require.NoError(t, err)
	assert.Equal(t, primitive.ConsistencyLevelQuorum, decoded.Consistency)
	assert.EqualValues(t, 3, decoded.Required)
	assert.EqualValues(t, 1, decoded.Alive)
}

func TestErrorReadTimeoutRoundTrip(t *testing.T) {
	m := &message.Error{
		Code:        primitive.ErrorCodeReadTimeout,
		Message:     "read timed out",
		Consistency: primitive.ConsistencyLevelOne,
		Received:    1,
		BlockFor:    2,
		DataPresent: true,
	}
	buf := &bytes.Buffer{}
	require.NoError(t, m.Encode(buf))

	decoded, err := message.DecodeError(buf)
	require.NoError(t, err)
	assert.EqualValues(t, 1, decoded.Received)
	assert.EqualValues(t, 2, decoded.BlockFor)
	assert.True(t, decoded.DataPresent)
}

func TestErrorWriteTimeoutRoundTrip(t *testing.T) {
	m := &message.Error{
		Code:        primitive.ErrorCodeWriteTimeout,
		Message:     "write timed out",
		Consistency: primitive.ConsistencyLevelQuorum,
		Received:    1,
		BlockFor:    2,
		WriteType:   primitive.WriteTypeBatch,
	}
	buf := &bytes.Buffer{}
	require.NoError(t, m.Encode(buf))

	decoded, err := message.DecodeError(buf)
	require.NoError(t, err)
	assert.Equal(t, primitive.WriteTypeBatch, decoded.WriteType)
}

func TestErrorOpaqueTrailerIsNotParsed(t *testing.T) {
	m := &message.Error{Code: primitive.ErrorCodeSyntaxError, Message: "bad query"}
	buf := &bytes.Buffer{}
	require.NoError(t, m.Encode(buf))

	decoded, err := message.DecodeError(buf)
	require.NoError(t, err)
	assert.Equal(t, "bad query", decoded.Message)
}
