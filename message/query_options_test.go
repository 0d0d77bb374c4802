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

func TestQueryParametersRoundTripNoExtensions(t *testing.T) {
	p := message.NewQueryParameters(primitive.ConsistencyLevelQuorum)
	buf := &bytes.Buffer{}
	require.NoError(t, p.Encode(buf))

	decoded, err := message.DecodeQueryParameters(buf)
	require.NoError(t, err)
	assert.Equal(t, primitive.ConsistencyLevelQuorum, decoded.Consistency)
	assert.Empty(t, decoded.Values)
	assert.Zero(t, decoded.PageSize)
	assert.Nil(t, decoded.PagingState)
}

func TestQueryParametersRoundTripPageSizeAndPagingState(t *testing.T) {
	p := &message.QueryParameters{
		Consistency: primitive.ConsistencyLevelOne,
		PageSize:    100,
		PagingState: []byte{0xde, 0xad, 0xbe, 0xef},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, p.Encode(buf))

	decoded, err := message.DecodeQueryParameters(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(100), decoded.PageSize)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, decoded.PagingState)
}

func TestQueryParametersRejectsInvalidConsistency(t *testing.T) {
	p := message.NewQueryParameters(primitive.ConsistencyLevel(0xffff))
	buf := &bytes.Buffer{}
	err := p.Encode(buf)
	require.Error(t, err)
}
