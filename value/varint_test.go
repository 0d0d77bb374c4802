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

package value_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/value"
)

func TestVarintParseTable(t *testing.T) {
	cases := []struct {
		bytes []byte
		n     int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7F}, 127},
		{[]byte{0x00, 0x80}, 128},
		{[]byte{0x00, 0x81}, 129},
		{[]byte{0xFF}, -1},
		{[]byte{0x80}, -128},
		{[]byte{0xFF, 0x7F}, -129},
	}
	for _, c := range cases {
		n, err := value.DecodeVarintInt64(c.bytes)
		require.NoError(t, err)
		assert.Equalf(t, c.n, n, "decoding % x", c.bytes)
		assert.Equalf(t, c.bytes, value.EncodeVarintInt64(c.n), "encoding %d", c.n)
	}
}

func TestVarintRoundTripSigned64BitRange(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808} {
		encoded := value.EncodeVarintInt64(n)
		decoded, err := value.DecodeVarintInt64(encoded)
		require.NoError(t, err)
		assert.Equal(t, n, decoded)
	}
}

func TestBigIntBeyondInt64IsUnimplemented(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	encoded := value.EncodeBigInt(huge)
	_, err := value.DecodeVarintInt64(encoded)
	require.Error(t, err)
	assert.True(t, cqlerr.Is(err, cqlerr.Unimplemented))
}

func TestBigIntRoundTrip(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	huge.Neg(huge)
	encoded := value.EncodeBigInt(huge)
	decoded := value.DecodeBigInt(encoded)
	assert.Equal(t, 0, huge.Cmp(decoded))
}
