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

package value

import (
	"math/big"

	"github.com/cqlgo/native3/cqlerr"
)

// EncodeBigInt renders v as a minimal-length two's-complement big-endian byte slice, matching
// java.math.BigInteger.toByteArray() — the wire format CQL's Varint and Decimal-unscaled types use.
func EncodeBigInt(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	length := uint(v.BitLen()/8+1) * 8
	b := new(big.Int).Add(v, new(big.Int).Lsh(big.NewInt(1), length)).Bytes()
	// When the most significant bit falls on a byte boundary the result carries an extra
	// sign byte; strip it to keep the representation minimal.
	if len(b) >= 2 && b[0] == 0xff && b[1]&0x80 != 0 {
		b = b[1:]
	}
	return b
}

// DecodeBigInt parses b as a two's-complement big-endian integer of arbitrary length; the sign is
// determined by the top bit of the first byte.
func DecodeBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		pow := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		v.Sub(v, pow)
	}
	return v
}

// DecodeVarintInt64 parses b the same way DecodeBigInt does, then narrows to a signed 64-bit
// integer, returning an Unimplemented error if the value doesn't fit.
func DecodeVarintInt64(b []byte) (int64, error) {
	v := DecodeBigInt(b)
	if !v.IsInt64() {
		return 0, cqlerr.New(cqlerr.Unimplemented, "varint value %v does not fit in a signed 64-bit integer", v)
	}
	return v.Int64(), nil
}

// EncodeVarintInt64 is the int64-accepting counterpart to EncodeBigInt, for callers that only need
// the signed 64-bit range the reference behavior supports.
func EncodeVarintInt64(n int64) []byte {
	return EncodeBigInt(big.NewInt(n))
}
