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
	"bytes"
	"io"
	"math"
	"net"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/datatype"
	"github.com/cqlgo/native3/primitive"
)

// Encode writes v to dest as a [int]-length-prefixed cell: Null writes len = -1 and no body,
// everything else writes the body length followed by the body. The body is built in memory first
// since its length must precede it and dest need not support seeking.
func Encode(v *Value, dest io.Writer) error {
	if v == nil || v.Null {
		return primitive.WriteInt(-1, dest)
	}
	body, err := encodeBody(v)
	if err != nil {
		return err
	}
	if err := primitive.WriteInt(int32(len(body)), dest); err != nil {
		return err
	}
	if _, err := dest.Write(body); err != nil {
		return cqlerr.Wrap(cqlerr.Io, err, "cannot write value body")
	}
	return nil
}

func encodeBody(v *Value) ([]byte, error) {
	buf := &bytes.Buffer{}
	switch v.Type.Code {
	case primitive.DataTypeCodeAscii, primitive.DataTypeCodeText, primitive.DataTypeCodeVarchar:
		buf.WriteString(v.Str)
	case primitive.DataTypeCodeBoolean:
		if v.Bool {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case primitive.DataTypeCodeInt:
		if err := primitive.WriteInt(v.I32, buf); err != nil {
			return nil, err
		}
	case primitive.DataTypeCodeBigint, primitive.DataTypeCodeTimestamp, primitive.DataTypeCodeCounter:
		if err := primitive.WriteLong(v.I64, buf); err != nil {
			return nil, err
		}
	case primitive.DataTypeCodeFloat:
		if err := primitive.WriteInt(int32(math.Float32bits(v.F32)), buf); err != nil {
			return nil, err
		}
	case primitive.DataTypeCodeDouble:
		if err := primitive.WriteLong(int64(math.Float64bits(v.F64)), buf); err != nil {
			return nil, err
		}
	case primitive.DataTypeCodeUuid, primitive.DataTypeCodeTimeuuid:
		if v.Uuid == nil {
			return nil, cqlerr.New(cqlerr.Protocol, "cannot encode nil uuid value")
		}
		buf.Write(v.Uuid[:])
	case primitive.DataTypeCodeInet:
		ip4 := v.Inet.To4()
		if ip4 != nil {
			buf.Write(ip4)
		} else {
			buf.Write(v.Inet.To16())
		}
	case primitive.DataTypeCodeDecimal:
		if err := primitive.WriteInt(v.DecimalScale, buf); err != nil {
			return nil, err
		}
		buf.Write(EncodeBigInt(v.DecimalUnscaled))
	case primitive.DataTypeCodeVarint:
		buf.Write(EncodeBigInt(v.Varint))
	case primitive.DataTypeCodeBlob, primitive.DataTypeCodeCustom:
		buf.Write(v.Bytes)
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		if err := primitive.WriteInt(int32(len(v.Elems)), buf); err != nil {
			return nil, err
		}
		for i, elem := range v.Elems {
			if err := Encode(elem, buf); err != nil {
				return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode element %d", i)
			}
		}
	case primitive.DataTypeCodeMap:
		if err := primitive.WriteInt(int32(len(v.Pairs)), buf); err != nil {
			return nil, err
		}
		for i, pair := range v.Pairs {
			if err := Encode(pair.Key, buf); err != nil {
				return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode map entry %d key", i)
			}
			if err := Encode(pair.Value, buf); err != nil {
				return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode map entry %d value", i)
			}
		}
	case primitive.DataTypeCodeTuple:
		for i, elem := range v.Elems {
			if err := Encode(elem, buf); err != nil {
				return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode tuple element %d", i)
			}
		}
	default:
		// Unknown leaf: re-emit the raw bytes captured at decode time unchanged.
		buf.Write(v.Bytes)
	}
	return buf.Bytes(), nil
}

// Decode reads one [int]-length-prefixed cell from source, dispatching on t. A length of -1 yields
// the Null variant with no further reads. Unknown or unimplemented leaf types still consume exactly
// their declared length and yield an Unknown value.
func Decode(t *datatype.Descriptor, source io.Reader) (*Value, error) {
	length, err := primitive.ReadInt(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read value length")
	}
	if length < 0 {
		return NewNull(t), nil
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(source, body); err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read value body of length %d", length)
	}
	log.Trace().Stringer("type", t).Int32("length", length).Msg("decoding value")
	return decodeBody(t, body)
}

func decodeBody(t *datatype.Descriptor, body []byte) (*Value, error) {
	switch t.Code {
	case primitive.DataTypeCodeAscii, primitive.DataTypeCodeText, primitive.DataTypeCodeVarchar:
		if !utf8.Valid(body) {
			return nil, cqlerr.New(cqlerr.Utf8, "value content is not valid UTF-8")
		}
		return &Value{Type: t, Str: string(body)}, nil
	case primitive.DataTypeCodeBoolean:
		if len(body) != 1 {
			return nil, cqlerr.New(cqlerr.Protocol, "boolean value must be 1 byte, got %d", len(body))
		}
		return &Value{Type: t, Bool: body[0] != 0}, nil
	case primitive.DataTypeCodeInt:
		if len(body) != 4 {
			return nil, cqlerr.New(cqlerr.Protocol, "int value must be 4 bytes, got %d", len(body))
		}
		i, err := primitive.ReadInt(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		return &Value{Type: t, I32: i}, nil
	case primitive.DataTypeCodeBigint, primitive.DataTypeCodeTimestamp, primitive.DataTypeCodeCounter:
		if len(body) != 8 {
			return nil, cqlerr.New(cqlerr.Protocol, "%v value must be 8 bytes, got %d", t.Code, len(body))
		}
		i, err := primitive.ReadLong(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		return &Value{Type: t, I64: i}, nil
	case primitive.DataTypeCodeFloat:
		if len(body) != 4 {
			return nil, cqlerr.New(cqlerr.Protocol, "float value must be 4 bytes, got %d", len(body))
		}
		bits, err := primitive.ReadInt(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		return &Value{Type: t, F32: math.Float32frombits(uint32(bits))}, nil
	case primitive.DataTypeCodeDouble:
		if len(body) != 8 {
			return nil, cqlerr.New(cqlerr.Protocol, "double value must be 8 bytes, got %d", len(body))
		}
		bits, err := primitive.ReadLong(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		return &Value{Type: t, F64: math.Float64frombits(uint64(bits))}, nil
	case primitive.DataTypeCodeUuid, primitive.DataTypeCodeTimeuuid:
		if len(body) != primitive.LengthOfUuid {
			return nil, cqlerr.New(cqlerr.Protocol, "%v value must be 16 bytes, got %d", t.Code, len(body))
		}
		u := new(primitive.UUID)
		copy(u[:], body)
		return &Value{Type: t, Uuid: u}, nil
	case primitive.DataTypeCodeInet:
		if len(body) != 4 && len(body) != 16 {
			return nil, cqlerr.New(cqlerr.Protocol, "inet value must be 4 or 16 bytes, got %d", len(body))
		}
		ip := make(net.IP, len(body))
		copy(ip, body)
		return &Value{Type: t, Inet: ip}, nil
	case primitive.DataTypeCodeDecimal:
		if len(body) < 4 {
			return nil, cqlerr.New(cqlerr.Protocol, "decimal value must be at least 4 bytes, got %d", len(body))
		}
		scale, err := primitive.ReadInt(bytes.NewReader(body[:4]))
		if err != nil {
			return nil, err
		}
		return &Value{Type: t, DecimalScale: scale, DecimalUnscaled: DecodeBigInt(body[4:])}, nil
	case primitive.DataTypeCodeVarint:
		return &Value{Type: t, Varint: DecodeBigInt(body)}, nil
	case primitive.DataTypeCodeBlob, primitive.DataTypeCodeCustom:
		return &Value{Type: t, Bytes: body}, nil
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		return decodeCollection(t, body)
	case primitive.DataTypeCodeMap:
		return decodeMap(t, body)
	case primitive.DataTypeCodeTuple:
		return decodeTuple(t, body)
	default:
		return NewUnknown(t, body), nil
	}
}

func decodeCollection(t *datatype.Descriptor, body []byte) (*Value, error) {
	r := bytes.NewReader(body)
	n, err := primitive.ReadInt(r)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read %v element count", t.Code)
	}
	if n < 0 {
		return nil, cqlerr.New(cqlerr.Protocol, "%v element count cannot be negative: %d", t.Code, n)
	}
	elems := make([]*Value, n)
	for i := range elems {
		elems[i], err = Decode(t.Elem, r)
		if err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot decode %v element %d", t.Code, i)
		}
	}
	return &Value{Type: t, Elems: elems}, nil
}

func decodeMap(t *datatype.Descriptor, body []byte) (*Value, error) {
	r := bytes.NewReader(body)
	n, err := primitive.ReadInt(r)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read map entry count")
	}
	if n < 0 {
		return nil, cqlerr.New(cqlerr.Protocol, "map entry count cannot be negative: %d", n)
	}
	pairs := make([]MapPair, n)
	for i := range pairs {
		key, err := Decode(t.Key, r)
		if err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot decode map entry %d key", i)
		}
		val, err := Decode(t.Value, r)
		if err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot decode map entry %d value", i)
		}
		pairs[i] = MapPair{Key: key, Value: val}
	}
	return &Value{Type: t, Pairs: pairs}, nil
}

// decodeTuple decodes fixed-arity values following the tuple's descriptors: no outer count, arity
// is known from t.Elements. A tuple whose body ends early leaves the remaining elements Null, which
// Cassandra does for trailing unset tuple fields.
func decodeTuple(t *datatype.Descriptor, body []byte) (*Value, error) {
	r := bytes.NewReader(body)
	elems := make([]*Value, len(t.Elements))
	for i, elemType := range t.Elements {
		if r.Len() == 0 {
			elems[i] = NewNull(elemType)
			continue
		}
		elem, err := Decode(elemType, r)
		if err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot decode tuple element %d", i)
		}
		elems[i] = elem
	}
	return &Value{Type: t, Elems: elems}, nil
}
