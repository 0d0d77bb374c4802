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

package message

import (
	"io"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/datatype"
	"github.com/cqlgo/native3/primitive"
	"github.com/cqlgo/native3/value"
)

// QueryFlagValues is the [byte] flags bit this module always considers for positional values.
// PageSize and PagingState (0x04 and 0x08) are also implemented: they are commonly exercised and
// are trivial length-prefixed extensions over the core's values section. Serial consistency, default
// timestamp and named values are not implemented; the reference client never sets them.
const QueryFlagValues = primitive.QueryFlagValues

// QueryParameters is the [short] consistency, [byte] flags, flag-driven sections block shared by
// QUERY and EXECUTE. PageSize of 0 means "flag not set, no paging requested"; a caller wanting an
// explicit zero page size has no way to express it, matching how the flag is purely presence-driven
// on the wire.
type QueryParameters struct {
	Consistency primitive.ConsistencyLevel
	Values      []*value.Value
	PageSize    int32
	PagingState []byte
}

// NewQueryParameters builds parameters for consistency with no bound values.
func NewQueryParameters(consistency primitive.ConsistencyLevel) *QueryParameters {
	return &QueryParameters{Consistency: consistency}
}

func (p *QueryParameters) flags() primitive.QueryFlag {
	var flags primitive.QueryFlag
	if len(p.Values) > 0 {
		flags = flags.Add(QueryFlagValues)
	}
	if p.PageSize > 0 {
		flags = flags.Add(primitive.QueryFlagPageSize)
	}
	if p.PagingState != nil {
		flags = flags.Add(primitive.QueryFlagPagingState)
	}
	return flags
}

func (p *QueryParameters) Encode(dest io.Writer) error {
	if !p.Consistency.IsValid() {
		return cqlerr.New(cqlerr.Protocol, "invalid consistency level: %v", p.Consistency)
	}
	if err := primitive.WriteShort(uint16(p.Consistency), dest); err != nil {
		return err
	}
	flags := p.flags()
	if err := primitive.WriteByte(uint8(flags), dest); err != nil {
		return err
	}
	if len(p.Values) > 0 {
		if err := primitive.WriteShort(uint16(len(p.Values)), dest); err != nil {
			return err
		}
		for i, v := range p.Values {
			if err := value.Encode(v, dest); err != nil {
				return cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode bound value %d", i)
			}
		}
	}
	if flags.Contains(primitive.QueryFlagPageSize) {
		if err := primitive.WriteInt(p.PageSize, dest); err != nil {
			return cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode page size")
		}
	}
	if flags.Contains(primitive.QueryFlagPagingState) {
		if err := primitive.WriteBytes(p.PagingState, dest); err != nil {
			return cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode paging state")
		}
	}
	return nil
}

// DecodeQueryParameters reads the wire layout Encode produces. It is primarily exercised by tests
// and by any future server-side use of this module; the client itself only ever writes parameters.
func DecodeQueryParameters(source io.Reader) (*QueryParameters, error) {
	consistency, err := primitive.ReadShort(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot read consistency level")
	}
	rawFlags, err := primitive.ReadByte(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot read query flags")
	}
	flags := primitive.QueryFlag(rawFlags)
	p := &QueryParameters{Consistency: primitive.ConsistencyLevel(consistency)}
	if flags.Contains(QueryFlagValues) {
		count, err := primitive.ReadShort(source)
		if err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot read bound value count")
		}
		// Bound values carry no type tag on the wire: the server resolves their type from the
		// prepared statement's own metadata. Without that context this only recovers the raw bytes.
		unknownType := datatype.Primitive(primitive.DataTypeCodeCustom)
		p.Values = make([]*value.Value, count)
		for i := range p.Values {
			raw, err := primitive.ReadBytes(source)
			if err != nil {
				return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot read bound value %d", i)
			}
			p.Values[i] = value.NewUnknown(unknownType, raw)
		}
	}
	if flags.Contains(primitive.QueryFlagPageSize) {
		if p.PageSize, err = primitive.ReadInt(source); err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot read page size")
		}
	}
	if flags.Contains(primitive.QueryFlagPagingState) {
		if p.PagingState, err = primitive.ReadBytes(source); err != nil {
			return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot read paging state")
		}
	}
	return p, nil
}
