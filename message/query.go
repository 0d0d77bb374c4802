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

	"github.com/cqlgo/native3/primitive"
)

// Query is a [long string] query followed by QueryParameters.
type Query struct {
	Query   string
	Options *QueryParameters
}

func (m *Query) IsResponse() bool         { return false }
func (m *Query) OpCode() primitive.OpCode { return primitive.OpCodeQuery }
func (m *Query) String() string           { return "QUERY " + m.Query }

func (m *Query) Encode(dest io.Writer) error {
	if err := primitive.WriteLongString(m.Query, dest); err != nil {
		return err
	}
	options := m.Options
	if options == nil {
		options = NewQueryParameters(primitive.ConsistencyLevelOne)
	}
	return options.Encode(dest)
}

func DecodeQuery(source io.Reader) (*Query, error) {
	query, err := primitive.ReadLongString(source)
	if err != nil {
		return nil, err
	}
	options, err := DecodeQueryParameters(source)
	if err != nil {
		return nil, err
	}
	return &Query{Query: query, Options: options}, nil
}
