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

// Execute runs a previously prepared statement by its opaque id, with QueryParameters supplying the
// bound values.
type Execute struct {
	Id      []byte
	Options *QueryParameters
}

func (m *Execute) IsResponse() bool         { return false }
func (m *Execute) OpCode() primitive.OpCode { return primitive.OpCodeExecute }
func (m *Execute) String() string           { return "EXECUTE" }

func (m *Execute) Encode(dest io.Writer) error {
	if err := primitive.WriteShortBytes(m.Id, dest); err != nil {
		return err
	}
	options := m.Options
	if options == nil {
		options = NewQueryParameters(primitive.ConsistencyLevelOne)
	}
	return options.Encode(dest)
}

func DecodeExecute(source io.Reader) (*Execute, error) {
	id, err := primitive.ReadShortBytes(source)
	if err != nil {
		return nil, err
	}
	options, err := DecodeQueryParameters(source)
	if err != nil {
		return nil, err
	}
	return &Execute{Id: id, Options: options}, nil
}
