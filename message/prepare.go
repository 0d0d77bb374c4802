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

// Prepare asks the server to parse and cache a query, returning a Prepared result carrying an
// opaque statement id for later Execute calls.
type Prepare struct {
	Query string
}

func (m *Prepare) IsResponse() bool         { return false }
func (m *Prepare) OpCode() primitive.OpCode { return primitive.OpCodePrepare }
func (m *Prepare) String() string           { return "PREPARE " + m.Query }

func (m *Prepare) Encode(dest io.Writer) error {
	return primitive.WriteLongString(m.Query, dest)
}

func DecodePrepare(source io.Reader) (*Prepare, error) {
	query, err := primitive.ReadLongString(source)
	if err != nil {
		return nil, err
	}
	return &Prepare{Query: query}, nil
}
