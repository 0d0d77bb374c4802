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

// Supported is the reply to Options: the server's advertised option values (protocol versions,
// compression algorithms, CQL versions), keyed by option name.
type Supported struct {
	Options map[string][]string
}

func (m *Supported) IsResponse() bool         { return true }
func (m *Supported) OpCode() primitive.OpCode { return primitive.OpCodeSupported }
func (m *Supported) String() string           { return "SUPPORTED" }

func (m *Supported) Encode(dest io.Writer) error {
	return primitive.WriteStringMultiMap(m.Options, dest)
}

func DecodeSupported(source io.Reader) (*Supported, error) {
	options, err := primitive.ReadStringMultiMap(source)
	if err != nil {
		return nil, err
	}
	return &Supported{Options: options}, nil
}
