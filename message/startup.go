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

// Startup is the first message a client sends after opening a connection. Its Options map must at
// minimum carry CQL_VERSION; COMPRESSION may also be present, though this module never sets it since
// frame compression is out of scope.
type Startup struct {
	Options map[string]string
}

// NewStartup builds a Startup carrying only the CQL version this module speaks.
func NewStartup() *Startup {
	return &Startup{Options: map[string]string{"CQL_VERSION": "3.0.0"}}
}

func (m *Startup) IsResponse() bool         { return false }
func (m *Startup) OpCode() primitive.OpCode { return primitive.OpCodeStartup }
func (m *Startup) String() string           { return "STARTUP " + m.Options["CQL_VERSION"] }

func (m *Startup) Encode(dest io.Writer) error {
	return primitive.WriteStringMap(m.Options, dest)
}

func DecodeStartup(source io.Reader) (*Startup, error) {
	options, err := primitive.ReadStringMap(source)
	if err != nil {
		return nil, err
	}
	return &Startup{Options: options}, nil
}
