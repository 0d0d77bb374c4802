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

// Register subscribes the connection to server-pushed EVENT messages of the given types. The
// client sends it through Client.Register, but it reads exactly one response per request and treats
// any EVENT that arrives as an error, so the pushed events themselves are never delivered.
type Register struct {
	EventTypes []string
}

func (m *Register) IsResponse() bool         { return false }
func (m *Register) OpCode() primitive.OpCode { return primitive.OpCodeRegister }
func (m *Register) String() string           { return "REGISTER" }

func (m *Register) Encode(dest io.Writer) error {
	return primitive.WriteStringList(m.EventTypes, dest)
}

func DecodeRegister(source io.Reader) (*Register, error) {
	eventTypes, err := primitive.ReadStringList(source)
	if err != nil {
		return nil, err
	}
	return &Register{EventTypes: eventTypes}, nil
}
