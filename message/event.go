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

// Event is a server-pushed notification following a REGISTER subscription. The full event payload
// shapes (SCHEMA_CHANGE/STATUS_CHANGE/TOPOLOGY_CHANGE) are not modeled; only enough is decoded to
// keep the frame reader's stream position correct. The client treats any EVENT it reads as a
// protocol violation, even after Client.Register, since it enforces a single in-flight request per
// connection.
type Event struct {
	Type string
}

func (m *Event) IsResponse() bool         { return true }
func (m *Event) OpCode() primitive.OpCode { return primitive.OpCodeEvent }
func (m *Event) String() string           { return "EVENT " + m.Type }

func (m *Event) Encode(dest io.Writer) error {
	return primitive.WriteString(m.Type, dest)
}

func DecodeEvent(source io.Reader) (*Event, error) {
	eventType, err := primitive.ReadString(source)
	if err != nil {
		return nil, err
	}
	return &Event{Type: eventType}, nil
}
