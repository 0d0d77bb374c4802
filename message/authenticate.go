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

// Authenticate is sent instead of Ready when the server requires authentication; Authenticator
// carries the server's authenticator class name. This module does not drive a real SASL exchange:
// the client reports Unimplemented and closes the connection on receiving this.
type Authenticate struct {
	Authenticator string
}

func (m *Authenticate) IsResponse() bool         { return true }
func (m *Authenticate) OpCode() primitive.OpCode { return primitive.OpCodeAuthenticate }
func (m *Authenticate) String() string           { return "AUTHENTICATE " + m.Authenticator }

func (m *Authenticate) Encode(dest io.Writer) error {
	return primitive.WriteString(m.Authenticator, dest)
}

func DecodeAuthenticate(source io.Reader) (*Authenticate, error) {
	authenticator, err := primitive.ReadString(source)
	if err != nil {
		return nil, err
	}
	return &Authenticate{Authenticator: authenticator}, nil
}
