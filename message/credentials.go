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
	"github.com/cqlgo/native3/primitive"
)

// Credentials is the legacy pre-v2 authentication request. This module does not drive a real SASL
// exchange: a server AUTHENTICATE challenge is acknowledged but not driven to completion, so
// Credentials is never actually put on the wire. It is kept as a typed placeholder so callers that
// inspect an AuthAwait transition get a named type back instead of a bare error string.
type Credentials struct {
	Entries map[string]string
}

func (m *Credentials) IsResponse() bool         { return false }
func (m *Credentials) OpCode() primitive.OpCode { return primitive.OpCodeCredentials }
func (m *Credentials) String() string           { return "CREDENTIALS" }

func (m *Credentials) Encode(io.Writer) error {
	return cqlerr.New(cqlerr.Unimplemented, "CREDENTIALS authentication is not implemented; handle AUTHENTICATE yourself")
}
