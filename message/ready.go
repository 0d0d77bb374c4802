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

// Ready is sent when the coordinator accepts a Startup without requiring authentication.
type Ready struct{}

func (m *Ready) IsResponse() bool         { return true }
func (m *Ready) OpCode() primitive.OpCode { return primitive.OpCodeReady }
func (m *Ready) String() string           { return "READY" }

func (m *Ready) Encode(io.Writer) error {
	return nil
}

func DecodeReady(io.Reader) (*Ready, error) {
	return &Ready{}, nil
}
