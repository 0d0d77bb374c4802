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

// Options requests the server's supported startup options. The reply is always Supported.
type Options struct{}

func (m *Options) IsResponse() bool         { return false }
func (m *Options) OpCode() primitive.OpCode { return primitive.OpCodeOptions }
func (m *Options) String() string           { return "OPTIONS" }
func (m *Options) Encode(io.Writer) error   { return nil }
