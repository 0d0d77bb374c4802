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

// Package message implements the request and response body layouts of the native protocol: one file
// per message, each pairing a Go struct with its Encode/Decode pair. Since this module speaks only
// v3, each message owns its own Encode/Decode methods directly rather than going through a
// version-dispatch table.
package message

import (
	"io"

	"github.com/cqlgo/native3/primitive"
)

// Message is any request or response body this module knows how to encode or decode.
type Message interface {
	OpCode() primitive.OpCode
	IsResponse() bool
}

// Encode writes msg's body (everything after the 9-byte frame header) to dest. Response bodies are
// encodable too, although a client never sends one: tests and tools that play the server side of a
// connection use the same codec in the other direction.
func Encode(msg Message, dest io.Writer) error {
	switch m := msg.(type) {
	case *Startup:
		return m.Encode(dest)
	case *Credentials:
		return m.Encode(dest)
	case *Options:
		return m.Encode(dest)
	case *Query:
		return m.Encode(dest)
	case *Prepare:
		return m.Encode(dest)
	case *Execute:
		return m.Encode(dest)
	case *Register:
		return m.Encode(dest)
	case *Ready:
		return m.Encode(dest)
	case *Authenticate:
		return m.Encode(dest)
	case *Supported:
		return m.Encode(dest)
	case *Error:
		return m.Encode(dest)
	case *Void:
		return m.Encode(dest)
	case *Rows:
		return m.Encode(dest)
	case *SetKeyspace:
		return m.Encode(dest)
	case *Prepared:
		return m.Encode(dest)
	case *SchemaChange:
		return m.Encode(dest)
	case *Event:
		return m.Encode(dest)
	default:
		return notEncodable(msg)
	}
}

// Decode reads a message body of the given opcode from source. Request bodies decode as well as
// response bodies, for the same server-side uses Encode serves.
func Decode(opCode primitive.OpCode, source io.Reader) (Message, error) {
	switch opCode {
	case primitive.OpCodeReady:
		return DecodeReady(source)
	case primitive.OpCodeAuthenticate:
		return DecodeAuthenticate(source)
	case primitive.OpCodeSupported:
		return DecodeSupported(source)
	case primitive.OpCodeError:
		return DecodeError(source)
	case primitive.OpCodeResult:
		return DecodeResult(source)
	case primitive.OpCodeEvent:
		return DecodeEvent(source)
	case primitive.OpCodeStartup:
		return DecodeStartup(source)
	case primitive.OpCodeOptions:
		return &Options{}, nil
	case primitive.OpCodeQuery:
		return DecodeQuery(source)
	case primitive.OpCodePrepare:
		return DecodePrepare(source)
	case primitive.OpCodeExecute:
		return DecodeExecute(source)
	case primitive.OpCodeRegister:
		return DecodeRegister(source)
	default:
		return nil, notDecodable(opCode)
	}
}
