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
	"fmt"
	"io"

	"github.com/cqlgo/native3/primitive"
)

// Error is a server-originated ERROR response. Decoding one is a *successful* decode, never
// promoted to the transport error taxonomy in cqlerr: callers distinguish query-level faults from
// transport faults by checking the response type. Alongside 0x2400 (AlreadyExists), this module also
// decodes the trailers for 0x1000 (Unavailable), 0x1100 (WriteTimeout) and 0x1200 (ReadTimeout),
// since those four are the ones a client actually needs to branch on to retry or report usefully;
// every other code's trailer is left opaque.
type Error struct {
	Code    primitive.ErrorCode
	Message string

	// Keyspace and Name are populated only when Code == ErrorCodeAlreadyExists.
	Keyspace string
	Name     string

	// Consistency is populated when Code is ErrorCodeUnavailable, ErrorCodeWriteTimeout or
	// ErrorCodeReadTimeout.
	Consistency primitive.ConsistencyLevel

	// Required and Alive are populated only when Code == ErrorCodeUnavailable.
	Required int32
	Alive    int32

	// Received and BlockFor are populated when Code is ErrorCodeWriteTimeout or ErrorCodeReadTimeout.
	Received int32
	BlockFor int32

	// DataPresent is populated only when Code == ErrorCodeReadTimeout.
	DataPresent bool

	// WriteType is populated only when Code == ErrorCodeWriteTimeout. Contentions is not implemented:
	// it is only present from protocol v5 onward, after this module's v3 ceiling.
	WriteType primitive.WriteType
}

func (m *Error) IsResponse() bool         { return true }
func (m *Error) OpCode() primitive.OpCode { return primitive.OpCodeError }

func (m *Error) String() string {
	switch m.Code {
	case primitive.ErrorCodeUnavailable:
		return fmt.Sprintf("ERROR UNAVAILABLE (msg=%s, cl=%v, required=%d, alive=%d)",
			m.Message, m.Consistency, m.Required, m.Alive)
	case primitive.ErrorCodeReadTimeout:
		return fmt.Sprintf("ERROR READ TIMEOUT (msg=%s, cl=%v, received=%d, blockfor=%d, data=%t)",
			m.Message, m.Consistency, m.Received, m.BlockFor, m.DataPresent)
	case primitive.ErrorCodeWriteTimeout:
		return fmt.Sprintf("ERROR WRITE TIMEOUT (msg=%s, cl=%v, received=%d, blockfor=%d, type=%v)",
			m.Message, m.Consistency, m.Received, m.BlockFor, m.WriteType)
	default:
		return fmt.Sprintf("ERROR %v: %s", m.Code, m.Message)
	}
}

func (m *Error) Encode(dest io.Writer) error {
	if err := primitive.WriteInt(int32(m.Code), dest); err != nil {
		return fmt.Errorf("cannot write ERROR code: %w", err)
	}
	if err := primitive.WriteString(m.Message, dest); err != nil {
		return fmt.Errorf("cannot write ERROR message: %w", err)
	}
	switch m.Code {
	case primitive.ErrorCodeAlreadyExists:
		if err := primitive.WriteString(m.Keyspace, dest); err != nil {
			return fmt.Errorf("cannot write ERROR already-exists keyspace: %w", err)
		}
		if err := primitive.WriteString(m.Name, dest); err != nil {
			return fmt.Errorf("cannot write ERROR already-exists name: %w", err)
		}
	case primitive.ErrorCodeUnavailable:
		if err := primitive.WriteShort(uint16(m.Consistency), dest); err != nil {
			return fmt.Errorf("cannot write ERROR unavailable consistency: %w", err)
		}
		if err := primitive.WriteInt(m.Required, dest); err != nil {
			return fmt.Errorf("cannot write ERROR unavailable required: %w", err)
		}
		if err := primitive.WriteInt(m.Alive, dest); err != nil {
			return fmt.Errorf("cannot write ERROR unavailable alive: %w", err)
		}
	case primitive.ErrorCodeReadTimeout:
		if err := primitive.WriteShort(uint16(m.Consistency), dest); err != nil {
			return fmt.Errorf("cannot write ERROR read timeout consistency: %w", err)
		}
		if err := primitive.WriteInt(m.Received, dest); err != nil {
			return fmt.Errorf("cannot write ERROR read timeout received: %w", err)
		}
		if err := primitive.WriteInt(m.BlockFor, dest); err != nil {
			return fmt.Errorf("cannot write ERROR read timeout block for: %w", err)
		}
		dataPresent := uint8(0)
		if m.DataPresent {
			dataPresent = 1
		}
		if err := primitive.WriteByte(dataPresent, dest); err != nil {
			return fmt.Errorf("cannot write ERROR read timeout data present: %w", err)
		}
	case primitive.ErrorCodeWriteTimeout:
		if err := primitive.WriteShort(uint16(m.Consistency), dest); err != nil {
			return fmt.Errorf("cannot write ERROR write timeout consistency: %w", err)
		}
		if err := primitive.WriteInt(m.Received, dest); err != nil {
			return fmt.Errorf("cannot write ERROR write timeout received: %w", err)
		}
		if err := primitive.WriteInt(m.BlockFor, dest); err != nil {
			return fmt.Errorf("cannot write ERROR write timeout block for: %w", err)
		}
		if err := primitive.WriteString(string(m.WriteType), dest); err != nil {
			return fmt.Errorf("cannot write ERROR write timeout write type: %w", err)
		}
	}
	return nil
}

func DecodeError(source io.Reader) (*Error, error) {
	code, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read ERROR code: %w", err)
	}
	message, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read ERROR message: %w", err)
	}
	m := &Error{Code: primitive.ErrorCode(code), Message: message}
	switch m.Code {
	case primitive.ErrorCodeAlreadyExists:
		if m.Keyspace, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR already-exists keyspace: %w", err)
		}
		if m.Name, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR already-exists name: %w", err)
		}
	case primitive.ErrorCodeUnavailable:
		consistency, err := primitive.ReadShort(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read ERROR unavailable consistency: %w", err)
		}
		m.Consistency = primitive.ConsistencyLevel(consistency)
		if m.Required, err = primitive.ReadInt(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR unavailable required: %w", err)
		}
		if m.Alive, err = primitive.ReadInt(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR unavailable alive: %w", err)
		}
	case primitive.ErrorCodeReadTimeout:
		consistency, err := primitive.ReadShort(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read ERROR read timeout consistency: %w", err)
		}
		m.Consistency = primitive.ConsistencyLevel(consistency)
		if m.Received, err = primitive.ReadInt(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR read timeout received: %w", err)
		}
		if m.BlockFor, err = primitive.ReadInt(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR read timeout block for: %w", err)
		}
		dataPresent, err := primitive.ReadByte(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read ERROR read timeout data present: %w", err)
		}
		m.DataPresent = dataPresent != 0
	case primitive.ErrorCodeWriteTimeout:
		consistency, err := primitive.ReadShort(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read ERROR write timeout consistency: %w", err)
		}
		m.Consistency = primitive.ConsistencyLevel(consistency)
		if m.Received, err = primitive.ReadInt(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR write timeout received: %w", err)
		}
		if m.BlockFor, err = primitive.ReadInt(source); err != nil {
			return nil, fmt.Errorf("cannot read ERROR write timeout block for: %w", err)
		}
		writeType, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read ERROR write timeout write type: %w", err)
		}
		m.WriteType = primitive.WriteType(writeType)
	}
	return m, nil
}
