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

// Package frame implements the 9-byte v3 frame header plus opaque body framing: the unit every
// message travels in. This module speaks only the fixed v3 layout, with no compression and no
// segment-based v5 framing.
package frame

import (
	"fmt"

	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
)

// Header is the 9-byte fixed preamble of every frame.
type Header struct {
	IsResponse bool
	Flags      primitive.HeaderFlag
	StreamId   int16
	OpCode     primitive.OpCode
	// BodyLength is set by DecodeFrame. EncodeFrame ignores it and writes the length of the body
	// it encodes; it does not store that length back into the Header.
	BodyLength int32
}

// Frame pairs a decoded Header with its fully decoded Body.
type Frame struct {
	Header *Header
	Body   message.Message
}

// NewRequestFrame wraps body as a request frame on streamId. Request frames never carry the
// high-version bit; response frames always do.
func NewRequestFrame(streamId int16, body message.Message) *Frame {
	return &Frame{
		Header: &Header{
			IsResponse: false,
			StreamId:   streamId,
			OpCode:     body.OpCode(),
		},
		Body: body,
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("{header: %v, body: %v}", f.Header, f.Body)
}

func (h *Header) String() string {
	return fmt.Sprintf("{response: %v, flags: %08b, stream: %v, opcode: %v, length: %v}",
		h.IsResponse, h.Flags, h.StreamId, h.OpCode, h.BodyLength)
}
