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

package frame

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
)

// Codec encodes and decodes whole frames. It holds no state; a single Codec value is safe to reuse
// and to share across goroutines, since encoding and decoding never mutate it.
type Codec struct{}

func NewCodec() *Codec { return &Codec{} }

// EncodeFrame writes f's header and body to dest. Since dest need not support seeking, the body is
// built in memory first so its length is known before the header is written.
func (c *Codec) EncodeFrame(f *Frame, dest io.Writer) error {
	bodyBuf := &bytes.Buffer{}
	if err := message.Encode(f.Body, bodyBuf); err != nil {
		return cqlerr.Wrap(cqlerr.Protocol, err, "cannot encode %v body", f.Body.OpCode())
	}

	version := primitive.ProtocolVersion3
	if f.Body.IsResponse() {
		version |= 0x80
	}
	if err := primitive.WriteByte(version, dest); err != nil {
		return fmt.Errorf("cannot write version: %w", err)
	}
	if err := primitive.WriteByte(uint8(f.Header.Flags), dest); err != nil {
		return fmt.Errorf("cannot write flags: %w", err)
	}
	if err := primitive.WriteStreamId(f.Header.StreamId, dest); err != nil {
		return fmt.Errorf("cannot write stream id: %w", err)
	}
	if err := primitive.WriteByte(uint8(f.Body.OpCode()), dest); err != nil {
		return fmt.Errorf("cannot write opcode: %w", err)
	}
	if err := primitive.WriteInt(int32(bodyBuf.Len()), dest); err != nil {
		return fmt.Errorf("cannot write body length: %w", err)
	}
	if _, err := dest.Write(bodyBuf.Bytes()); err != nil {
		return cqlerr.Wrap(cqlerr.Io, err, "cannot write frame body")
	}
	log.Debug().Str("opcode", f.Body.OpCode().String()).Int("stream", int(f.Header.StreamId)).
		Int("length", bodyBuf.Len()).Msg("frame encoded")
	return nil
}

// DecodeFrame reads exactly one frame from source: the 9-byte header, then exactly BodyLength bytes
// decoded in an isolated cursor. Trailing bytes left in that cursor after the body decoder finishes
// are a forward-compatibility drift signal: logged, not fatal.
func (c *Codec) DecodeFrame(source io.Reader) (*Frame, error) {
	versionByte, err := primitive.ReadByte(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read frame version")
	}
	isResponse := versionByte&0x80 != 0
	flagsByte, err := primitive.ReadByte(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read frame flags")
	}
	streamId, err := primitive.ReadStreamId(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read frame stream id: %w", err)
	}
	opCodeByte, err := primitive.ReadByte(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read frame opcode")
	}
	opCode := primitive.OpCode(opCodeByte)
	if err := primitive.CheckValidOpCode(opCode); err != nil {
		return nil, err
	}
	bodyLength, err := primitive.ReadInt(source)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read frame body length")
	}
	if bodyLength < 0 {
		return nil, cqlerr.New(cqlerr.Protocol, "frame body length cannot be negative: %d", bodyLength)
	}

	body := make([]byte, bodyLength)
	if _, err := io.ReadFull(source, body); err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read %d bytes of frame body", bodyLength)
	}
	bodyReader := bytes.NewReader(body)
	msg, err := message.Decode(opCode, bodyReader)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.Protocol, err, "cannot decode %v body", opCode)
	}
	if remaining := bodyReader.Len(); remaining > 0 {
		log.Warn().Str("opcode", opCode.String()).Int("remaining", remaining).
			Msg("frame body decoder left unconsumed bytes; protocol drift?")
	}
	log.Debug().Str("opcode", opCode.String()).Int("stream", int(streamId)).
		Int32("length", bodyLength).Msg("frame decoded")

	return &Frame{
		Header: &Header{
			IsResponse: isResponse,
			Flags:      primitive.HeaderFlag(flagsByte),
			StreamId:   streamId,
			OpCode:     opCode,
			BodyLength: bodyLength,
		},
		Body: msg,
	}, nil
}
