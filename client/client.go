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

package client

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/frame"
	"github.com/cqlgo/native3/message"
)

// State is the connection's position in its lifecycle: Closed until the transport opens, then
// HandshakeSent, then Ready (or transiently AuthAwait), and Closed again on any failure.
type State int

const (
	StateClosed State = iota
	StateHandshakeSent
	StateReady
	StateAuthAwait
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateHandshakeSent:
		return "HandshakeSent"
	case StateReady:
		return "Ready"
	case StateAuthAwait:
		return "AuthAwait"
	default:
		return "Unknown"
	}
}

// Stream 1 is used for the handshake and stream 0 for every request thereafter. Any value would
// do, since at most one request is ever in flight.
const (
	startupStreamId = int16(1)
	requestStreamId = int16(0)
)

// Client drives a single Cassandra native-protocol v3 connection. It is not safe for concurrent
// use: a Client serializes one request/response pair at a time and has no internal locking.
type Client struct {
	conn  net.Conn
	codec *frame.Codec
	state State
}

// Connect opens a TCP connection to addr, sends STARTUP and reads the server's verdict. On any
// failure the transport is closed and an error is returned; on success the Client is in StateReady.
// If ctx carries a deadline, it is applied to the underlying net.Conn for the duration of the
// handshake via SetDeadline. Cancelling ctx interrupts the dial only; once connected, only the
// deadline bounds the handshake's reads and writes.
func Connect(ctx context.Context, addr string) (*Client, error) {
	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, cqlerr.Wrap(cqlerr.Io, err, "cannot connect to %s", addr)
	}
	c := &Client{conn: conn, codec: frame.NewCodec(), state: StateHandshakeSent}
	if err := c.handshake(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the underlying transport. The Client is left in StateClosed and must not be reused.
func (c *Client) Close() error {
	c.state = StateClosed
	return c.conn.Close()
}

// State reports the client's current connection state.
func (c *Client) State() State { return c.state }

func (c *Client) handshake(ctx context.Context) error {
	log.Debug().Msg("sending STARTUP")
	resp, err := c.roundTrip(ctx, frame.NewRequestFrame(startupStreamId, message.NewStartup()))
	if err != nil {
		c.state = StateClosed
		return err
	}
	switch msg := resp.Body.(type) {
	case *message.Ready:
		c.state = StateReady
		log.Debug().Msg("handshake complete, connection ready")
		return nil
	case *message.Authenticate:
		// Transiently AuthAwait; the core does not drive SASL, so the connection is closed instead.
		c.state = StateClosed
		return cqlerr.New(cqlerr.Unimplemented,
			"server requires authentication via %q; this module does not drive a SASL exchange", msg.Authenticator)
	default:
		c.state = StateClosed
		return cqlerr.New(cqlerr.Protocol, "expected READY or AUTHENTICATE during handshake, got %v", resp.Body)
	}
}

// applyDeadline sets the connection's read/write deadline from ctx, when one is set, and returns a
// cleanup func that clears it again. The protocol itself defines no cancellation signal mid-frame;
// this only bounds how long a single blocking read or write may take.
func (c *Client) applyDeadline(ctx context.Context) (func(), error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return func() {}, nil
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, cqlerr.Wrap(cqlerr.Io, err, "cannot set connection deadline")
	}
	return func() { _ = c.conn.SetDeadline(time.Time{}) }, nil
}

// roundTrip writes req and reads exactly one response frame: the next request cannot be issued
// until this one completes. A stream id mismatch between request and response is a protocol
// violation.
func (c *Client) roundTrip(ctx context.Context, req *frame.Frame) (*frame.Frame, error) {
	clearDeadline, err := c.applyDeadline(ctx)
	if err != nil {
		return nil, err
	}
	defer clearDeadline()

	if err := c.codec.EncodeFrame(req, c.conn); err != nil {
		return nil, err
	}
	resp, err := c.codec.DecodeFrame(c.conn)
	if err != nil {
		if err == io.EOF {
			return nil, cqlerr.Wrap(cqlerr.Io, err, "connection closed by peer")
		}
		return nil, err
	}
	if resp.Header.StreamId != req.Header.StreamId {
		return nil, cqlerr.New(cqlerr.Protocol, "stream id mismatch: sent %d, received %d",
			req.Header.StreamId, resp.Header.StreamId)
	}
	if _, isEvent := resp.Body.(*message.Event); isEvent {
		return nil, cqlerr.New(cqlerr.Protocol, "received EVENT frame; this client does not deliver server-pushed events")
	}
	return resp, nil
}
