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

	"github.com/rs/zerolog/log"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/frame"
	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
	"github.com/cqlgo/native3/value"
)

func (c *Client) checkReady(op string) error {
	if c.state != StateReady {
		return cqlerr.New(cqlerr.Protocol, "cannot issue %s: connection is in state %v, not Ready", op, c.state)
	}
	return nil
}

// Options returns the server's advertised SUPPORTED options.
func (c *Client) Options(ctx context.Context) (*message.Supported, error) {
	if err := c.checkReady("OPTIONS"); err != nil {
		return nil, err
	}
	resp, err := c.roundTrip(ctx, frame.NewRequestFrame(requestStreamId, &message.Options{}))
	if err != nil {
		return nil, err
	}
	supported, ok := resp.Body.(*message.Supported)
	if !ok {
		return nil, cqlerr.New(cqlerr.Protocol, "expected SUPPORTED, got %v", resp.Body)
	}
	return supported, nil
}

// Query executes cql at the given consistency level with positional bound values, returning
// whatever RESULT or ERROR the server sends back as a plain Message.
func (c *Client) Query(ctx context.Context, cql string, consistency primitive.ConsistencyLevel, values []*value.Value) (message.Message, error) {
	if err := c.checkReady("QUERY"); err != nil {
		return nil, err
	}
	log.Debug().Str("cql", cql).Msg("sending QUERY")
	q := &message.Query{Query: cql, Options: &message.QueryParameters{Consistency: consistency, Values: values}}
	resp, err := c.roundTrip(ctx, frame.NewRequestFrame(requestStreamId, q))
	if err != nil {
		return nil, err
	}
	return checkQueryResponse(resp.Body)
}

// Prepare asks the server to parse and cache cql, returning the opaque statement id to pass to
// Execute along with the bind-variable metadata. The client does not retain the metadata across
// calls: holding on to it for later Execute calls is the caller's responsibility if it's needed.
func (c *Client) Prepare(ctx context.Context, cql string) ([]byte, *message.Metadata, error) {
	if err := c.checkReady("PREPARE"); err != nil {
		return nil, nil, err
	}
	resp, err := c.roundTrip(ctx, frame.NewRequestFrame(requestStreamId, &message.Prepare{Query: cql}))
	if err != nil {
		return nil, nil, err
	}
	switch msg := resp.Body.(type) {
	case *message.Prepared:
		return msg.Id, msg.Metadata, nil
	case *message.Error:
		return nil, nil, cqlerr.New(cqlerr.Protocol, "PREPARE rejected by server: %v", msg.Message)
	default:
		return nil, nil, cqlerr.New(cqlerr.Protocol, "expected RESULT/Prepared or ERROR, got %v", resp.Body)
	}
}

// Execute runs the previously prepared statement named by id, with positional bound values.
func (c *Client) Execute(ctx context.Context, id []byte, consistency primitive.ConsistencyLevel, values []*value.Value) (message.Message, error) {
	if err := c.checkReady("EXECUTE"); err != nil {
		return nil, err
	}
	exec := &message.Execute{Id: id, Options: &message.QueryParameters{Consistency: consistency, Values: values}}
	resp, err := c.roundTrip(ctx, frame.NewRequestFrame(requestStreamId, exec))
	if err != nil {
		return nil, err
	}
	return checkQueryResponse(resp.Body)
}

// Register subscribes this connection to the given server event types. Calling it is rarely useful
// here: any EVENT arriving afterward is treated as a protocol violation by roundTrip, since the
// client handles exactly one in-flight request and has nowhere to deliver push messages.
func (c *Client) Register(ctx context.Context, eventTypes []string) error {
	if err := c.checkReady("REGISTER"); err != nil {
		return err
	}
	resp, err := c.roundTrip(ctx, frame.NewRequestFrame(requestStreamId, &message.Register{EventTypes: eventTypes}))
	if err != nil {
		return err
	}
	if _, ok := resp.Body.(*message.Ready); !ok {
		return cqlerr.New(cqlerr.Protocol, "expected READY in response to REGISTER, got %v", resp.Body)
	}
	return nil
}

// checkQueryResponse validates that a QUERY/EXECUTE response is a RESULT or ERROR body.
func checkQueryResponse(body message.Message) (message.Message, error) {
	switch body.(type) {
	case *message.Void, *message.Rows, *message.SetKeyspace, *message.Prepared, *message.SchemaChange, *message.Error:
		return body, nil
	default:
		return nil, cqlerr.New(cqlerr.Protocol, "expected RESULT or ERROR, got %v", body)
	}
}
