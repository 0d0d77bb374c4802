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

// Package client implements the connection state machine: a Client owns one transport exclusively
// and drives it through a handshake, then a strictly sequential request/response cycle. It issues
// exactly one request at a time and reads exactly one response before the next request may be sent,
// with no connection pooling, background heartbeats, peer discovery, or multi-stream multiplexing.
package client
