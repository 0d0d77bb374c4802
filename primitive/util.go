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

package primitive

import "github.com/cqlgo/native3/cqlerr"

// CheckValidOpCode returns a Protocol error if code is neither a known request nor response opcode.
func CheckValidOpCode(code OpCode) error {
	if !code.IsValid() {
		return cqlerr.New(cqlerr.Protocol, "invalid opcode: %v", code)
	}
	return nil
}

// CheckRequestOpCode returns a Protocol error if code is not a request opcode.
func CheckRequestOpCode(code OpCode) error {
	if !code.IsRequest() {
		return cqlerr.New(cqlerr.Protocol, "expected request opcode, got: %v", code)
	}
	return nil
}

// CheckResponseOpCode returns a Protocol error if code is not a response opcode.
func CheckResponseOpCode(code OpCode) error {
	if !code.IsResponse() {
		return cqlerr.New(cqlerr.Protocol, "expected response opcode, got: %v", code)
	}
	return nil
}

// CheckValidConsistencyLevel returns a Protocol error if consistency is not a known level.
func CheckValidConsistencyLevel(consistency ConsistencyLevel) error {
	if !consistency.IsValid() {
		return cqlerr.New(cqlerr.Protocol, "invalid consistency level: %v", consistency)
	}
	return nil
}
