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

package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cqlgo/native3/primitive"
)

func TestOpCodeClassification(t *testing.T) {
	assert.True(t, primitive.OpCodeStartup.IsRequest())
	assert.False(t, primitive.OpCodeStartup.IsResponse())
	assert.True(t, primitive.OpCodeReady.IsResponse())
	assert.False(t, primitive.OpCodeReady.IsRequest())
	assert.NoError(t, primitive.CheckValidOpCode(primitive.OpCodeQuery))
}

func TestInvalidOpCode(t *testing.T) {
	assert.False(t, primitive.OpCode(0x7F).IsValid())
	assert.Error(t, primitive.CheckValidOpCode(primitive.OpCode(0x7F)))
}

func TestHeaderFlags(t *testing.T) {
	var f primitive.HeaderFlag
	f = f.Add(primitive.HeaderFlagTracing)
	assert.True(t, f.Contains(primitive.HeaderFlagTracing))
	f = f.Remove(primitive.HeaderFlagTracing)
	assert.False(t, f.Contains(primitive.HeaderFlagTracing))
}

func TestConsistencyLevelValidity(t *testing.T) {
	assert.True(t, primitive.ConsistencyLevelQuorum.IsValid())
	assert.False(t, primitive.ConsistencyLevel(0xFFFF).IsValid())
	assert.True(t, primitive.ConsistencyLevelSerial.IsSerial())
}
