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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlgo/native3/primitive"
)

func TestStringListRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteStringList([]string{"a", "bb", "ccc"}, buf))
	decoded, err := primitive.ReadStringList(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "ccc"}, decoded)
}

func TestStringMultiMapRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	m := map[string][]string{"CQL_VERSION": {"3.0.0"}, "COMPRESSION": {"snappy", "lz4"}}
	require.NoError(t, primitive.WriteStringMultiMap(m, buf))
	decoded, err := primitive.ReadStringMultiMap(buf)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}

func TestStringMapRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	m := map[string]string{"CQL_VERSION": "3.0.0"}
	require.NoError(t, primitive.WriteStringMap(m, buf))
	decoded, err := primitive.ReadStringMap(buf)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}
