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

import (
	"io"

	"github.com/cqlgo/native3/cqlerr"
)

// ReadStreamId reads a v3 stream id: a signed 16-bit integer.
func ReadStreamId(source io.Reader) (int16, error) {
	id, err := ReadShort(source)
	if err != nil {
		return 0, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read stream id")
	}
	return int16(id), nil
}

// WriteStreamId writes a v3 stream id: a signed 16-bit integer.
func WriteStreamId(streamId int16, dest io.Writer) error {
	return WriteShort(uint16(streamId), dest)
}
