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
	"fmt"
	"io"

	"github.com/cqlgo/native3/cqlerr"
)

// [short bytes]

func ReadShortBytes(source io.Reader) ([]byte, error) {
	length, err := ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read [short bytes] length: %w", err)
	}
	if length == 0 {
		return []byte{}, nil
	}
	decoded := make([]byte, length)
	if _, err := io.ReadFull(source, decoded); err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read [short bytes] content")
	}
	return decoded, nil
}

func WriteShortBytes(b []byte, dest io.Writer) error {
	if err := WriteShort(uint16(len(b)), dest); err != nil {
		return fmt.Errorf("cannot write [short bytes] length: %w", err)
	}
	if _, err := dest.Write(b); err != nil {
		return cqlerr.Wrap(cqlerr.Io, err, "cannot write [short bytes] content")
	}
	return nil
}

func LengthOfShortBytes(b []byte) int {
	return LengthOfShort + len(b)
}
