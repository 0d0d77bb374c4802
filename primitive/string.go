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
	"unicode/utf8"

	"github.com/cqlgo/native3/cqlerr"
)

// [string]

// ReadString reads a [short]-length-prefixed UTF-8 string. Unlike a single Read call, this loops via
// io.ReadFull until the declared length is satisfied or the stream ends prematurely: a short read is
// not an error on its own on a streaming transport.
func ReadString(source io.Reader) (string, error) {
	length, err := ReadShort(source)
	if err != nil {
		return "", fmt.Errorf("cannot read [string] length: %w", err)
	}
	decoded := make([]byte, length)
	if _, err := io.ReadFull(source, decoded); err != nil {
		return "", cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read [string] content")
	}
	if !utf8.Valid(decoded) {
		return "", cqlerr.New(cqlerr.Utf8, "[string] content is not valid UTF-8")
	}
	return string(decoded), nil
}

func WriteString(s string, dest io.Writer) error {
	length := len(s)
	if err := WriteShort(uint16(length), dest); err != nil {
		return fmt.Errorf("cannot write [string] length: %w", err)
	}
	if _, err := dest.Write([]byte(s)); err != nil {
		return cqlerr.Wrap(cqlerr.Io, err, "cannot write [string] content")
	}
	return nil
}

func LengthOfString(s string) int {
	return LengthOfShort + len(s)
}
