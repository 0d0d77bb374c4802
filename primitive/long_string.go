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

// [long string]

// ReadLongString reads an [int]-length-prefixed UTF-8 string. A length of -1 is the protocol's Null
// marker and is returned as an empty string with no error; any other negative length is an error.
func ReadLongString(source io.Reader) (string, error) {
	length, err := ReadInt(source)
	if err != nil {
		return "", fmt.Errorf("cannot read [long string] length: %w", err)
	}
	if length == -1 {
		return "", nil
	}
	if length < 0 {
		return "", cqlerr.New(cqlerr.Protocol, "[long string] length cannot be negative: %d", length)
	}
	decoded := make([]byte, length)
	if _, err := io.ReadFull(source, decoded); err != nil {
		return "", cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read [long string] content")
	}
	if !utf8.Valid(decoded) {
		return "", cqlerr.New(cqlerr.Utf8, "[long string] content is not valid UTF-8")
	}
	return string(decoded), nil
}

func WriteLongString(s string, dest io.Writer) error {
	length := len(s)
	if err := WriteInt(int32(length), dest); err != nil {
		return fmt.Errorf("cannot write [long string] length: %w", err)
	}
	if _, err := dest.Write([]byte(s)); err != nil {
		return cqlerr.Wrap(cqlerr.Io, err, "cannot write [long string] content")
	}
	return nil
}

func LengthOfLongString(s string) int {
	return LengthOfInt + len(s)
}
