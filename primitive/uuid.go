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
	"encoding/hex"
	"io"

	"github.com/cqlgo/native3/cqlerr"
)

// [uuid]

const LengthOfUuid = 16

type UUID [16]byte

func (u *UUID) Clone() *UUID {
	if u == nil {
		return nil
	}
	newUuid := *u
	return &newUuid
}

func (u *UUID) String() string {
	if u == nil {
		return ""
	}
	return hex.EncodeToString(u[:])
}

func ReadUuid(source io.Reader) (*UUID, error) {
	decoded := new(UUID)
	if _, err := io.ReadFull(source, decoded[:]); err != nil {
		return nil, cqlerr.Wrap(cqlerr.UnexpectedEOF, err, "cannot read [uuid] content")
	}
	return decoded, nil
}

func WriteUuid(uuid *UUID, dest io.Writer) error {
	if uuid == nil {
		return cqlerr.New(cqlerr.Protocol, "cannot write nil [uuid]")
	}
	if _, err := dest.Write(uuid[:]); err != nil {
		return cqlerr.Wrap(cqlerr.Io, err, "cannot write [uuid] content")
	}
	return nil
}
