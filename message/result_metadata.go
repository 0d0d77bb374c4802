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

package message

import (
	"fmt"
	"io"

	"github.com/cqlgo/native3/cqlerr"
	"github.com/cqlgo/native3/datatype"
	"github.com/cqlgo/native3/primitive"
)

// ColumnMeta describes one column of a Rows or Prepared result. Keyspace/Table are only populated
// per-column when the surrounding Metadata does not carry the GLOBAL_TABLES_SPEC flag.
type ColumnMeta struct {
	Keyspace string
	Table    string
	Name     string
	Type     *datatype.Descriptor
}

// Metadata is the shared, read-only header of a Rows or Prepared result. Every Row decoded from the
// same response holds a pointer to the same Metadata rather than a private copy; neither is mutated
// after construction.
type Metadata struct {
	Flags       uint32
	ColumnCount int32

	// GlobalKeyspace and GlobalTable are set only when Flags has RowsFlagGlobalTablesSpec.
	GlobalKeyspace string
	GlobalTable    string

	Columns []*ColumnMeta
}

// GetColumn returns the first column named name, or false if none matches. The protocol does not
// guarantee column name uniqueness.
func (m *Metadata) GetColumn(name string) (*ColumnMeta, int, bool) {
	for i, c := range m.Columns {
		if c.Name == name {
			return c, i, true
		}
	}
	return nil, -1, false
}

// Encode writes m in the layout DecodeMetadata expects. Per-column keyspace/table are written only
// when Flags lacks RowsFlagGlobalTablesSpec, mirroring what DecodeMetadata reads.
func (m *Metadata) Encode(dest io.Writer) error {
	if err := primitive.WriteInt(int32(m.Flags), dest); err != nil {
		return fmt.Errorf("cannot write result metadata flags: %w", err)
	}
	if err := primitive.WriteInt(m.ColumnCount, dest); err != nil {
		return fmt.Errorf("cannot write result metadata column count: %w", err)
	}
	global := m.Flags&primitive.RowsFlagGlobalTablesSpec != 0
	if global {
		if err := primitive.WriteString(m.GlobalKeyspace, dest); err != nil {
			return fmt.Errorf("cannot write global keyspace: %w", err)
		}
		if err := primitive.WriteString(m.GlobalTable, dest); err != nil {
			return fmt.Errorf("cannot write global table: %w", err)
		}
	}
	for i, col := range m.Columns {
		if !global {
			if err := primitive.WriteString(col.Keyspace, dest); err != nil {
				return fmt.Errorf("cannot write column %d keyspace: %w", i, err)
			}
			if err := primitive.WriteString(col.Table, dest); err != nil {
				return fmt.Errorf("cannot write column %d table: %w", i, err)
			}
		}
		if err := primitive.WriteString(col.Name, dest); err != nil {
			return fmt.Errorf("cannot write column %d name: %w", i, err)
		}
		if err := datatype.WriteDescriptor(col.Type, dest); err != nil {
			return fmt.Errorf("cannot write column %d type: %w", i, err)
		}
	}
	return nil
}

func DecodeMetadata(source io.Reader) (*Metadata, error) {
	flags, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read result metadata flags: %w", err)
	}
	columnCount, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read result metadata column count: %w", err)
	}
	if columnCount < 0 {
		return nil, cqlerr.New(cqlerr.Protocol, "result metadata column count cannot be negative: %d", columnCount)
	}
	m := &Metadata{Flags: uint32(flags), ColumnCount: columnCount}
	global := m.Flags&primitive.RowsFlagGlobalTablesSpec != 0
	if global {
		if m.GlobalKeyspace, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read global keyspace: %w", err)
		}
		if m.GlobalTable, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read global table: %w", err)
		}
	}
	m.Columns = make([]*ColumnMeta, columnCount)
	for i := range m.Columns {
		col := &ColumnMeta{Keyspace: m.GlobalKeyspace, Table: m.GlobalTable}
		if !global {
			if col.Keyspace, err = primitive.ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read column %d keyspace: %w", i, err)
			}
			if col.Table, err = primitive.ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read column %d table: %w", i, err)
			}
		}
		if col.Name, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read column %d name: %w", i, err)
		}
		if col.Type, err = datatype.ReadDescriptor(source); err != nil {
			return nil, fmt.Errorf("cannot read column %d type: %w", i, err)
		}
		m.Columns[i] = col
	}
	return m, nil
}
