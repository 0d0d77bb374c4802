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
	"github.com/cqlgo/native3/primitive"
	"github.com/cqlgo/native3/value"
)

// Result is implemented by the five RESULT body kinds dispatched on the leading [int] kind:
// Void, Rows, SetKeyspace, Prepared, SchemaChange.
type Result interface {
	Message
	resultKind() primitive.ResultKind
}

// Void is the result of a write or DDL statement that returns nothing.
type Void struct{}

func (m *Void) IsResponse() bool                 { return true }
func (m *Void) OpCode() primitive.OpCode         { return primitive.OpCodeResult }
func (m *Void) resultKind() primitive.ResultKind { return primitive.ResultKindVoid }
func (m *Void) String() string                   { return "RESULT Void" }

func (m *Void) Encode(dest io.Writer) error {
	return primitive.WriteInt(int32(primitive.ResultKindVoid), dest)
}

// Row is one row of a Rows result. Rows share their Metadata pointer: constructing a Row never
// copies Metadata.
type Row struct {
	Metadata *Metadata
	Values   []*value.Value
}

// GetColumn returns the value of the named column, or false if no such column exists. When column
// names collide, the first match wins.
func (r *Row) GetColumn(name string) (*value.Value, bool) {
	_, i, ok := r.Metadata.GetColumn(name)
	if !ok {
		return nil, false
	}
	return r.Values[i], true
}

// Rows carries a result set: shared metadata plus the decoded rows.
type Rows struct {
	Metadata *Metadata
	Rows     []*Row
}

func (m *Rows) IsResponse() bool                 { return true }
func (m *Rows) OpCode() primitive.OpCode         { return primitive.OpCodeResult }
func (m *Rows) resultKind() primitive.ResultKind { return primitive.ResultKindRows }
func (m *Rows) String() string                   { return fmt.Sprintf("RESULT Rows(%d)", len(m.Rows)) }

func (m *Rows) Encode(dest io.Writer) error {
	if err := primitive.WriteInt(int32(primitive.ResultKindRows), dest); err != nil {
		return err
	}
	if err := m.Metadata.Encode(dest); err != nil {
		return err
	}
	if err := primitive.WriteInt(int32(len(m.Rows)), dest); err != nil {
		return fmt.Errorf("cannot write Rows row count: %w", err)
	}
	for i, row := range m.Rows {
		for c, v := range row.Values {
			if err := value.Encode(v, dest); err != nil {
				return fmt.Errorf("cannot write row %d column %d: %w", i, c, err)
			}
		}
	}
	return nil
}

// SetKeyspace is the result of a USE statement.
type SetKeyspace struct {
	Keyspace string
}

func (m *SetKeyspace) IsResponse() bool                 { return true }
func (m *SetKeyspace) OpCode() primitive.OpCode         { return primitive.OpCodeResult }
func (m *SetKeyspace) resultKind() primitive.ResultKind { return primitive.ResultKindSetKeyspace }
func (m *SetKeyspace) String() string                   { return "RESULT SetKeyspace " + m.Keyspace }

func (m *SetKeyspace) Encode(dest io.Writer) error {
	if err := primitive.WriteInt(int32(primitive.ResultKindSetKeyspace), dest); err != nil {
		return err
	}
	return primitive.WriteString(m.Keyspace, dest)
}

// Prepared is the result of a PREPARE request: an opaque statement id plus the bind variable
// metadata the caller will later supply via Execute.
type Prepared struct {
	Id       []byte
	Metadata *Metadata
}

func (m *Prepared) IsResponse() bool                 { return true }
func (m *Prepared) OpCode() primitive.OpCode         { return primitive.OpCodeResult }
func (m *Prepared) resultKind() primitive.ResultKind { return primitive.ResultKindPrepared }
func (m *Prepared) String() string                   { return "RESULT Prepared" }

func (m *Prepared) Encode(dest io.Writer) error {
	if err := primitive.WriteInt(int32(primitive.ResultKindPrepared), dest); err != nil {
		return err
	}
	if err := primitive.WriteShortBytes(m.Id, dest); err != nil {
		return fmt.Errorf("cannot write Prepared id: %w", err)
	}
	return m.Metadata.Encode(dest)
}

// SchemaChange reports a DDL side effect. Name is absent (empty) iff Target is KEYSPACE.
type SchemaChange struct {
	ChangeType string
	Target     string
	Keyspace   string
	Name       string
}

func (m *SchemaChange) IsResponse() bool                 { return true }
func (m *SchemaChange) OpCode() primitive.OpCode         { return primitive.OpCodeResult }
func (m *SchemaChange) resultKind() primitive.ResultKind { return primitive.ResultKindSchemaChange }

func (m *SchemaChange) Encode(dest io.Writer) error {
	if err := primitive.WriteInt(int32(primitive.ResultKindSchemaChange), dest); err != nil {
		return err
	}
	if err := primitive.WriteString(m.ChangeType, dest); err != nil {
		return fmt.Errorf("cannot write SchemaChange change type: %w", err)
	}
	if err := primitive.WriteString(m.Target, dest); err != nil {
		return fmt.Errorf("cannot write SchemaChange target: %w", err)
	}
	if err := primitive.WriteString(m.Keyspace, dest); err != nil {
		return fmt.Errorf("cannot write SchemaChange keyspace: %w", err)
	}
	if m.Target != schemaChangeTargetKeyspace {
		if err := primitive.WriteString(m.Name, dest); err != nil {
			return fmt.Errorf("cannot write SchemaChange name: %w", err)
		}
	}
	return nil
}

func (m *SchemaChange) String() string {
	return fmt.Sprintf("RESULT SchemaChange %s %s %s.%s", m.ChangeType, m.Target, m.Keyspace, m.Name)
}

const (
	schemaChangeTargetKeyspace = "KEYSPACE"
	schemaChangeTargetTable    = "TABLE"
	schemaChangeTargetType     = "TYPE"
)

func DecodeResult(source io.Reader) (Message, error) {
	kind, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read RESULT kind: %w", err)
	}
	switch primitive.ResultKind(kind) {
	case primitive.ResultKindVoid:
		return &Void{}, nil
	case primitive.ResultKindRows:
		return decodeRows(source)
	case primitive.ResultKindSetKeyspace:
		keyspace, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read SetKeyspace keyspace: %w", err)
		}
		return &SetKeyspace{Keyspace: keyspace}, nil
	case primitive.ResultKindPrepared:
		return decodePrepared(source)
	case primitive.ResultKindSchemaChange:
		return decodeSchemaChange(source)
	default:
		return nil, cqlerr.New(cqlerr.Protocol, "unknown RESULT kind: 0x%08x", kind)
	}
}

func decodeRows(source io.Reader) (*Rows, error) {
	metadata, err := DecodeMetadata(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read Rows metadata: %w", err)
	}
	rowCount, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read Rows row count: %w", err)
	}
	if rowCount < 0 {
		return nil, cqlerr.New(cqlerr.Protocol, "Rows row count cannot be negative: %d", rowCount)
	}
	rows := make([]*Row, rowCount)
	for i := range rows {
		values := make([]*value.Value, metadata.ColumnCount)
		for c, col := range metadata.Columns {
			v, err := value.Decode(col.Type, source)
			if err != nil {
				return nil, fmt.Errorf("cannot read row %d column %d (%s): %w", i, c, col.Name, err)
			}
			values[c] = v
		}
		rows[i] = &Row{Metadata: metadata, Values: values}
	}
	return &Rows{Metadata: metadata, Rows: rows}, nil
}

func decodePrepared(source io.Reader) (*Prepared, error) {
	id, err := primitive.ReadShortBytes(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read Prepared id: %w", err)
	}
	metadata, err := DecodeMetadata(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read Prepared metadata: %w", err)
	}
	return &Prepared{Id: id, Metadata: metadata}, nil
}

func decodeSchemaChange(source io.Reader) (*SchemaChange, error) {
	changeType, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read SchemaChange change type: %w", err)
	}
	target, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read SchemaChange target: %w", err)
	}
	keyspace, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read SchemaChange keyspace: %w", err)
	}
	m := &SchemaChange{ChangeType: changeType, Target: target, Keyspace: keyspace}
	switch target {
	case schemaChangeTargetKeyspace:
	case schemaChangeTargetTable, schemaChangeTargetType:
		if m.Name, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read SchemaChange name: %w", err)
		}
	default:
		return nil, cqlerr.New(cqlerr.Protocol, "illegal SchemaChange target: %q", target)
	}
	return m, nil
}
