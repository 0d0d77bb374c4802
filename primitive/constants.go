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

// ProtocolVersion3 is the only protocol version this module speaks. The wire format fixes its byte
// value at 0x03 for requests; response frames carry the same value with the high bit set (0x83).
const ProtocolVersion3 = uint8(0x03)

// ProtocolVersionMask isolates the version number from the high "is response" bit of the version byte.
const ProtocolVersionMask = uint8(0x7F)

// HeaderFlag is a bitfield carried in byte 1 of the frame header.
type HeaderFlag uint8

const (
	HeaderFlagCompressed    HeaderFlag = 0x01
	HeaderFlagTracing       HeaderFlag = 0x02
	HeaderFlagCustomPayload HeaderFlag = 0x04
	HeaderFlagWarning       HeaderFlag = 0x08
)

func (f HeaderFlag) Add(other HeaderFlag) HeaderFlag    { return f | other }
func (f HeaderFlag) Remove(other HeaderFlag) HeaderFlag { return f &^ other }
func (f HeaderFlag) Contains(other HeaderFlag) bool     { return f&other == other }

// OpCode distinguishes the kind of payload a frame carries. A single discriminator space covers both
// request and response opcodes.
type OpCode uint8

const (
	OpCodeError        OpCode = 0x00
	OpCodeStartup      OpCode = 0x01
	OpCodeReady        OpCode = 0x02
	OpCodeAuthenticate OpCode = 0x03
	OpCodeCredentials  OpCode = 0x04
	OpCodeOptions      OpCode = 0x05
	OpCodeSupported    OpCode = 0x06
	OpCodeQuery        OpCode = 0x07
	OpCodeResult       OpCode = 0x08
	OpCodePrepare      OpCode = 0x09
	OpCodeExecute      OpCode = 0x0A
	OpCodeRegister     OpCode = 0x0B
	OpCodeEvent        OpCode = 0x0C
)

var requestOpCodes = map[OpCode]bool{
	OpCodeStartup:     true,
	OpCodeCredentials: true,
	OpCodeOptions:     true,
	OpCodeQuery:       true,
	OpCodePrepare:     true,
	OpCodeExecute:     true,
	OpCodeRegister:    true,
}

var responseOpCodes = map[OpCode]bool{
	OpCodeError:        true,
	OpCodeReady:        true,
	OpCodeAuthenticate: true,
	OpCodeSupported:    true,
	OpCodeResult:       true,
	OpCodeEvent:        true,
}

func (c OpCode) IsRequest() bool  { return requestOpCodes[c] }
func (c OpCode) IsResponse() bool { return responseOpCodes[c] }
func (c OpCode) IsValid() bool    { return c.IsRequest() || c.IsResponse() }

func (c OpCode) String() string {
	switch c {
	case OpCodeError:
		return "ERROR"
	case OpCodeStartup:
		return "STARTUP"
	case OpCodeReady:
		return "READY"
	case OpCodeAuthenticate:
		return "AUTHENTICATE"
	case OpCodeCredentials:
		return "CREDENTIALS"
	case OpCodeOptions:
		return "OPTIONS"
	case OpCodeSupported:
		return "SUPPORTED"
	case OpCodeQuery:
		return "QUERY"
	case OpCodeResult:
		return "RESULT"
	case OpCodePrepare:
		return "PREPARE"
	case OpCodeExecute:
		return "EXECUTE"
	case OpCodeRegister:
		return "REGISTER"
	case OpCodeEvent:
		return "EVENT"
	default:
		return "UNKNOWN"
	}
}

// ConsistencyLevel is the replica-agreement requirement a read or write demands.
type ConsistencyLevel uint16

const (
	ConsistencyLevelAny         ConsistencyLevel = 0x0000
	ConsistencyLevelOne         ConsistencyLevel = 0x0001
	ConsistencyLevelTwo         ConsistencyLevel = 0x0002
	ConsistencyLevelThree       ConsistencyLevel = 0x0003
	ConsistencyLevelQuorum      ConsistencyLevel = 0x0004
	ConsistencyLevelAll         ConsistencyLevel = 0x0005
	ConsistencyLevelLocalQuorum ConsistencyLevel = 0x0006
	ConsistencyLevelEachQuorum  ConsistencyLevel = 0x0007
	ConsistencyLevelSerial      ConsistencyLevel = 0x0008
	ConsistencyLevelLocalSerial ConsistencyLevel = 0x0009
	ConsistencyLevelLocalOne    ConsistencyLevel = 0x000A
)

func (c ConsistencyLevel) IsValid() bool {
	return c <= ConsistencyLevelLocalOne
}

func (c ConsistencyLevel) IsSerial() bool {
	return c == ConsistencyLevelSerial || c == ConsistencyLevelLocalSerial
}

func (c ConsistencyLevel) String() string {
	switch c {
	case ConsistencyLevelAny:
		return "ANY"
	case ConsistencyLevelOne:
		return "ONE"
	case ConsistencyLevelTwo:
		return "TWO"
	case ConsistencyLevelThree:
		return "THREE"
	case ConsistencyLevelQuorum:
		return "QUORUM"
	case ConsistencyLevelAll:
		return "ALL"
	case ConsistencyLevelLocalQuorum:
		return "LOCAL_QUORUM"
	case ConsistencyLevelEachQuorum:
		return "EACH_QUORUM"
	case ConsistencyLevelSerial:
		return "SERIAL"
	case ConsistencyLevelLocalSerial:
		return "LOCAL_SERIAL"
	case ConsistencyLevelLocalOne:
		return "LOCAL_ONE"
	default:
		return "UNKNOWN"
	}
}

// DataTypeCode is the [short] type id leading every column type descriptor.
type DataTypeCode uint16

const (
	DataTypeCodeCustom    DataTypeCode = 0x0000
	DataTypeCodeAscii     DataTypeCode = 0x0001
	DataTypeCodeBigint    DataTypeCode = 0x0002
	DataTypeCodeBlob      DataTypeCode = 0x0003
	DataTypeCodeBoolean   DataTypeCode = 0x0004
	DataTypeCodeCounter   DataTypeCode = 0x0005
	DataTypeCodeDecimal   DataTypeCode = 0x0006
	DataTypeCodeDouble    DataTypeCode = 0x0007
	DataTypeCodeFloat     DataTypeCode = 0x0008
	DataTypeCodeInt       DataTypeCode = 0x0009
	DataTypeCodeText      DataTypeCode = 0x000A
	DataTypeCodeTimestamp DataTypeCode = 0x000B
	DataTypeCodeUuid      DataTypeCode = 0x000C
	DataTypeCodeVarchar   DataTypeCode = 0x000D
	DataTypeCodeVarint    DataTypeCode = 0x000E
	DataTypeCodeTimeuuid  DataTypeCode = 0x000F
	DataTypeCodeInet      DataTypeCode = 0x0010
	DataTypeCodeList      DataTypeCode = 0x0020
	DataTypeCodeMap       DataTypeCode = 0x0021
	DataTypeCodeSet       DataTypeCode = 0x0022
	DataTypeCodeUdt       DataTypeCode = 0x0030
	DataTypeCodeTuple     DataTypeCode = 0x0031
)

func (c DataTypeCode) String() string {
	switch c {
	case DataTypeCodeCustom:
		return "CUSTOM"
	case DataTypeCodeAscii:
		return "ASCII"
	case DataTypeCodeBigint:
		return "BIGINT"
	case DataTypeCodeBlob:
		return "BLOB"
	case DataTypeCodeBoolean:
		return "BOOLEAN"
	case DataTypeCodeCounter:
		return "COUNTER"
	case DataTypeCodeDecimal:
		return "DECIMAL"
	case DataTypeCodeDouble:
		return "DOUBLE"
	case DataTypeCodeFloat:
		return "FLOAT"
	case DataTypeCodeInt:
		return "INT"
	case DataTypeCodeText:
		return "TEXT"
	case DataTypeCodeTimestamp:
		return "TIMESTAMP"
	case DataTypeCodeUuid:
		return "UUID"
	case DataTypeCodeVarchar:
		return "VARCHAR"
	case DataTypeCodeVarint:
		return "VARINT"
	case DataTypeCodeTimeuuid:
		return "TIMEUUID"
	case DataTypeCodeInet:
		return "INET"
	case DataTypeCodeList:
		return "LIST"
	case DataTypeCodeMap:
		return "MAP"
	case DataTypeCodeSet:
		return "SET"
	case DataTypeCodeUdt:
		return "UDT"
	case DataTypeCodeTuple:
		return "TUPLE"
	default:
		return "UNKNOWN"
	}
}

// ResultKind is the leading [int] of a RESULT message body.
type ResultKind int32

const (
	ResultKindVoid         ResultKind = 0x0001
	ResultKindRows         ResultKind = 0x0002
	ResultKindSetKeyspace  ResultKind = 0x0003
	ResultKindPrepared     ResultKind = 0x0004
	ResultKindSchemaChange ResultKind = 0x0005
)

func (k ResultKind) String() string {
	switch k {
	case ResultKindVoid:
		return "VOID"
	case ResultKindRows:
		return "ROWS"
	case ResultKindSetKeyspace:
		return "SET_KEYSPACE"
	case ResultKindPrepared:
		return "PREPARED"
	case ResultKindSchemaChange:
		return "SCHEMA_CHANGE"
	default:
		return "UNKNOWN"
	}
}

// RowsFlagGlobalTablesSpec is the Rows/Prepared metadata flag indicating a single keyspace/table pair
// applies to every column, rather than each column carrying its own pair.
const RowsFlagGlobalTablesSpec = uint32(0x0001)

// QueryFlag is the flags byte of a QueryParameters block.
type QueryFlag uint8

const (
	QueryFlagValues            QueryFlag = 0x01
	QueryFlagSkipMetadata      QueryFlag = 0x02
	QueryFlagPageSize          QueryFlag = 0x04
	QueryFlagPagingState       QueryFlag = 0x08
	QueryFlagSerialConsistency QueryFlag = 0x10
	QueryFlagDefaultTimestamp  QueryFlag = 0x20
	QueryFlagValueNames        QueryFlag = 0x40
)

func (f QueryFlag) Add(other QueryFlag) QueryFlag { return f | other }
func (f QueryFlag) Contains(other QueryFlag) bool { return f&other == other }

// ErrorCode is the [int] leading an ERROR message body.
type ErrorCode int32

const (
	ErrorCodeServer          ErrorCode = 0x0000
	ErrorCodeProtocol        ErrorCode = 0x000A
	ErrorCodeBadCredentials  ErrorCode = 0x0100
	ErrorCodeUnavailable     ErrorCode = 0x1000
	ErrorCodeOverloaded      ErrorCode = 0x1001
	ErrorCodeBootstrapping   ErrorCode = 0x1002
	ErrorCodeTruncateFailure ErrorCode = 0x1003
	ErrorCodeWriteTimeout    ErrorCode = 0x1100
	ErrorCodeReadTimeout     ErrorCode = 0x1200
	ErrorCodeReadFailure     ErrorCode = 0x1300
	ErrorCodeFunctionFailure ErrorCode = 0x1400
	ErrorCodeWriteFailure    ErrorCode = 0x1500
	ErrorCodeSyntaxError     ErrorCode = 0x2000
	ErrorCodeUnauthorized    ErrorCode = 0x2100
	ErrorCodeInvalid         ErrorCode = 0x2200
	ErrorCodeConfigError     ErrorCode = 0x2300
	ErrorCodeAlreadyExists   ErrorCode = 0x2400
	ErrorCodeUnprepared      ErrorCode = 0x2500
)

// WriteType identifies the kind of write that triggered a WriteTimeout or WriteFailure error. It is
// carried as a [string] on the wire, not a numeric code.
type WriteType string

const (
	WriteTypeSimple        WriteType = "SIMPLE"
	WriteTypeBatch         WriteType = "BATCH"
	WriteTypeUnloggedBatch WriteType = "UNLOGGED_BATCH"
	WriteTypeCounter       WriteType = "COUNTER"
	WriteTypeBatchLog      WriteType = "BATCH_LOG"
	WriteTypeCas           WriteType = "CAS"
	WriteTypeView          WriteType = "VIEW"
	WriteTypeCdc           WriteType = "CDC"
)

func (w WriteType) IsValid() bool {
	switch w {
	case WriteTypeSimple, WriteTypeBatch, WriteTypeUnloggedBatch, WriteTypeCounter,
		WriteTypeBatchLog, WriteTypeCas, WriteTypeView, WriteTypeCdc:
		return true
	default:
		return false
	}
}
