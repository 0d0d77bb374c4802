package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/cqlgo/native3/frame"
	"github.com/cqlgo/native3/message"
	"github.com/cqlgo/native3/primitive"
)

func main() {
	// Requests: built in Go, encoded to wire bytes, then decoded back to confirm the round trip.
	testRequest(frame.NewRequestFrame(1, message.NewStartup()))

	query := &message.Query{
		Query:   "SELECT * FROM system.local",
		Options: message.NewQueryParameters(primitive.ConsistencyLevelOne),
	}
	testRequest(frame.NewRequestFrame(1, query))

	// Responses are never encoded by this client (it only ever receives them), so this demo decodes
	// a RESULT/Rows frame straight from its wire bytes instead of round-tripping through Encode.
	testResponseBytes([]byte{
		131, 0, 0, 0, 8,
		0, 0, 0, 59, // body length
		0, 0, 0, 2, // kind = Rows
		0, 0, 0, 1, // flags = GLOBAL_TABLES_SPEC
		0, 0, 0, 2, // column count
		0, 4, 'r', 'u', 's', 't',
		0, 4, 't', 'e', 's', 't',
		0, 2, 'i', 'd', 0x00, 0x0D, // varchar
		0, 5, 'v', 'a', 'l', 'u', 'e', 0x00, 0x08, // float
		0, 0, 0, 1, // row count
		0, 0, 0, 4, 'a', 's', 'd', 'f',
		0, 0, 0, 4, 0x3F, 0x9E, 0x04, 0x19,
	})
}

func testRequest(originalFrame *frame.Frame) {
	println("--------------------------------")
	fmt.Printf("original frame:\n%v\n", originalFrame)
	codec := frame.NewCodec()
	encodedFrame := bytes.Buffer{}
	if err := codec.EncodeFrame(originalFrame, &encodedFrame); err != nil {
		panic(err)
	}
	fmt.Print("encoded frame:\n", hex.Dump(encodedFrame.Bytes()))
	decodedFrame, err := codec.DecodeFrame(&encodedFrame)
	if err != nil {
		panic(err)
	}
	fmt.Printf("decoded frame:\n%v\n", decodedFrame)
	println()
}

func testResponseBytes(wire []byte) {
	println("--------------------------------")
	fmt.Print("wire bytes:\n", hex.Dump(wire))
	decodedFrame, err := frame.NewCodec().DecodeFrame(bytes.NewReader(wire))
	if err != nil {
		panic(err)
	}
	fmt.Printf("decoded frame:\n%v\n", decodedFrame)
	if rows, ok := decodedFrame.Body.(*message.Rows); ok {
		for i, row := range rows.Rows {
			fmt.Printf("row %d: id=%q value=%v\n", i, row.Values[0].Str, row.Values[1].F32)
		}
	}
	println()
}
