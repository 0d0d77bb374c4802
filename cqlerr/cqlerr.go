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

// Package cqlerr centralizes the error taxonomy shared by every codec and client package in this
// module: a fixed set of Kinds that let callers distinguish transport faults from decode faults from
// protocol violations, regardless of which package raised the error.
package cqlerr

import (
	"errors"
	"fmt"
)

// Kind discriminates the five ways a codec or client operation can fail.
type Kind int

const (
	// Io indicates the underlying transport failed (closed, reset, refused).
	Io Kind = iota
	// UnexpectedEOF indicates a decoder wanted more bytes than remain in a frame or stream.
	UnexpectedEOF
	// Utf8 indicates a supposedly-UTF-8 string was not valid.
	Utf8
	// Protocol indicates a well-formed byte sequence that violates the protocol.
	Protocol
	// Unimplemented indicates a feature the peer requested, or the caller passed, that this module
	// does not encode or decode.
	Unimplemented
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "Io"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case Utf8:
		return "Utf8"
	case Protocol:
		return "Protocol"
	case Unimplemented:
		return "Unimplemented"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every codec and client operation in this module.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error of the given Kind with a formatted message and no wrapped cause.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given Kind, wrapping cause so errors.Is/errors.As still reach it.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return New(kind, format, args...)
	}
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind carried by err, or false if err is not one of ours.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
