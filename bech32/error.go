// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidCharacter indicates a string contains a character that is
	// outside of the printable ASCII range, is not part of the bech32
	// charset, or mixes upper and lower case.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrChecksumMismatch indicates the checksum of a string does not verify
	// under the checksum constant of the requested variant.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrInvalidHrp indicates the human-readable part is empty, too long,
	// or the separator is missing.
	ErrInvalidHrp = ErrorKind("ErrInvalidHrp")

	// ErrLengthOutOfRange indicates a string is shorter than the minimum
	// possible encoding or longer than the permitted maximum.
	ErrLengthOutOfRange = ErrorKind("ErrLengthOutOfRange")

	// ErrInvalidPadding indicates that regrouping 5-bit values into bytes
	// left more than 4 bits of padding or non-zero padding bits.
	ErrInvalidPadding = ErrorKind("ErrInvalidPadding")

	// ErrInvalidDataValue indicates an input value does not fit in the
	// number of bits it is declared to carry.
	ErrInvalidDataValue = ErrorKind("ErrInvalidDataValue")

	// ErrInvalidBitGroups indicates a bit regrouping was requested with a
	// group size outside of 1 to 8 bits.
	ErrInvalidBitGroups = ErrorKind("ErrInvalidBitGroups")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a bech32-related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
