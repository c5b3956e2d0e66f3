// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrUnknownPrefix indicates an address does not start with the prefix
	// or human-readable part of any supported address family.
	ErrUnknownPrefix = ErrorKind("ErrUnknownPrefix")

	// ErrWrongNetwork indicates an address belongs to a supported family
	// but is encoded for a network other than the requested one.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrLengthOutOfRange indicates an address is longer or shorter than any
	// valid encoding of the family its prefix selects.
	ErrLengthOutOfRange = ErrorKind("ErrLengthOutOfRange")

	// ErrInvalidPayload indicates the decoded payload of an address does not
	// have the size or version bytes its family requires.
	ErrInvalidPayload = ErrorKind("ErrInvalidPayload")

	// ErrInvalidPubKey indicates a provided public key is not a valid
	// secp256k1 public key.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")

	// ErrInvalidInput indicates the input could not be considered as an
	// address at all, such as when no candidate text is found or the
	// requested network is not defined.
	ErrInvalidInput = ErrorKind("ErrInvalidInput")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
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
