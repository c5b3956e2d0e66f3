// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidHrp indicates a human-readable part is empty or too long to
	// be carried in the padding suffix.
	ErrInvalidHrp = ErrorKind("ErrInvalidHrp")

	// ErrLengthOutOfRange indicates an encoded unified address is longer
	// than MaxEncodedLength.
	ErrLengthOutOfRange = ErrorKind("ErrLengthOutOfRange")

	// ErrMalformedPadding indicates the trailing padding suffix of a
	// container does not match the one derived from the human-readable part.
	ErrMalformedPadding = ErrorKind("ErrMalformedPadding")

	// ErrTruncatedReceiver indicates a receiver header or payload runs past
	// the end of the container.
	ErrTruncatedReceiver = ErrorKind("ErrTruncatedReceiver")

	// ErrNonCanonicalCompactSize indicates a typecode or length is not
	// encoded with the shortest possible CompactSize form.
	ErrNonCanonicalCompactSize = ErrorKind("ErrNonCanonicalCompactSize")

	// ErrTypecodeOutOfRange indicates a typecode exceeds MaxTypecode.
	ErrTypecodeOutOfRange = ErrorKind("ErrTypecodeOutOfRange")

	// ErrInvalidReceiverLength indicates a receiver with a known typecode
	// does not have the exact payload length defined for it.
	ErrInvalidReceiverLength = ErrorKind("ErrInvalidReceiverLength")

	// ErrUnsortedTypecodes indicates receivers are not in increasing
	// typecode order.
	ErrUnsortedTypecodes = ErrorKind("ErrUnsortedTypecodes")

	// ErrDuplicateTypecode indicates two receivers share a typecode.
	ErrDuplicateTypecode = ErrorKind("ErrDuplicateTypecode")

	// ErrNoShieldedReceiver indicates a receiver set has neither a Sapling
	// nor an Orchard receiver.
	ErrNoShieldedReceiver = ErrorKind("ErrNoShieldedReceiver")

	// ErrBothTransparent indicates a receiver set carries both a P2PKH and
	// a P2SH receiver.
	ErrBothTransparent = ErrorKind("ErrBothTransparent")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a unified address container error.
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
