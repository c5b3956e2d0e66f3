// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/wire"
)

const (
	// PaddingLen is the length of the padding suffix appended to every
	// container before it is jumbled.
	PaddingLen = 16

	// pver is the protocol version handed to the CompactSize routines.  The
	// encoding does not vary with it.
	pver = wire.ProtocolVersion
)

// Padding returns the padding suffix for containers encoded under the given
// human-readable part: the bytes of the human-readable part followed by zeros
// up to PaddingLen.
func Padding(hrp string) ([PaddingLen]byte, error) {
	var padding [PaddingLen]byte
	if len(hrp) == 0 || len(hrp) > PaddingLen {
		str := fmt.Sprintf("human-readable part length %d is not in the "+
			"range 1 to %d", len(hrp), PaddingLen)
		return padding, makeError(ErrInvalidHrp, str)
	}
	copy(padding[:], hrp)
	return padding, nil
}

// SerializeSize returns the number of bytes Pack produces for the receivers.
func SerializeSize(receivers []Receiver) int {
	n := PaddingLen
	for _, r := range receivers {
		n += wire.VarIntSerializeSize(uint64(r.Typecode))
		n += wire.VarIntSerializeSize(uint64(len(r.Data)))
		n += len(r.Data)
	}
	return n
}

// Pack serializes the receivers into a container for the given human-readable
// part.  Each receiver is written as its CompactSize typecode, its CompactSize
// payload length, and the payload, followed by the padding suffix.
//
// The receivers are validated before anything is written.
func Pack(hrp string, receivers []Receiver) ([]byte, error) {
	if err := Validate(receivers); err != nil {
		return nil, err
	}
	padding, err := Padding(hrp)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(make([]byte, 0, SerializeSize(receivers)))
	for _, r := range receivers {
		if err := wire.WriteVarInt(buf, pver, uint64(r.Typecode)); err != nil {
			return nil, err
		}
		if err := wire.WriteVarInt(buf, pver, uint64(len(r.Data))); err != nil {
			return nil, err
		}
		buf.Write(r.Data)
	}
	buf.Write(padding[:])
	return buf.Bytes(), nil
}

// readCompactSize reads a CompactSize value and maps the failure modes of the
// wire decoder to container error kinds.
func readCompactSize(r io.Reader, field string, index int) (uint64, error) {
	val, err := wire.ReadVarInt(r, pver)
	switch {
	case errors.Is(err, wire.ErrNonCanonicalVarInt):
		str := fmt.Sprintf("receiver %d %s is not canonically encoded: %v",
			index, field, err)
		return 0, makeError(ErrNonCanonicalCompactSize, str)
	case err != nil:
		str := fmt.Sprintf("receiver %d %s is truncated", index, field)
		return 0, makeError(ErrTruncatedReceiver, str)
	}
	return val, nil
}

// Unpack parses a container produced by Pack for the given human-readable
// part.  The padding suffix is checked before any receiver is parsed, and the
// parsed receivers must satisfy the same rules Pack enforces.
//
// The returned receivers do not alias the input.
func Unpack(hrp string, data []byte) ([]Receiver, error) {
	padding, err := Padding(hrp)
	if err != nil {
		return nil, err
	}
	if len(data) < PaddingLen {
		str := fmt.Sprintf("container length %d cannot hold the %d byte "+
			"padding", len(data), PaddingLen)
		return nil, makeError(ErrMalformedPadding, str)
	}
	body, suffix := data[:len(data)-PaddingLen], data[len(data)-PaddingLen:]
	if !bytes.Equal(suffix, padding[:]) {
		str := fmt.Sprintf("padding %x does not match the %q padding %x",
			suffix, hrp, padding[:])
		return nil, makeError(ErrMalformedPadding, str)
	}

	var receivers []Receiver
	r := bytes.NewReader(body)
	for i := 0; r.Len() > 0; i++ {
		tc, err := readCompactSize(r, "typecode", i)
		if err != nil {
			return nil, err
		}
		if tc > uint64(MaxTypecode) {
			str := fmt.Sprintf("receiver %d typecode 0x%x exceeds the "+
				"maximum of 0x%x", i, tc, uint32(MaxTypecode))
			return nil, makeError(ErrTypecodeOutOfRange, str)
		}
		length, err := readCompactSize(r, "length", i)
		if err != nil {
			return nil, err
		}
		if length > uint64(r.Len()) {
			str := fmt.Sprintf("receiver %d declares %d bytes with %d "+
				"remaining", i, length, r.Len())
			return nil, makeError(ErrTruncatedReceiver, str)
		}

		recv := Receiver{Typecode: Typecode(tc), Data: make([]byte, length)}
		if _, err := io.ReadFull(r, recv.Data); err != nil {
			str := fmt.Sprintf("receiver %d payload is truncated", i)
			return nil, makeError(ErrTruncatedReceiver, str)
		}
		if err := checkReceiver(&recv); err != nil {
			return nil, err
		}
		receivers = append(receivers, recv)
	}

	if err := Validate(receivers); err != nil {
		return nil, err
	}
	return receivers, nil
}
