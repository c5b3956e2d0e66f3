// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// alphabet is the modified base58 alphabet used by Bitcoin and Zcash.
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// VersionLen is the number of version bytes that prefix the payload.
	VersionLen = 2

	// ChecksumLen is the number of checksum bytes that trail the payload.
	ChecksumLen = 4
)

// Encode prepends the two version bytes and appends a four byte checksum to
// the payload and returns the base58 encoding of the result.
//
// The second version byte is handed to the single version byte encoder as the
// first byte of its payload, which yields the same byte layout.
func Encode(version [VersionLen]byte, payload []byte) string {
	b := make([]byte, 0, VersionLen-1+len(payload))
	b = append(b, version[1])
	b = append(b, payload...)
	return base58.CheckEncode(b, version[0])
}

// Decode decodes a string that was encoded with Encode and verifies the
// checksum.  It returns the two version bytes and the payload between them
// and the checksum.
func Decode(input string) ([VersionLen]byte, []byte, error) {
	var version [VersionLen]byte

	// The base58 decoder maps strings with characters outside of the
	// alphabet to an empty result, so they are rejected up front with the
	// offending character.
	for i, r := range input {
		if !strings.ContainsRune(alphabet, r) {
			str := fmt.Sprintf("invalid base58 character %q at index %d",
				r, i)
			return version, nil, makeError(ErrInvalidCharacter, str)
		}
	}

	result, version0, err := base58.CheckDecode(input)
	switch {
	case errors.Is(err, base58.ErrInvalidFormat):
		str := "decoded string cannot hold the version and checksum bytes"
		return version, nil, makeError(ErrInvalidFormat, str)
	case errors.Is(err, base58.ErrChecksum):
		str := fmt.Sprintf("checksum of %q does not verify", input)
		return version, nil, makeError(ErrChecksumMismatch, str)
	case err != nil:
		return version, nil, err
	}
	if len(result) < VersionLen-1 {
		str := fmt.Sprintf("decoded string has %d version bytes instead of "+
			"%d", len(result)+1, VersionLen)
		return version, nil, makeError(ErrInvalidFormat, str)
	}

	version[0] = version0
	version[1] = result[0]
	return version, result[VersionLen-1:], nil
}
