// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"fmt"
	"strings"

	"github.com/ruzcash/zaddr/bech32"
	"github.com/ruzcash/zaddr/f4jumble"
)

// MaxEncodedLength is the maximum length of an encoded unified address this
// package will attempt to decode.  It comfortably exceeds the encoding of a
// container with every known receiver, while bounding the work done on
// hostile input.
const MaxEncodedLength = 2048

// Encode serializes the receivers into a unified address string with the
// given human-readable part.  The container is packed, jumbled, and then
// encoded with the bech32m checksum.
func Encode(hrp string, receivers []Receiver) (string, error) {
	hrp = strings.ToLower(hrp)
	packed, err := Pack(hrp, receivers)
	if err != nil {
		return "", err
	}
	jumbled, err := f4jumble.Jumble(packed)
	if err != nil {
		return "", err
	}
	return bech32.EncodeFromBase256(hrp, jumbled, bech32.Bech32m)
}

// Decode parses a unified address string and returns its human-readable part
// along with the receivers it carries.  It is the exact inverse of Encode.
//
// Callers are responsible for checking the returned human-readable part
// belongs to the network they expect.
func Decode(s string) (string, []Receiver, error) {
	if len(s) > MaxEncodedLength {
		str := fmt.Sprintf("unified address length %d exceeds the maximum "+
			"of %d", len(s), MaxEncodedLength)
		return "", nil, makeError(ErrLengthOutOfRange, str)
	}

	hrp, data, err := bech32.DecodeNoLimit(s, bech32.Bech32m)
	if err != nil {
		return "", nil, err
	}
	jumbled, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	packed, err := f4jumble.Unjumble(jumbled)
	if err != nil {
		return "", nil, err
	}
	receivers, err := Unpack(hrp, packed)
	if err != nil {
		return "", nil, err
	}
	return hrp, receivers, nil
}
