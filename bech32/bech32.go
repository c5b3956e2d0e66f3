// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"errors"
	"fmt"

	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// charset is the set of characters used in the data section of bech32
	// strings.  Note that this is ordered, such that for a given charset[i],
	// i is the binary value of the character.
	charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// checksumLength is the number of characters in the trailing checksum.
	checksumLength = 6

	// MaxLength is the maximum total length of a bech32 string as defined
	// by BIP-173.  Decode enforces it.  DecodeNoLimit does not, and callers
	// of it are expected to bound the input themselves.
	MaxLength = 90

	// MinLength is the minimum length of a bech32 string: a one character
	// human-readable part, the separator, and the checksum.
	MinLength = 1 + 1 + checksumLength

	// MaxHRPLength is the maximum length of the human-readable part.
	MaxHRPLength = 83
)

// Variant identifies which checksum constant a bech32 string is computed
// under.
type Variant uint8

const (
	// Bech32 is the original BIP-173 checksum variant.
	Bech32 Variant = iota

	// Bech32m is the BIP-350 checksum variant.
	Bech32m
)

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// version returns the btcutil checksum version that corresponds to v.
func (v Variant) version() btcbech32.Version {
	if v == Bech32m {
		return btcbech32.VersionM
	}
	return btcbech32.Version0
}

// convertError maps an error returned by the btcutil bech32 package to the
// error kinds of this package.
func convertError(err error) error {
	var (
		mixedCase   btcbech32.ErrMixedCase
		badChar     btcbech32.ErrInvalidCharacter
		nonCharset  btcbech32.ErrNonCharsetChar
		badLength   btcbech32.ErrInvalidLength
		sepIndex    btcbech32.ErrInvalidSeparatorIndex
		badChecksum btcbech32.ErrInvalidChecksum
		badData     btcbech32.ErrInvalidDataByte
		bitGroups   btcbech32.ErrInvalidBitGroups
		incomplete  btcbech32.ErrInvalidIncompleteGroup
	)
	switch {
	case errors.As(err, &mixedCase):
		return makeError(ErrInvalidCharacter, "string mixes upper and "+
			"lower case characters")
	case errors.As(err, &badChar), errors.As(err, &nonCharset):
		return makeError(ErrInvalidCharacter, err.Error())
	case errors.As(err, &badLength):
		str := fmt.Sprintf("string length %d is less than the minimum of %d",
			int(badLength), MinLength)
		return makeError(ErrLengthOutOfRange, str)
	case errors.As(err, &sepIndex):
		if int(sepIndex) < 1 {
			str := "missing separator or empty human-readable part"
			return makeError(ErrInvalidHrp, str)
		}
		return makeError(ErrLengthOutOfRange, "data part is shorter than "+
			"the checksum")
	case errors.As(err, &badChecksum):
		return makeError(ErrChecksumMismatch, err.Error())
	case errors.As(err, &badData):
		str := fmt.Sprintf("data value %d does not fit in 5 bits",
			byte(badData))
		return makeError(ErrInvalidDataValue, str)
	case errors.As(err, &bitGroups):
		return makeError(ErrInvalidBitGroups, err.Error())
	case errors.As(err, &incomplete):
		return makeError(ErrInvalidPadding, "more than 4 bits of padding or "+
			"non-zero padding bits")
	}
	return err
}

// Decode decodes a bech32 string that is no longer than MaxLength and whose
// checksum was computed under the provided variant.  It returns the
// human-readable part and the data part excluding the checksum.
//
// Note that the returned data is 5-bit (base32) encoded and the human-readable
// part will be lowercase.
func Decode(bech string, variant Variant) (string, []byte, error) {
	if len(bech) > MaxLength {
		str := fmt.Sprintf("string length %d exceeds the maximum of %d",
			len(bech), MaxLength)
		return "", nil, makeError(ErrLengthOutOfRange, str)
	}
	return DecodeNoLimit(bech, variant)
}

// DecodeNoLimit is identical to Decode except it does not enforce the BIP-173
// maximum length.  It is meant for encodings such as unified addresses that
// legitimately exceed it, and callers must bound the length themselves.
//
// Only the checksum constant of the provided variant is accepted, so a string
// checksummed under the other variant fails with ErrChecksumMismatch.
func DecodeNoLimit(bech string, variant Variant) (string, []byte, error) {
	hrp, data, version, err := btcbech32.DecodeNoLimitWithVersion(bech)
	if err != nil {
		return "", nil, convertError(err)
	}
	if version != variant.version() {
		str := fmt.Sprintf("checksum does not verify as %s", variant)
		return "", nil, makeError(ErrChecksumMismatch, str)
	}
	if len(hrp) > MaxHRPLength {
		str := fmt.Sprintf("human-readable part length %d exceeds the "+
			"maximum of %d", len(hrp), MaxHRPLength)
		return "", nil, makeError(ErrInvalidHrp, str)
	}
	return hrp, data, nil
}

// Encode encodes 5-bit data into a bech32 string with the given human-readable
// part and checksum variant.  The human-readable part is converted to lowercase
// since mixed case encodings are not permitted.
//
// The total length is not bounded here.  Callers producing strings meant to be
// read by Decode must keep within MaxLength.
func Encode(hrp string, data []byte, variant Variant) (string, error) {
	if len(hrp) < 1 || len(hrp) > MaxHRPLength {
		str := fmt.Sprintf("human-readable part length %d is not in the "+
			"range 1 to %d", len(hrp), MaxHRPLength)
		return "", makeError(ErrInvalidHrp, str)
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			str := fmt.Sprintf("invalid human-readable part character "+
				"0x%02x at index %d", hrp[i], i)
			return "", makeError(ErrInvalidHrp, str)
		}
	}

	encode := btcbech32.Encode
	if variant == Bech32m {
		encode = btcbech32.EncodeM
	}
	encoded, err := encode(hrp, data)
	if err != nil {
		return "", convertError(err)
	}
	return encoded, nil
}

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.
//
// When pad is true, a final partial group is zero-padded.  When it is false,
// the conversion is strict: at most 4 bits may be left over and they must all
// be zero, which is the rule for turning bech32 data back into bytes.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		str := fmt.Sprintf("cannot regroup from %d to %d bits", fromBits,
			toBits)
		return nil, makeError(ErrInvalidBitGroups, str)
	}

	// Values wider than the source group would otherwise be silently
	// truncated.
	for i, b := range data {
		if uint32(b)>>fromBits != 0 {
			str := fmt.Sprintf("value %d at index %d does not fit in %d bits",
				b, i, fromBits)
			return nil, makeError(ErrInvalidDataValue, str)
		}
	}

	regrouped, err := btcbech32.ConvertBits(data, fromBits, toBits, pad)
	if err != nil {
		return nil, convertError(err)
	}
	return regrouped, nil
}

// EncodeFromBase256 converts a base256-encoded byte slice into a base32-encoded
// byte slice and then encodes it into a bech32 string with the given
// human-readable part and variant.
func EncodeFromBase256(hrp string, data []byte, variant Variant) (string, error) {
	converted, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, converted, variant)
}

// DecodeToBase256 decodes a bech32 string of at most MaxLength characters
// under the given variant and returns the human-readable part along with the
// data converted to base256.
func DecodeToBase256(bech string, variant Variant) (string, []byte, error) {
	return decodeToBase256(bech, variant, MaxLength)
}

// DecodeToBase256WithLimit is identical to DecodeToBase256 except the length
// bound is provided by the caller instead of being the BIP-173 maximum.  The
// bound is checked before any checksum work.
func DecodeToBase256WithLimit(bech string, variant Variant, maxLen int) (string, []byte, error) {
	return decodeToBase256(bech, variant, maxLen)
}

func decodeToBase256(bech string, variant Variant, maxLen int) (string, []byte, error) {
	if len(bech) > maxLen {
		str := fmt.Sprintf("string length %d exceeds the maximum of %d",
			len(bech), maxLen)
		return "", nil, makeError(ErrLengthOutOfRange, str)
	}
	hrp, data, err := DecodeNoLimit(bech, variant)
	if err != nil {
		return "", nil, err
	}
	converted, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, converted, nil
}
