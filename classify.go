// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"fmt"
	"strings"

	"github.com/ruzcash/zaddr/base58check"
	"github.com/ruzcash/zaddr/bech32"
	"github.com/ruzcash/zaddr/chaincfg"
	"github.com/ruzcash/zaddr/unified"
)

const (
	// MaxAddressLength is the maximum length of input that is considered at
	// all.  Longer input is rejected before it is scanned.
	MaxAddressLength = 4096

	// TransparentAddrLen is the length of every encoded transparent address.
	TransparentAddrLen = 35

	// minCandidateLen is the minimum length of a run of ASCII letters and
	// digits extracted from the input under lenient parsing.
	minCandidateLen = 20
)

// Status describes the outcome of classifying an input string.
type Status uint8

// These constants define the classification outcomes.
const (
	// StatusValid indicates the input is a valid address.
	StatusValid Status = iota

	// StatusInvalid indicates the input starts with the prefix of a
	// supported address family but does not decode as one.
	StatusInvalid

	// StatusUnknown indicates the input does not start with the prefix of
	// any supported address family of the accepted networks.
	StatusUnknown
)

// String returns the status as a human-readable name.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusUnknown:
		return "unknown"
	}
	return fmt.Sprintf("Unknown Status (%d)", uint8(s))
}

// Classification is the result of classifying an input string.  Address is
// only set when the status is StatusValid and Err is only set otherwise.
type Classification struct {
	Status  Status
	Type    TypeTag
	Address Address
	Err     error
}

// valid returns the classification of a successfully decoded address.
func valid(addr Address) Classification {
	return Classification{
		Status:  StatusValid,
		Type:    addr.Type(),
		Address: addr,
	}
}

// invalid returns the classification of input whose prefix selected a family
// that failed to decode it.
func invalid(err error) Classification {
	return Classification{Status: StatusInvalid, Type: TypeUnknown, Err: err}
}

// unknown returns the classification of input no family accepted.
func unknown(err error) Classification {
	return Classification{Status: StatusUnknown, Type: TypeUnknown, Err: err}
}

// isAlnum returns whether the byte is an ASCII letter or digit.
func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// extractCandidate returns the first run of at least minCandidateLen ASCII
// letters and digits in s and whether one exists.
func extractCandidate(s string) (string, bool) {
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && isAlnum(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minCandidateLen {
			return s[start:i], true
		}
		start = -1
	}
	return "", false
}

// bech32HRP returns the lowercase text before the last '1' of s, which is the
// human-readable part when s is a bech32 encoding.  It returns false when
// there is no such text.
func bech32HRP(s string) (string, bool) {
	one := strings.LastIndexByte(s, '1')
	if one < 1 {
		return "", false
	}
	return strings.ToLower(s[:one]), true
}

// decoder attempts to decode s as the family whose prefix it matched for the
// network described by params.
type decoder func(s string, params *chaincfg.Params) (Address, error)

// matchFamily returns the decoder for the family whose human-readable part or
// literal prefix s carries on the network described by params, or nil when s
// matches none of them.
//
// Bech32 human-readable parts are tried before the Base58 prefixes.
func matchFamily(s string, params *chaincfg.Params) decoder {
	if hrp, ok := bech32HRP(s); ok {
		switch hrp {
		case params.SaplingAddrHRP():
			return decodeSapling
		case params.UnifiedAddrHRP():
			return decodeUnified
		case params.TexAddrHRP():
			return decodeTex
		}
	}

	switch {
	case strings.HasPrefix(s, params.P2PKHPrefix):
		return decodeP2PKH
	case strings.HasPrefix(s, params.P2SHPrefix):
		return decodeP2SH
	}
	return nil
}

// decodeTransparent decodes a Base58Check transparent address of the given
// kind.
func decodeTransparent(s string, kind TransparentKind,
	params *chaincfg.Params) (Address, error) {

	if len(s) != TransparentAddrLen {
		str := fmt.Sprintf("transparent address length %d is not %d", len(s),
			TransparentAddrLen)
		return nil, makeError(ErrLengthOutOfRange, str)
	}
	version, payload, err := base58check.Decode(s)
	if err != nil {
		return nil, err
	}

	want := params.AddrIDP2PKH()
	if kind == P2SH {
		want = params.AddrIDP2SH()
	}
	if version != want {
		str := fmt.Sprintf("%v address version %x is not %x", kind, version,
			want)
		return nil, makeError(ErrInvalidPayload, str)
	}
	return newAddressTransparent(kind, payload, params)
}

// decodeP2PKH decodes a pay-to-pubkey-hash address.
func decodeP2PKH(s string, params *chaincfg.Params) (Address, error) {
	return decodeTransparent(s, P2PKH, params)
}

// decodeP2SH decodes a pay-to-script-hash address.
func decodeP2SH(s string, params *chaincfg.Params) (Address, error) {
	return decodeTransparent(s, P2SH, params)
}

// encodedBech32Len returns the length of the bech32 encoding of a payload of
// payloadLen bytes under the given human-readable part.
func encodedBech32Len(hrp string, payloadLen int) int {
	const checksumLen = 6
	return len(hrp) + 1 + (payloadLen*8+4)/5 + checksumLen
}

// decodeSapling decodes a bech32 Sapling address.  The regtest encoding is
// longer than the BIP-173 limit, so the bound is the exact encoded length of a
// Sapling payload under the network's prefix.
func decodeSapling(s string, params *chaincfg.Params) (Address, error) {
	hrp := params.SaplingAddrHRP()
	maxLen := encodedBech32Len(hrp, SaplingAddrLen)
	_, payload, err := bech32.DecodeToBase256WithLimit(s, bech32.Bech32,
		maxLen)
	if err != nil {
		return nil, err
	}
	return NewAddressSapling(payload, params)
}

// decodeUnified decodes a bech32m unified address.
func decodeUnified(s string, params *chaincfg.Params) (Address, error) {
	_, receivers, err := unified.Decode(s)
	if err != nil {
		return nil, err
	}
	return NewAddressUnified(receivers, params)
}

// decodeTex decodes a bech32m TEX address.
func decodeTex(s string, params *chaincfg.Params) (Address, error) {
	hrp := params.TexAddrHRP()
	maxLen := encodedBech32Len(hrp, texHashLen)
	_, payload, err := bech32.DecodeToBase256WithLimit(s, bech32.Bech32m,
		maxLen)
	if err != nil {
		return nil, err
	}
	return NewAddressTex(payload, params)
}

// Classify determines which kind of address s is and decodes it.  It never
// panics.
//
// Leading and trailing white space is ignored.  The family is selected solely
// by the human-readable part or literal prefix of the input, and only that
// family's decoder is tried, so a malformed address is reported as
// StatusInvalid along with the reason rather than being retried as another
// family.  Input that matches no family of the accepted networks is reported
// as StatusUnknown.  When it matches a family of another network and decodes
// there, the error is ErrWrongNetwork.
func Classify(s string, opts ...Option) Classification {
	cfg := applyOptions(opts)

	if len(s) > MaxAddressLength {
		str := fmt.Sprintf("input length %d exceeds the maximum of %d",
			len(s), MaxAddressLength)
		return unknown(makeError(ErrLengthOutOfRange, str))
	}

	s = strings.TrimSpace(s)
	if cfg.lenient {
		candidate, ok := extractCandidate(s)
		if !ok {
			str := "input does not contain an address candidate"
			return unknown(makeError(ErrInvalidInput, str))
		}
		s = candidate
	}
	if s == "" {
		return unknown(makeError(ErrInvalidInput, "empty input"))
	}

	networks := cfg.networks()
	if len(networks) == 0 {
		str := fmt.Sprintf("network %v is not defined", cfg.net)
		return unknown(makeError(ErrInvalidInput, str))
	}

	for _, params := range networks {
		decode := matchFamily(s, params)
		if decode == nil {
			continue
		}
		addr, err := decode(s, params)
		if err != nil {
			log.Debugf("Rejected %q on %s: %v", s, params.Name, err)
			return invalid(err)
		}
		log.Tracef("Classified %q as %s on %s", s, addr.Type(), params.Name)
		return valid(addr)
	}

	return classifyForeign(s, networks)
}

// classifyForeign classifies input that matched no family of the accepted
// networks by checking whether it is a valid address of another network.
func classifyForeign(s string, accepted []*chaincfg.Params) Classification {
	isAccepted := func(net chaincfg.Network) bool {
		for _, params := range accepted {
			if params.Net == net {
				return true
			}
		}
		return false
	}

	for _, params := range chaincfg.AllParams() {
		if isAccepted(params.Net) {
			continue
		}
		decode := matchFamily(s, params)
		if decode == nil {
			continue
		}
		addr, err := decode(s, params)
		if err != nil {
			continue
		}
		str := fmt.Sprintf("%s address is for %v", addr.Type(), params.Net)
		log.Debugf("Rejected %q: %s", s, str)
		return unknown(makeError(ErrWrongNetwork, str))
	}

	str := "input does not start with a known address prefix"
	log.Tracef("Rejected %q: %s", s, str)
	return unknown(makeError(ErrUnknownPrefix, str))
}
