// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"github.com/ruzcash/zaddr/unified"
)

// Decode decodes the string encoding of an address and returns the relevant
// Address if it is a valid encoding for a supported address family of an
// accepted network.  By default only main network addresses are accepted.
//
// The returned error wraps the reason decoding failed and can be inspected
// with errors.Is and errors.As against the error kinds of this package and
// the codec packages.
func Decode(s string, opts ...Option) (Address, error) {
	c := Classify(s, opts...)
	if c.Status != StatusValid {
		return nil, c.Err
	}
	return c.Address, nil
}

// IsValid returns whether s is a valid address.
func IsValid(s string, opts ...Option) bool {
	return Classify(s, opts...).Status == StatusValid
}

// GetType returns the family of the address s, or TypeUnknown when s is not a
// valid address.
func GetType(s string, opts ...Option) TypeTag {
	return Classify(s, opts...).Type
}

// Normalize returns the canonical encoding of the address s, which is the
// lowercase form for bech32 families with any surrounding white space
// removed.  The second return value is false, along with an empty string,
// when s is not a valid address.
func Normalize(s string, opts ...Option) (string, bool) {
	addr, err := Decode(s, opts...)
	if err != nil {
		return "", false
	}
	return addr.String(), true
}

// GetReceivers returns the raw receivers of the address s.  Every field is
// nil when s is not a valid address.
func GetReceivers(s string, opts ...Option) Receivers {
	addr, err := Decode(s, opts...)
	if err != nil {
		return Receivers{}
	}
	return addr.Receivers()
}

// ReceiverAddresses houses the receivers of an address re-encoded as
// standalone addresses of the same network.  Fields for receiver kinds the
// address does not carry are empty.  An Orchard receiver has no standalone
// encoding, so it is reported as a unified address with only that receiver.
type ReceiverAddresses struct {
	P2PKH   string
	P2SH    string
	Sapling string
	Orchard string
}

// GetReceiverAddresses returns the receivers of the address s re-encoded as
// standalone addresses.  Receivers with unknown typecodes are omitted.  A TEX
// address reports the pay-to-pubkey-hash address with the same hash.
func GetReceiverAddresses(s string, opts ...Option) ReceiverAddresses {
	addr, err := Decode(s, opts...)
	if err != nil {
		return ReceiverAddresses{}
	}
	params := addr.Network().Params()
	if params == nil {
		return ReceiverAddresses{}
	}

	var out ReceiverAddresses
	recv := addr.Receivers()
	if recv.P2PKH != nil {
		if a, err := NewAddressP2PKH(recv.P2PKH, params); err == nil {
			out.P2PKH = a.String()
		}
	}
	if recv.P2SH != nil {
		if a, err := NewAddressP2SH(recv.P2SH, params); err == nil {
			out.P2SH = a.String()
		}
	}
	if recv.Sapling != nil {
		if a, err := NewAddressSapling(recv.Sapling, params); err == nil {
			out.Sapling = a.String()
		}
	}
	if recv.Orchard != nil {
		orchard := []unified.Receiver{{
			Typecode: unified.TypecodeOrchard,
			Data:     recv.Orchard,
		}}
		if a, err := NewAddressUnified(orchard, params); err == nil {
			out.Orchard = a.String()
		}
	}
	return out
}
