// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unified

import (
	"fmt"
)

// Typecode identifies the kind of a receiver inside a unified address.
type Typecode uint32

// These constants define the typecodes with a defined meaning.  Typecodes
// above TypecodeOrchard up to and including MaxTypecode are valid but carry
// receivers this package does not interpret.
const (
	TypecodeP2PKH   Typecode = 0x00
	TypecodeP2SH    Typecode = 0x01
	TypecodeSapling Typecode = 0x02
	TypecodeOrchard Typecode = 0x03

	// MaxTypecode is the largest typecode permitted in a container.
	MaxTypecode Typecode = 0x02ffff
)

// These constants define the exact payload lengths of the receivers with known
// typecodes.
const (
	P2PKHLen   = 20
	P2SHLen    = 20
	SaplingLen = 43
	OrchardLen = 43
)

// String returns the typecode as a human-readable name.
func (tc Typecode) String() string {
	switch tc {
	case TypecodeP2PKH:
		return "p2pkh"
	case TypecodeP2SH:
		return "p2sh"
	case TypecodeSapling:
		return "sapling"
	case TypecodeOrchard:
		return "orchard"
	}
	return fmt.Sprintf("unknown(0x%x)", uint32(tc))
}

// IsKnown returns whether the typecode is one with a defined meaning.
func (tc Typecode) IsKnown() bool {
	return tc <= TypecodeOrchard
}

// IsShielded returns whether the typecode identifies a shielded receiver.
func (tc Typecode) IsShielded() bool {
	return tc == TypecodeSapling || tc == TypecodeOrchard
}

// IsTransparent returns whether the typecode identifies a transparent
// receiver.
func (tc Typecode) IsTransparent() bool {
	return tc == TypecodeP2PKH || tc == TypecodeP2SH
}

// ExpectedLen returns the payload length required for receivers of the
// typecode and whether the typecode has one.
func (tc Typecode) ExpectedLen() (int, bool) {
	switch tc {
	case TypecodeP2PKH:
		return P2PKHLen, true
	case TypecodeP2SH:
		return P2SHLen, true
	case TypecodeSapling:
		return SaplingLen, true
	case TypecodeOrchard:
		return OrchardLen, true
	}
	return 0, false
}

// Receiver is a single typed payload carried by a unified address.
type Receiver struct {
	Typecode Typecode
	Data     []byte
}

// String returns the receiver as its typecode name followed by its payload in
// hex.
func (r Receiver) String() string {
	return fmt.Sprintf("%v:%x", r.Typecode, r.Data)
}

// checkReceiver ensures a single receiver has a typecode in range and, when
// the typecode is known, the exact payload length defined for it.
func checkReceiver(r *Receiver) error {
	if r.Typecode > MaxTypecode {
		str := fmt.Sprintf("typecode 0x%x exceeds the maximum of 0x%x",
			uint32(r.Typecode), uint32(MaxTypecode))
		return makeError(ErrTypecodeOutOfRange, str)
	}
	if want, ok := r.Typecode.ExpectedLen(); ok && len(r.Data) != want {
		str := fmt.Sprintf("%v receiver has length %d instead of %d",
			r.Typecode, len(r.Data), want)
		return makeError(ErrInvalidReceiverLength, str)
	}
	return nil
}

// Validate ensures the receivers form a valid unified address.  Every receiver
// must pass the per receiver checks, typecodes must be strictly increasing,
// at least one receiver must be shielded, and P2PKH and P2SH receivers are
// mutually exclusive.
func Validate(receivers []Receiver) error {
	var hasShielded, hasP2PKH, hasP2SH bool
	for i := range receivers {
		r := &receivers[i]
		if err := checkReceiver(r); err != nil {
			return err
		}
		if i > 0 {
			prev := receivers[i-1].Typecode
			switch {
			case r.Typecode == prev:
				str := fmt.Sprintf("receiver %d repeats typecode %v", i,
					r.Typecode)
				return makeError(ErrDuplicateTypecode, str)
			case r.Typecode < prev:
				str := fmt.Sprintf("receiver %d typecode %v follows %v", i,
					r.Typecode, prev)
				return makeError(ErrUnsortedTypecodes, str)
			}
		}
		hasShielded = hasShielded || r.Typecode.IsShielded()
		hasP2PKH = hasP2PKH || r.Typecode == TypecodeP2PKH
		hasP2SH = hasP2SH || r.Typecode == TypecodeP2SH
	}

	if !hasShielded {
		str := fmt.Sprintf("none of the %d receivers is shielded",
			len(receivers))
		return makeError(ErrNoShieldedReceiver, str)
	}
	if hasP2PKH && hasP2SH {
		str := "receivers include both a p2pkh and a p2sh receiver"
		return makeError(ErrBothTransparent, str)
	}
	return nil
}

// Find returns the receiver with the given typecode and whether it exists.
func Find(receivers []Receiver, tc Typecode) (Receiver, bool) {
	for _, r := range receivers {
		if r.Typecode == tc {
			return r, true
		}
	}
	return Receiver{}, false
}
