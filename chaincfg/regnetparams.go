// Copyright (c) 2018-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network.  The purpose of
// this network is primarily for unit tests and local integration testing.
//
// Transparent addresses on this network share their encoding magics with the
// public test network, so only the bech32 human-readable parts distinguish
// the two.
func RegNetParams() *Params {
	return &Params{
		Name: "regnet",
		Net:  RegNet,

		// Address encoding magics
		P2PKHAddrID: [2]byte{0x1d, 0x25}, // starts with tm
		P2SHAddrID:  [2]byte{0x1c, 0xba}, // starts with t2
		P2PKHPrefix: "tm",
		P2SHPrefix:  "t2",

		// Human-readable parts
		SaplingHRP: "zregtestsapling",
		UnifiedHRP: "uregtest",
		TexHRP:     "texregtest",
	}
}
