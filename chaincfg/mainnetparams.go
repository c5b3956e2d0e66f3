// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main Zcash network.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",
		Net:  MainNet,

		// Address encoding magics
		P2PKHAddrID: [2]byte{0x1c, 0xb8}, // starts with t1
		P2SHAddrID:  [2]byte{0x1c, 0xbd}, // starts with t3
		P2PKHPrefix: "t1",
		P2SHPrefix:  "t3",

		// Human-readable parts
		SaplingHRP: "zs",
		UnifiedHRP: "u",
		TexHRP:     "tex",
	}
}
