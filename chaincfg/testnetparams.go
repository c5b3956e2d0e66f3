// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams returns the network parameters for the public Zcash test
// network.
func TestNetParams() *Params {
	return &Params{
		Name: "testnet",
		Net:  TestNet,

		// Address encoding magics
		P2PKHAddrID: [2]byte{0x1d, 0x25}, // starts with tm
		P2SHAddrID:  [2]byte{0x1c, 0xba}, // starts with t2
		P2PKHPrefix: "tm",
		P2SHPrefix:  "t2",

		// Human-readable parts
		SaplingHRP: "ztestsapling",
		UnifiedHRP: "utest",
		TexHRP:     "textest",
	}
}
