// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58check implements the base58check encoding used by Zcash
transparent addresses.

A base58check string is the base58 encoding of two version bytes, a payload,
and a four byte checksum made of the leading bytes of the double SHA-256 of the
version and payload.  The base58 codec and the checksum are provided by
github.com/btcsuite/btcd/btcutil/base58.

Zcash prefixes transparent addresses with two version bytes rather than the
single byte Bitcoin uses, which is what makes them read as "t1", "t3", "tm"
and "t2".
*/
package base58check
