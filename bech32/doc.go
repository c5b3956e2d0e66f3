// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides the bech32 format specified in BIP 173 along with the
bech32m variant specified in BIP 350.  The checksum and bit regrouping are
delegated to github.com/btcsuite/btcd/btcutil/bech32, and this package adds
strict variant selection and errors that support errors.Is.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a checksummed data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".

Zcash uses both variants: Sapling addresses carry the original bech32 checksum
while unified and TEX addresses carry the bech32m checksum.  Every decode call
names the variant it expects and a string checksummed under the other one is
rejected.

Unified addresses are longer than the 90 character limit imposed by BIP 173, so
DecodeNoLimit is provided for callers that bound the length themselves.

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
*/
package bech32
