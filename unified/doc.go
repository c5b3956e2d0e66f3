// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package unified implements the container format of Zcash unified addresses.

A unified address bundles receivers of several kinds, each tagged by a
typecode, into a single string.  The receivers are serialized in increasing
typecode order as

	CompactSize(typecode) || CompactSize(length) || payload

followed by a 16 byte padding suffix holding the human-readable part padded
with zeros.  The container is then permuted with F4Jumble and encoded with the
bech32m checksum.

The CompactSize routines are those of the Decred wire protocol, which reject
non-canonical encodings.

# Receiver Rules

A valid receiver set:

  - has typecodes no greater than MaxTypecode in strictly increasing order
  - gives every known typecode its exact payload length
  - includes a Sapling or an Orchard receiver
  - does not include both a P2PKH and a P2SH receiver

Receivers with typecodes this package does not know are carried through
unchanged.
*/
package unified
