// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package zaddr validates, classifies, and decodes human-readable Zcash payment
addresses.

Four address families are supported:

  - Transparent addresses (t1 and t3 on the main network) which are
    Base58Check encodings of the hash of a public key or script
  - Sapling addresses (zs) which are bech32 encodings of a diversifier and a
    diversified transmission key
  - Unified addresses (u) which bundle typed receivers into a jumbled bech32m
    container
  - TEX addresses (tex) which are bech32m encodings of a public key hash that
    only accepts funds from transparent sources

The family of an input is selected by its prefix alone and only that family's
decoder is attempted.  Decode returns the decoded Address or an error that
wraps the reason decoding failed, while IsValid, GetType, Normalize, and
GetReceivers absorb failures into their result and never panic.

By default only main network addresses are accepted.  WithNetwork selects a
different network and WithAnyNetwork accepts all of them.  WithLenientParsing
picks the first run of at least twenty letters and digits out of surrounding
text before decoding it.

# Errors

Errors returned by this package are of type zaddr.Error or wrap errors of the
codec packages base58check, bech32, f4jumble, and unified.  This allows the
caller to programmatically determine the specific error by using errors.Is or
errors.As against the exported ErrorKind of each package.
*/
package zaddr
