// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package f4jumble implements the F4Jumble unkeyed permutation used by Zcash
unified addresses.

F4Jumble is a four round Feistel network over a message split into a left half
of at most 64 bytes and a right half holding the remainder.  The round
functions are personalized BLAKE2b hashes, so a change to any byte of the
input diffuses across the entire output.  Unified address encoders apply it
before the bech32m step so that a corrupted or truncated string cannot decode
to a container that shares a prefix with the intended one.

Jumble and Unjumble are exact inverses for every message length from MinLength
to MaxLength inclusive and never modify their input.
*/
package f4jumble
