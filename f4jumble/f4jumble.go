// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package f4jumble

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/dchest/blake2b"
)

const (
	// MinLength is the minimum message length the permutation accepts.
	MinLength = 48

	// MaxLength is the maximum message length the permutation accepts.  It
	// is the length at which the G expansion exhausts its 16-bit counter.
	MaxLength = 4194368

	// maxLeftLength is the upper bound on the length of the left half.
	maxLeftLength = blake2b.Size

	// personalization prefixes for the H and G round functions.
	hPersonalization = "UA_F4Jumble_H"
	gPersonalization = "UA_F4Jumble_G"
)

// state holds the split of a message into its left and right halves.  The
// halves alias the caller's buffer and are permuted in place.
type state struct {
	left  []byte
	right []byte
}

// newState validates the message length and splits it into halves.
func newState(m []byte) (*state, error) {
	if len(m) < MinLength || len(m) > MaxLength {
		str := fmt.Sprintf("message length %d is not in the range %d to %d",
			len(m), MinLength, MaxLength)
		return nil, makeError(ErrInvalidLength, str)
	}
	leftLen := len(m) / 2
	if leftLen > maxLeftLength {
		leftLen = maxLeftLength
	}
	return &state{left: m[:leftLen], right: m[leftLen:]}, nil
}

// newHash returns a personalized BLAKE2b instance with the given digest size.
func newHash(size int, person []byte) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: uint8(size), Person: person})
	if err != nil {
		// The sizes and personalization strings are fixed by this package
		// and always within the limits of the hash.
		panic(err)
	}
	return h
}

// hRound xors H(i, right) into the left half.  H is BLAKE2b with a digest
// the length of the left half.
func (s *state) hRound(i byte) {
	var person [blake2b.PersonSize]byte
	copy(person[:], hPersonalization)
	person[len(hPersonalization)] = i

	h := newHash(len(s.left), person[:])
	h.Write(s.right)
	xorInto(s.left, h.Sum(nil))
}

// gRound xors G(i, left) into the right half.  G is the concatenation of
// BLAKE2b-512 digests over a little-endian block counter truncated to the
// length of the right half.
func (s *state) gRound(i byte) {
	var person [blake2b.PersonSize]byte
	copy(person[:], gPersonalization)
	person[len(gPersonalization)] = i

	right := s.right
	for j := uint16(0); len(right) > 0; j++ {
		binary.LittleEndian.PutUint16(person[len(gPersonalization)+1:], j)
		h := newHash(blake2b.Size, person[:])
		h.Write(s.left)
		n := xorInto(right, h.Sum(nil))
		right = right[n:]
	}
}

// xorInto xors src into dst up to the shorter of the two and returns the
// number of bytes processed.
func xorInto(dst, src []byte) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
	return n
}

// Jumble applies the F4Jumble permutation to the message and returns the
// result in a newly allocated slice of the same length.  The input is not
// modified.
func Jumble(m []byte) ([]byte, error) {
	out := make([]byte, len(m))
	copy(out, m)
	s, err := newState(out)
	if err != nil {
		return nil, err
	}
	s.gRound(0)
	s.hRound(0)
	s.gRound(1)
	s.hRound(1)
	return out, nil
}

// Unjumble applies the inverse of the F4Jumble permutation to the message and
// returns the result in a newly allocated slice of the same length.  The input
// is not modified.
func Unjumble(m []byte) ([]byte, error) {
	out := make([]byte, len(m))
	copy(out, m)
	s, err := newState(out)
	if err != nil {
		return nil, err
	}
	s.hRound(1)
	s.gRound(1)
	s.hRound(0)
	s.gRound(0)
	return out, nil
}
