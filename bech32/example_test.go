// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32_test

import (
	"encoding/hex"
	"fmt"

	"github.com/ruzcash/zaddr/bech32"
)

// This example demonstrates how to decode a bech32m encoded string.
func ExampleDecode() {
	encoded := "tex1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq3xvlx7"
	hrp, decoded, err := bech32.Decode(encoded, bech32.Bech32m)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Convert the decoded data from 5 bits-per-element into 8-bits-per-element
	// payload.
	decoded8bits, err := bech32.ConvertBits(decoded, 5, 8, false)
	if err != nil {
		fmt.Println("Error ConvertBits:", err)
		return
	}

	// Show the decoded data.
	fmt.Println("Decoded human-readable part:", hrp)
	fmt.Println("Decoded 8bpe Data:", hex.EncodeToString(decoded8bits))

	// Output:
	// Decoded human-readable part: tex
	// Decoded 8bpe Data: 0000000000000000000000000000000000000000
}

// This example demonstrates how to encode data into a bech32m string.
func ExampleEncodeFromBase256() {
	hash := make([]byte, 20)
	encoded, err := bech32.EncodeFromBase256("tex", hash, bech32.Bech32m)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Show the encoded data.
	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: tex1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq3xvlx7
}
