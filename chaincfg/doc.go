// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address encoding parameters of the Zcash
// networks.
//
// In addition to the main Zcash network, which is intended for the transfer of
// monetary value, there also exist two networks used for testing: the public
// test network and the regression test network.  Addresses of one network are
// not valid on another and software should handle errors where an address
// intended for one network is used on an application instance running on a
// different network.
//
// For main packages, a (typically global) var may be assigned the result of
// one of the standard Params functions for use as the application's "active"
// network.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/ruzcash/zaddr"
//		"github.com/ruzcash/zaddr/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var net = chaincfg.MainNet
//
//		// Modify active network if operating on testnet.
//		if *testnet {
//			net = chaincfg.TestNet
//		}
//
//		// later...
//
//		// Create and print a new payment address specific to the active
//		// network.
//		pubKeyHash := make([]byte, 20)
//		addr, err := zaddr.NewAddressP2PKH(pubKeyHash, net.Params())
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(addr)
//	}
package chaincfg
