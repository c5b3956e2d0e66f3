// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNetwork describes an error where a network name does not identify
// any of the defined networks.
var ErrUnknownNetwork = errors.New("unknown network")

// Network identifies a Zcash network.
type Network uint8

// These constants define the supported networks.
const (
	// MainNet identifies the main Zcash network.
	MainNet Network = iota

	// TestNet identifies the public Zcash test network.
	TestNet

	// RegNet identifies the regression test network.
	RegNet
)

// numNetworks is the number of defined networks.
const numNetworks = 3

// networkStrings maps each network to its name.
var networkStrings = [numNetworks]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegNet:  "regnet",
}

// String returns the name of the network.
func (n Network) String() string {
	if int(n) < len(networkStrings) {
		return networkStrings[n]
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// Params returns the parameters of the network or nil when the network is not
// defined.
func (n Network) Params() *Params {
	switch n {
	case MainNet:
		return MainNetParams()
	case TestNet:
		return TestNetParams()
	case RegNet:
		return RegNetParams()
	}
	return nil
}

// ParseNetwork returns the network with the given name.  The comparison is case
// insensitive and accepts the common aliases of each network.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(name) {
	case "mainnet", "main":
		return MainNet, nil
	case "testnet", "test":
		return TestNet, nil
	case "regnet", "regtest":
		return RegNet, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownNetwork, name)
}

// Params defines a Zcash network by the parameters that determine how its
// addresses are encoded.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// Address encoding magics
	P2PKHAddrID [2]byte // First 2 bytes of a P2PKH address
	P2SHAddrID  [2]byte // First 2 bytes of a P2SH address

	// P2PKHPrefix and P2SHPrefix are the leading characters every encoded
	// transparent address of the respective kind starts with.  They follow
	// from the address encoding magics.
	P2PKHPrefix string
	P2SHPrefix  string

	// Human-readable parts of the bech32 encoded address families
	SaplingHRP string
	UnifiedHRP string
	TexHRP     string
}

// AddrIDP2PKH returns the magic prefix bytes for pay-to-pubkey-hash addresses.
//
// This is part of the address parameters interface the address package
// requires.
func (p *Params) AddrIDP2PKH() [2]byte {
	return p.P2PKHAddrID
}

// AddrIDP2SH returns the magic prefix bytes for pay-to-script-hash addresses.
//
// This is part of the address parameters interface the address package
// requires.
func (p *Params) AddrIDP2SH() [2]byte {
	return p.P2SHAddrID
}

// SaplingAddrHRP returns the human-readable part of Sapling addresses.
func (p *Params) SaplingAddrHRP() string {
	return p.SaplingHRP
}

// UnifiedAddrHRP returns the human-readable part of unified addresses.
func (p *Params) UnifiedAddrHRP() string {
	return p.UnifiedHRP
}

// TexAddrHRP returns the human-readable part of TEX addresses.
func (p *Params) TexAddrHRP() string {
	return p.TexHRP
}

// Network returns the network the parameters define.
func (p *Params) Network() Network {
	return p.Net
}

// AllParams returns the parameters of every defined network in the order of
// the network constants.
func AllParams() []*Params {
	return []*Params{MainNetParams(), TestNetParams(), RegNetParams()}
}
