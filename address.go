// Copyright (c) 2021-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrd/txscript/v4/stdscript"
	"github.com/ruzcash/zaddr/base58check"
	"github.com/ruzcash/zaddr/bech32"
	"github.com/ruzcash/zaddr/chaincfg"
	"github.com/ruzcash/zaddr/unified"
)

const (
	// SaplingAddrLen is the length of the raw payload of a Sapling address
	// which is made up of a diversifier followed by the diversified
	// transmission key.
	SaplingAddrLen = unified.SaplingLen

	// SaplingDiversifierLen is the length of the diversifier that starts a
	// Sapling address payload.
	SaplingDiversifierLen = 11

	// texHashLen is the length of the P2PKH hash a TEX address carries.
	texHashLen = ripemd160.Size

	// p2pkhPaymentScriptLen is the length of a standard P2PKH script.
	p2pkhPaymentScriptLen = 25

	// p2shPaymentScriptLen is the length of a standard P2SH script.
	p2shPaymentScriptLen = 23
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// AddrIDP2PKH returns the magic prefix bytes for pay-to-pubkey-hash
	// addresses.
	AddrIDP2PKH() [2]byte

	// AddrIDP2SH returns the magic prefix bytes for pay-to-script-hash
	// addresses.
	AddrIDP2SH() [2]byte

	// SaplingAddrHRP returns the human-readable part of Sapling addresses.
	SaplingAddrHRP() string

	// UnifiedAddrHRP returns the human-readable part of unified addresses.
	UnifiedAddrHRP() string

	// TexAddrHRP returns the human-readable part of TEX addresses.
	TexAddrHRP() string

	// Network returns the network the parameters belong to.
	Network() chaincfg.Network
}

// Ensure the network parameters satisfy the interface.
var _ AddressParams = (*chaincfg.Params)(nil)

// TypeTag identifies the family of a decoded address.
type TypeTag string

// These constants define the address type tags.  TypeUnknown is reported for
// any input that does not decode to a valid address.
const (
	TypeP2PKH   TypeTag = "p2pkh"
	TypeP2SH    TypeTag = "p2sh"
	TypeSapling TypeTag = "sapling"
	TypeUnified TypeTag = "unified"
	TypeTex     TypeTag = "tex"
	TypeUnknown TypeTag = "unknown"
)

// String returns the type tag as a string.
func (t TypeTag) String() string {
	return string(t)
}

// Address represents a decoded Zcash payment address.  The set of
// implementations is closed: every address is exactly one of
// *AddressTransparent, *AddressSapling, *AddressUnified, or *AddressTex.
type Address interface {
	// String returns the canonical string encoding of the address.
	String() string

	// Type returns the family of the address.
	Type() TypeTag

	// Network returns the network the address is encoded for.
	Network() chaincfg.Network

	// Receivers returns the raw receivers the address pays to.
	Receivers() Receivers

	// zcashAddress prevents implementations outside the package.
	zcashAddress()
}

// Hash160er is an interface that allows the RIPEMD-160 hash of the data an
// address commits to be obtained.
type Hash160er interface {
	Hash160() *[ripemd160.Size]byte
}

// Secp256k1PublicKey is an interface type that represents a secp256k1 public
// key for use in creating pay-to-pubkey-hash addresses that involve them.
type Secp256k1PublicKey interface {
	// SerializeCompressed serializes a public key in the 33-byte compressed
	// format.
	SerializeCompressed() []byte
}

// Receivers houses the raw receivers an address pays to.  Fields for receiver
// kinds the address does not carry are nil.  Unknown holds, in typecode
// order, the receivers of a unified address with typecodes that have no
// defined meaning.
type Receivers struct {
	P2PKH   []byte
	P2SH    []byte
	Sapling []byte
	Orchard []byte
	Unknown []unified.Receiver
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return btcutil.Hash160(buf)
}

// cloneBytes returns a copy of the passed bytes or nil when there are none.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// TransparentKind identifies the kind of a transparent address.
type TransparentKind uint8

// These constants define the transparent address kinds.
const (
	P2PKH TransparentKind = iota
	P2SH
)

// String returns the kind as a human-readable name.
func (k TransparentKind) String() string {
	switch k {
	case P2PKH:
		return "p2pkh"
	case P2SH:
		return "p2sh"
	}
	return fmt.Sprintf("unknown transparent kind (%d)", uint8(k))
}

// AddressTransparent specifies a transparent address that pays to either the
// hash of a secp256k1 public key or the hash of a script.
//
// Transparent addresses are encoded with Base58Check using a two byte version
// that identifies both the network and the kind.
type AddressTransparent struct {
	kind  TransparentKind
	netID [2]byte
	net   chaincfg.Network
	hash  [ripemd160.Size]byte
}

// Ensure AddressTransparent implements the Address and Hash160er interfaces.
var _ Address = (*AddressTransparent)(nil)
var _ Hash160er = (*AddressTransparent)(nil)

// newAddressTransparent returns a transparent address of the given kind after
// checking the hash length.
func newAddressTransparent(kind TransparentKind, hash []byte,
	params AddressParams) (*AddressTransparent, error) {

	// Check for a valid hash length.
	if len(hash) != ripemd160.Size {
		str := fmt.Sprintf("%v hash is %d bytes vs required %d bytes", kind,
			len(hash), ripemd160.Size)
		return nil, makeError(ErrInvalidPayload, str)
	}

	addr := &AddressTransparent{
		kind: kind,
		net:  params.Network(),
	}
	switch kind {
	case P2PKH:
		addr.netID = params.AddrIDP2PKH()
	case P2SH:
		addr.netID = params.AddrIDP2SH()
	}
	copy(addr.hash[:], hash)
	return addr, nil
}

// NewAddressP2PKH returns an address that represents a payment destination
// which imposes an encumbrance that requires a secp256k1 public key that
// hashes to the provided public key hash along with a valid signature for
// that key.
//
// The provided public key hash must be 20 bytes and is expected to be the
// Hash160 of the associated secp256k1 public key serialized in the compressed
// format.
func NewAddressP2PKH(pkHash []byte, params AddressParams) (*AddressTransparent, error) {
	return newAddressTransparent(P2PKH, pkHash, params)
}

// NewAddressP2PKHFromPubKey returns a pay-to-pubkey-hash address for the
// provided secp256k1 public key.  The address commits to the hash of the
// public key serialized in the compressed format.
func NewAddressP2PKHFromPubKey(pubKey Secp256k1PublicKey,
	params AddressParams) (*AddressTransparent, error) {

	return NewAddressP2PKH(Hash160(pubKey.SerializeCompressed()), params)
}

// NewAddressP2PKHFromPubKeyRaw returns a pay-to-pubkey-hash address for the
// provided serialized secp256k1 public key.
//
// The provided public key MUST be a valid secp256k1 public key in either the
// compressed or uncompressed format or an error will be returned.  The
// address always commits to the compressed serialization.
func NewAddressP2PKHFromPubKeyRaw(serializedPubKey []byte,
	params AddressParams) (*AddressTransparent, error) {

	// Attempt to parse the provided public key to ensure it is both a valid
	// serialization and that it is a valid point on the secp256k1 curve.
	pubKey, err := secp256k1.ParsePubKey(serializedPubKey)
	if err != nil {
		str := fmt.Sprintf("failed to parse public key: %v", err)
		return nil, makeError(ErrInvalidPubKey, str)
	}
	return NewAddressP2PKHFromPubKey(pubKey, params)
}

// NewAddressP2SH returns an address that represents a payment destination
// which imposes an encumbrance that requires a script that hashes to the
// provided script hash along with all of the encumbrances that script itself
// imposes.
func NewAddressP2SH(scriptHash []byte, params AddressParams) (*AddressTransparent, error) {
	return newAddressTransparent(P2SH, scriptHash, params)
}

// NewAddressP2SHFromScript returns a pay-to-script-hash address for the
// provided redeem script.
func NewAddressP2SHFromScript(script []byte, params AddressParams) (*AddressTransparent, error) {
	return NewAddressP2SH(Hash160(script), params)
}

// NewAddressFromPaymentScript returns the transparent address a standard
// P2PKH or P2SH payment script pays to.  Any other script results in an
// error.
func NewAddressFromPaymentScript(script []byte, params AddressParams) (*AddressTransparent, error) {
	if h := stdscript.ExtractPubKeyHashV0(script); h != nil {
		return NewAddressP2PKH(h, params)
	}
	if h := stdscript.ExtractScriptHashV0(script); h != nil {
		return NewAddressP2SH(h, params)
	}
	str := fmt.Sprintf("script %x is not a standard transparent payment "+
		"script", script)
	return nil, makeError(ErrInvalidPayload, str)
}

// String returns the string encoding of the transparent address.
//
// This is part of the Address interface implementation.
func (addr *AddressTransparent) String() string {
	return base58check.Encode(addr.netID, addr.hash[:])
}

// Type returns TypeP2PKH or TypeP2SH depending on the kind of the address.
//
// This is part of the Address interface implementation.
func (addr *AddressTransparent) Type() TypeTag {
	if addr.kind == P2SH {
		return TypeP2SH
	}
	return TypeP2PKH
}

// Network returns the network the address is encoded for.
//
// This is part of the Address interface implementation.
func (addr *AddressTransparent) Network() chaincfg.Network {
	return addr.net
}

// Receivers returns the hash of the address as its only receiver.
//
// This is part of the Address interface implementation.
func (addr *AddressTransparent) Receivers() Receivers {
	if addr.kind == P2SH {
		return Receivers{P2SH: cloneBytes(addr.hash[:])}
	}
	return Receivers{P2PKH: cloneBytes(addr.hash[:])}
}

func (addr *AddressTransparent) zcashAddress() {}

// Kind returns whether the address pays to a public key hash or a script
// hash.
func (addr *AddressTransparent) Kind() TransparentKind {
	return addr.kind
}

// Hash160 returns the underlying array of the hash the address commits to.
// This can be useful when an array is more appropriate than a slice (for
// example, when used as map keys).
//
// This is part of the Hash160er interface implementation.
func (addr *AddressTransparent) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// PaymentScript returns a script to pay a transaction output to the address.
func (addr *AddressTransparent) PaymentScript() []byte {
	if addr.kind == P2SH {
		// A pay-to-script-hash script is of the form:
		//  HASH160 <20-byte hash> EQUAL
		var script [p2shPaymentScriptLen]byte
		script[0] = txscript.OP_HASH160
		script[1] = txscript.OP_DATA_20
		copy(script[2:22], addr.hash[:])
		script[22] = txscript.OP_EQUAL
		return script[:]
	}

	// A pay-to-pubkey-hash script is of the form:
	//  DUP HASH160 <20-byte hash> EQUALVERIFY CHECKSIG
	var script [p2pkhPaymentScriptLen]byte
	script[0] = txscript.OP_DUP
	script[1] = txscript.OP_HASH160
	script[2] = txscript.OP_DATA_20
	copy(script[3:23], addr.hash[:])
	script[23] = txscript.OP_EQUALVERIFY
	script[24] = txscript.OP_CHECKSIG
	return script[:]
}

// TexAddress returns the TEX encoding of a pay-to-pubkey-hash address.  It
// returns an error for pay-to-script-hash addresses since TEX addresses only
// commit to public key hashes.
func (addr *AddressTransparent) TexAddress() (*AddressTex, error) {
	if addr.kind != P2PKH {
		str := "only p2pkh addresses have a tex encoding"
		return nil, makeError(ErrInvalidPayload, str)
	}
	params := addr.net.Params()
	if params == nil {
		str := fmt.Sprintf("address network %v is not defined", addr.net)
		return nil, makeError(ErrInvalidInput, str)
	}
	return NewAddressTex(addr.hash[:], params)
}

// AddressSapling specifies a Sapling shielded payment address.  The payload
// is a diversifier followed by the diversified transmission key pk_d.
type AddressSapling struct {
	hrp  string
	net  chaincfg.Network
	data [SaplingAddrLen]byte
}

// Ensure AddressSapling implements the Address interface.
var _ Address = (*AddressSapling)(nil)

// NewAddressSapling returns a Sapling address for the provided 43 byte
// payload.  The payload itself is opaque here; only its length is checked.
func NewAddressSapling(payload []byte, params AddressParams) (*AddressSapling, error) {
	if len(payload) != SaplingAddrLen {
		str := fmt.Sprintf("sapling payload is %d bytes vs required %d bytes",
			len(payload), SaplingAddrLen)
		return nil, makeError(ErrInvalidPayload, str)
	}
	addr := &AddressSapling{
		hrp: params.SaplingAddrHRP(),
		net: params.Network(),
	}
	copy(addr.data[:], payload)
	return addr, nil
}

// String returns the bech32 encoding of the Sapling address.
//
// This is part of the Address interface implementation.
func (addr *AddressSapling) String() string {
	// The only possible errors come from an invalid human-readable part
	// which the network parameters never provide.
	s, err := bech32.EncodeFromBase256(addr.hrp, addr.data[:], bech32.Bech32)
	if err != nil {
		return ""
	}
	return s
}

// Type returns TypeSapling.
//
// This is part of the Address interface implementation.
func (addr *AddressSapling) Type() TypeTag {
	return TypeSapling
}

// Network returns the network the address is encoded for.
//
// This is part of the Address interface implementation.
func (addr *AddressSapling) Network() chaincfg.Network {
	return addr.net
}

// Receivers returns the payload of the address as its only receiver.
//
// This is part of the Address interface implementation.
func (addr *AddressSapling) Receivers() Receivers {
	return Receivers{Sapling: addr.Bytes()}
}

func (addr *AddressSapling) zcashAddress() {}

// Bytes returns a copy of the raw 43 byte payload.
func (addr *AddressSapling) Bytes() []byte {
	return cloneBytes(addr.data[:])
}

// Diversifier returns the diversifier that starts the payload.
func (addr *AddressSapling) Diversifier() [SaplingDiversifierLen]byte {
	var d [SaplingDiversifierLen]byte
	copy(d[:], addr.data[:SaplingDiversifierLen])
	return d
}

// PkD returns the diversified transmission key that ends the payload.
func (addr *AddressSapling) PkD() [SaplingAddrLen - SaplingDiversifierLen]byte {
	var pkd [SaplingAddrLen - SaplingDiversifierLen]byte
	copy(pkd[:], addr.data[SaplingDiversifierLen:])
	return pkd
}

// AddressUnified specifies a unified address which bundles receivers of
// several kinds into a single string.
type AddressUnified struct {
	encoded   string
	net       chaincfg.Network
	receivers []unified.Receiver
}

// Ensure AddressUnified implements the Address interface.
var _ Address = (*AddressUnified)(nil)

// cloneReceivers returns a deep copy of the passed receivers.
func cloneReceivers(receivers []unified.Receiver) []unified.Receiver {
	if receivers == nil {
		return nil
	}
	out := make([]unified.Receiver, len(receivers))
	for i, r := range receivers {
		out[i] = unified.Receiver{Typecode: r.Typecode, Data: cloneBytes(r.Data)}
	}
	return out
}

// NewAddressUnified returns a unified address for the provided receivers.
// The receivers must be in strictly increasing typecode order and satisfy
// every constraint of a unified address, which includes carrying at least
// one shielded receiver.
func NewAddressUnified(receivers []unified.Receiver,
	params AddressParams) (*AddressUnified, error) {

	receivers = cloneReceivers(receivers)
	encoded, err := unified.Encode(params.UnifiedAddrHRP(), receivers)
	if err != nil {
		return nil, err
	}
	return &AddressUnified{
		encoded:   encoded,
		net:       params.Network(),
		receivers: receivers,
	}, nil
}

// String returns the bech32m encoding of the unified address.
//
// This is part of the Address interface implementation.
func (addr *AddressUnified) String() string {
	return addr.encoded
}

// Type returns TypeUnified.
//
// This is part of the Address interface implementation.
func (addr *AddressUnified) Type() TypeTag {
	return TypeUnified
}

// Network returns the network the address is encoded for.
//
// This is part of the Address interface implementation.
func (addr *AddressUnified) Network() chaincfg.Network {
	return addr.net
}

// Receivers returns the receivers of the address sorted by kind.
//
// This is part of the Address interface implementation.
func (addr *AddressUnified) Receivers() Receivers {
	var recv Receivers
	for _, r := range addr.receivers {
		switch r.Typecode {
		case unified.TypecodeP2PKH:
			recv.P2PKH = cloneBytes(r.Data)
		case unified.TypecodeP2SH:
			recv.P2SH = cloneBytes(r.Data)
		case unified.TypecodeSapling:
			recv.Sapling = cloneBytes(r.Data)
		case unified.TypecodeOrchard:
			recv.Orchard = cloneBytes(r.Data)
		default:
			recv.Unknown = append(recv.Unknown, unified.Receiver{
				Typecode: r.Typecode,
				Data:     cloneBytes(r.Data),
			})
		}
	}
	return recv
}

func (addr *AddressUnified) zcashAddress() {}

// UnifiedReceivers returns a copy of the receivers of the address in typecode
// order, including those with unknown typecodes.
func (addr *AddressUnified) UnifiedReceivers() []unified.Receiver {
	return cloneReceivers(addr.receivers)
}

// AddressTex specifies a transparent-source-only address.  It commits to the
// same public key hash as a pay-to-pubkey-hash address and signals that the
// recipient only accepts funds from transparent sources.
type AddressTex struct {
	hrp  string
	net  chaincfg.Network
	hash [ripemd160.Size]byte
}

// Ensure AddressTex implements the Address and Hash160er interfaces.
var _ Address = (*AddressTex)(nil)
var _ Hash160er = (*AddressTex)(nil)

// NewAddressTex returns a TEX address for the provided 20 byte public key
// hash.
func NewAddressTex(pkHash []byte, params AddressParams) (*AddressTex, error) {
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("tex hash is %d bytes vs required %d bytes",
			len(pkHash), ripemd160.Size)
		return nil, makeError(ErrInvalidPayload, str)
	}
	addr := &AddressTex{
		hrp: params.TexAddrHRP(),
		net: params.Network(),
	}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// String returns the bech32m encoding of the TEX address.
//
// This is part of the Address interface implementation.
func (addr *AddressTex) String() string {
	s, err := bech32.EncodeFromBase256(addr.hrp, addr.hash[:], bech32.Bech32m)
	if err != nil {
		return ""
	}
	return s
}

// Type returns TypeTex.
//
// This is part of the Address interface implementation.
func (addr *AddressTex) Type() TypeTag {
	return TypeTex
}

// Network returns the network the address is encoded for.
//
// This is part of the Address interface implementation.
func (addr *AddressTex) Network() chaincfg.Network {
	return addr.net
}

// Receivers returns the public key hash of the address as a P2PKH receiver.
//
// This is part of the Address interface implementation.
func (addr *AddressTex) Receivers() Receivers {
	return Receivers{P2PKH: cloneBytes(addr.hash[:])}
}

func (addr *AddressTex) zcashAddress() {}

// Hash160 returns the underlying array of the public key hash.
//
// This is part of the Hash160er interface implementation.
func (addr *AddressTex) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// PaymentScript returns the pay-to-pubkey-hash script that pays to the public
// key hash of the address.
func (addr *AddressTex) PaymentScript() []byte {
	return addr.TransparentAddress().PaymentScript()
}

// TransparentAddress returns the pay-to-pubkey-hash address that commits to
// the same public key hash.
func (addr *AddressTex) TransparentAddress() *AddressTransparent {
	params := addr.net.Params()
	t := &AddressTransparent{
		kind: P2PKH,
		net:  addr.net,
		hash: addr.hash,
	}
	if params != nil {
		t.netID = params.AddrIDP2PKH()
	}
	return t
}
