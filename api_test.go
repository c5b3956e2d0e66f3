// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ruzcash/zaddr/chaincfg"
	"github.com/ruzcash/zaddr/unified"
)

// validAddrs houses a valid address of every family on every network along
// with the options needed to accept it.
var validAddrs = []struct {
	addr string
	typ  TypeTag
	net  chaincfg.Network
}{
	{mainP2PKH, TypeP2PKH, chaincfg.MainNet},
	{mainP2SH, TypeP2SH, chaincfg.MainNet},
	{mainSeqP2PKH, TypeP2PKH, chaincfg.MainNet},
	{mainSapling, TypeSapling, chaincfg.MainNet},
	{mainSeqSap, TypeSapling, chaincfg.MainNet},
	{mainUA, TypeUnified, chaincfg.MainNet},
	{orchardUA, TypeUnified, chaincfg.MainNet},
	{mainSapUA, TypeUnified, chaincfg.MainNet},
	{mainP2SHUA, TypeUnified, chaincfg.MainNet},
	{mainUnkUA, TypeUnified, chaincfg.MainNet},
	{mainOrchUA, TypeUnified, chaincfg.MainNet},
	{zeroTex, TypeTex, chaincfg.MainNet},
	{mainTex, TypeTex, chaincfg.MainNet},
	{mainSeqTex, TypeTex, chaincfg.MainNet},
	{testP2PKH, TypeP2PKH, chaincfg.TestNet},
	{testP2SH, TypeP2SH, chaincfg.TestNet},
	{testSapling, TypeSapling, chaincfg.TestNet},
	{testUA, TypeUnified, chaincfg.TestNet},
	{testOrchUA, TypeUnified, chaincfg.TestNet},
	{testTex, TypeTex, chaincfg.TestNet},
	{regSapling, TypeSapling, chaincfg.RegNet},
	{regUA, TypeUnified, chaincfg.RegNet},
	{regTex, TypeTex, chaincfg.RegNet},
}

// TestPublicAPI ensures the absorbing functions report the expected results
// for valid and invalid input.
func TestPublicAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string   // test description
		addr  string   // input
		opts  []Option // options
		valid bool     // expected validity
		typ   TypeTag  // expected type
		norm  string   // expected normalized form
	}{{
		name:  "mainnet p2pkh",
		addr:  mainP2PKH,
		valid: true,
		typ:   TypeP2PKH,
		norm:  mainP2PKH,
	}, {
		name:  "mainnet sapling",
		addr:  mainSapling,
		valid: true,
		typ:   TypeSapling,
		norm:  mainSapling,
	}, {
		name:  "mainnet sapling upper case with white space",
		addr:  "\t" + strings.ToUpper(mainSapling) + " ",
		valid: true,
		typ:   TypeSapling,
		norm:  mainSapling,
	}, {
		name:  "mainnet unified",
		addr:  orchardUA,
		valid: true,
		typ:   TypeUnified,
		norm:  orchardUA,
	}, {
		name:  "mainnet unified upper case",
		addr:  strings.ToUpper(mainUA),
		valid: true,
		typ:   TypeUnified,
		norm:  mainUA,
	}, {
		name:  "mainnet tex",
		addr:  zeroTex,
		valid: true,
		typ:   TypeTex,
		norm:  zeroTex,
	}, {
		name:  "lenient uri",
		addr:  "zcash:" + mainTex + "?amount=0.1",
		opts:  []Option{WithLenientParsing()},
		valid: true,
		typ:   TypeTex,
		norm:  mainTex,
	}, {
		name: "empty",
		addr: "",
		typ:  TypeUnknown,
	}, {
		name: "invalid address",
		addr: "invalid_address",
		typ:  TypeUnknown,
	}, {
		name: "invalid characters",
		addr: "t1XUKmDLFcRDxvf9A7tawmgePD(Invalid)",
		typ:  TypeUnknown,
	}, {
		name: "invalid format",
		addr: "t1Zskf9m4PbJX9E8A7HHbq6sVKZdpFwLZ#",
		typ:  TypeUnknown,
	}, {
		name: "testnet address on mainnet",
		addr: testSapling,
		typ:  TypeUnknown,
	}}

	for _, test := range tests {
		if got := IsValid(test.addr, test.opts...); got != test.valid {
			t.Errorf("%q: unexpected validity - got %v, want %v", test.name,
				got, test.valid)
			continue
		}
		if got := GetType(test.addr, test.opts...); got != test.typ {
			t.Errorf("%q: unexpected type - got %v, want %v", test.name, got,
				test.typ)
			continue
		}
		norm, ok := Normalize(test.addr, test.opts...)
		if ok != test.valid || norm != test.norm {
			t.Errorf("%q: unexpected normalized form - got (%q, %v), want "+
				"(%q, %v)", test.name, norm, ok, test.norm, test.valid)
			continue
		}
		recv := GetReceivers(test.addr, test.opts...)
		if !test.valid && !reflect.DeepEqual(recv, Receivers{}) {
			t.Errorf("%q: unexpected receivers for invalid input %v",
				test.name, spew.Sdump(recv))
		}
		_, err := Decode(test.addr, test.opts...)
		if (err == nil) != test.valid {
			t.Errorf("%q: unexpected decode error - got %v", test.name, err)
		}
	}
}

// TestGetReceivers ensures the raw receivers of each family are reported.
func TestGetReceivers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string    // test description
		addr string    // input
		want Receivers // expected receivers
	}{{
		name: "p2pkh",
		addr: mainP2PKH,
		want: Receivers{P2PKH: mainP2PKHHash},
	}, {
		name: "p2sh",
		addr: mainP2SH,
		want: Receivers{P2SH: hash20},
	}, {
		name: "sapling",
		addr: mainSapling,
		want: Receivers{Sapling: mainSaplingPayload},
	}, {
		name: "unified with three receivers",
		addr: mainUA,
		want: Receivers{
			P2PKH:   mainP2PKHHash,
			Sapling: mainSaplingPayload,
			Orchard: mainOrchard,
		},
	}, {
		name: "unified with unknown receiver",
		addr: mainUnkUA,
		want: Receivers{
			Sapling: sapling,
			Unknown: []unified.Receiver{{Typecode: 5, Data: []byte{7, 8, 9}}},
		},
	}, {
		name: "tex",
		addr: mainTex,
		want: Receivers{P2PKH: mainP2PKHHash},
	}, {
		name: "invalid",
		addr: "invalid_address",
		want: Receivers{},
	}}

	for _, test := range tests {
		got := GetReceivers(test.addr)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%q: unexpected receivers - got %v, want %v", test.name,
				spew.Sdump(got), spew.Sdump(test.want))
		}
	}
}

// TestGetReceiverAddresses ensures receivers are re-encoded as standalone
// addresses of the same network.
func TestGetReceiverAddresses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string            // test description
		addr string            // input
		opts []Option          // options
		want ReceiverAddresses // expected receiver addresses
	}{{
		name: "unified with three receivers",
		addr: mainUA,
		want: ReceiverAddresses{
			P2PKH:   mainP2PKH,
			Sapling: mainSapling,
			Orchard: orchardUA,
		},
	}, {
		name: "unified with p2sh and orchard",
		addr: mainP2SHUA,
		want: ReceiverAddresses{
			P2SH:    mainP2SH,
			Orchard: mainOrchUA,
		},
	}, {
		name: "unified with unknown receiver",
		addr: mainUnkUA,
		want: ReceiverAddresses{Sapling: mainSeqSap},
	}, {
		name: "orchard only unified reports itself",
		addr: orchardUA,
		want: ReceiverAddresses{Orchard: orchardUA},
	}, {
		name: "testnet unified",
		addr: testUA,
		opts: []Option{WithNetwork(chaincfg.TestNet)},
		want: ReceiverAddresses{Sapling: testSapling},
	}, {
		name: "p2pkh",
		addr: mainP2PKH,
		want: ReceiverAddresses{P2PKH: mainP2PKH},
	}, {
		name: "sapling",
		addr: mainSapling,
		want: ReceiverAddresses{Sapling: mainSapling},
	}, {
		name: "tex reports its p2pkh address",
		addr: zeroTex,
		want: ReceiverAddresses{P2PKH: "t1Hsc1LR8yKnbbe3twRp88p6vFfC5t7DLbs"},
	}, {
		name: "tex with same hash as p2pkh",
		addr: mainTex,
		want: ReceiverAddresses{P2PKH: mainP2PKH},
	}, {
		name: "invalid",
		addr: "",
		want: ReceiverAddresses{},
	}}

	for _, test := range tests {
		got := GetReceiverAddresses(test.addr, test.opts...)
		if got != test.want {
			t.Errorf("%q: unexpected receiver addresses - got %+v, want %+v",
				test.name, got, test.want)
		}
	}
}

// TestNormalizeIdempotent ensures normalizing a normalized address returns it
// unchanged and that it decodes to the same address.
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	anyNet := WithAnyNetwork()
	for _, test := range validAddrs {
		for _, in := range []string{test.addr, strings.ToUpper(test.addr)} {
			// Transparent addresses are case sensitive.
			if in != test.addr && (test.typ == TypeP2PKH || test.typ == TypeP2SH) {
				continue
			}
			norm, ok := Normalize(in, anyNet)
			if !ok {
				t.Errorf("%s: failed to normalize", in)
				continue
			}
			again, ok := Normalize(norm, anyNet)
			if !ok || again != norm {
				t.Errorf("%s: normalize not idempotent - got %q, want %q", in,
					again, norm)
				continue
			}
			if norm != test.addr {
				t.Errorf("%s: unexpected normalized form - got %q, want %q",
					in, norm, test.addr)
			}
		}

		addr, err := Decode(test.addr, WithNetwork(test.net))
		if err != nil {
			t.Errorf("%s: unexpected error - got %v", test.addr, err)
			continue
		}
		if addr.Type() != test.typ || addr.Network() != test.net {
			t.Errorf("%s: unexpected type or network - got %v %v, want %v %v",
				test.addr, addr.Type(), addr.Network(), test.typ, test.net)
		}
	}
}

// corruptions returns every variant of s with a single character replaced by
// another character of the alphabet.  The human-readable part of bech32
// strings is left intact so every variant still selects the same family.
func corruptions(s string, typ TypeTag) []string {
	const (
		base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
		bech32Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	)

	alphabet, start := base58Alphabet, 2
	if typ != TypeP2PKH && typ != TypeP2SH {
		alphabet, start = bech32Alphabet, strings.LastIndexByte(s, '1')+1
	}

	var out []string
	for i := start; i < len(s); i++ {
		for j := 0; j < len(alphabet); j++ {
			if alphabet[j] == s[i] {
				continue
			}
			out = append(out, s[:i]+string(alphabet[j])+s[i+1:])
		}
	}
	return out
}

// TestSingleCharacterCorruption ensures replacing any single character of a
// valid address makes it invalid.
func TestSingleCharacterCorruption(t *testing.T) {
	t.Parallel()

	addrs := []struct {
		addr string
		typ  TypeTag
	}{
		{mainP2PKH, TypeP2PKH},
		{mainP2SH, TypeP2SH},
		{mainSapling, TypeSapling},
		{orchardUA, TypeUnified},
		{mainTex, TypeTex},
	}
	for _, test := range addrs {
		for _, corrupted := range corruptions(test.addr, test.typ) {
			c := Classify(corrupted)
			if c.Status != StatusInvalid {
				t.Errorf("%s: unexpected status - got %v, want %v",
					corrupted, c.Status, StatusInvalid)
			}
		}
	}
}

// TestNoPanic ensures arbitrary input never causes a panic and that the
// absorbing functions agree with each other.
func TestNoPanic(t *testing.T) {
	t.Parallel()

	const maxLen = 10000
	rng := rand.New(rand.NewSource(316))
	charsets := []string{
		"123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz",
		"qpzry9x8gf2tvdw0s3jn54khce6mua7l1",
		"\x00\x01\t\n 1!#(){}~\x7f\x80\xff",
		"tuzsex1QPZRY",
	}
	prefixes := []string{"", "t1", "t3", "tm", "t2", "zs1", "u1", "tex1",
		"utest1", "ztestsapling1", "1", "U1", "TEX1"}

	inputs := []string{
		strings.Repeat("1", maxLen),
		strings.Repeat("q", maxLen),
		"u1" + strings.Repeat("q", maxLen-2),
		"u1" + strings.Repeat("q", unified.MaxEncodedLength-2),
		"zs1" + strings.Repeat("q", 87),
		"tex1" + strings.Repeat("q", 86),
		"t1" + strings.Repeat("1", 33),
		"t1" + strings.Repeat("z", 33),
		strings.Repeat("\xff", 64),
		"u1é" + strings.Repeat("q", 100),
	}
	for i := 0; i < 500; i++ {
		charset := charsets[rng.Intn(len(charsets))]
		prefix := prefixes[rng.Intn(len(prefixes))]
		n := rng.Intn(120)
		if rng.Intn(10) == 0 {
			n = rng.Intn(maxLen - len(prefix))
		}
		var b strings.Builder
		b.WriteString(prefix)
		for j := 0; j < n; j++ {
			b.WriteByte(charset[rng.Intn(len(charset))])
		}
		inputs = append(inputs, b.String())
	}

	for _, in := range inputs {
		for _, opts := range [][]Option{nil, {WithAnyNetwork()},
			{WithLenientParsing(), WithAnyNetwork()}} {

			c := Classify(in, opts...)
			valid := IsValid(in, opts...)
			typ := GetType(in, opts...)
			norm, ok := Normalize(in, opts...)
			recv := GetReceivers(in, opts...)
			GetReceiverAddresses(in, opts...)

			if valid != (c.Status == StatusValid) || ok != valid {
				t.Errorf("%.40q: inconsistent validity", in)
				continue
			}
			if typ != c.Type || (!valid && typ != TypeUnknown) {
				t.Errorf("%.40q: inconsistent type %v", in, typ)
				continue
			}
			if !valid && (norm != "" || !reflect.DeepEqual(recv, Receivers{})) {
				t.Errorf("%.40q: invalid input produced output", in)
			}
		}
	}
}

// TestConcurrentUse ensures the package can be used from many goroutines at
// once.
func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	const numGoroutines = 16
	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < len(validAddrs); j++ {
				test := validAddrs[(i+j)%len(validAddrs)]
				opt := WithNetwork(test.net)
				if got := GetType(test.addr, opt); got != test.typ {
					errs <- errors.New(test.addr + ": unexpected type " +
						got.String())
					return
				}
				if norm, ok := Normalize(test.addr, opt); !ok || norm != test.addr {
					errs <- errors.New(test.addr + ": unexpected normal form " +
						norm)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
