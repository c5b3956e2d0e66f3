// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"github.com/ruzcash/zaddr/chaincfg"
)

// config houses the settings a decode operates under.
type config struct {
	net     chaincfg.Network
	anyNet  bool
	lenient bool
}

// defaultConfig returns the settings used when no options are given: strict
// parsing of addresses for the main network.
func defaultConfig() config {
	return config{net: chaincfg.MainNet}
}

// Option configures how an address string is decoded.
type Option func(*config)

// WithNetwork restricts decoding to addresses of the given network.  Valid
// encodings for any other network are reported with ErrWrongNetwork.
func WithNetwork(net chaincfg.Network) Option {
	return func(cfg *config) {
		cfg.net = net
		cfg.anyNet = false
	}
}

// WithAnyNetwork accepts addresses of every defined network and infers the
// network from the prefix.  Transparent addresses of the test and regression
// test networks share their encoding, so they are reported as belonging to
// the test network.
func WithAnyNetwork() Option {
	return func(cfg *config) {
		cfg.anyNet = true
	}
}

// WithLenientParsing extracts the first run of at least 20 ASCII letters and
// digits from the input and decodes that instead of the whole string.  This
// allows addresses to be picked out of surrounding text such as URIs or
// punctuation.
func WithLenientParsing() Option {
	return func(cfg *config) {
		cfg.lenient = true
	}
}

// applyOptions returns the settings that result from applying the options in
// order over the defaults.
func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// networks returns the parameters of the networks an address may belong to
// under the settings, in the order they are tried.
func (cfg *config) networks() []*chaincfg.Params {
	if cfg.anyNet {
		return chaincfg.AllParams()
	}
	if params := cfg.net.Params(); params != nil {
		return []*chaincfg.Params{params}
	}
	return nil
}
