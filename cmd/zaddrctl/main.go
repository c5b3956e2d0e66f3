// Copyright (c) 2020-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/ruzcash/zaddr"
	"github.com/ruzcash/zaddr/chaincfg"
	"golang.org/x/term"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

type config struct {
	Network    string `long:"network" description:"accept addresses of the named network (mainnet, testnet, regnet, or any)"`
	TestNet    bool   `long:"testnet" description:"accept test network addresses instead of main network addresses"`
	RegNet     bool   `long:"regnet" description:"accept regression test network addresses instead of main network addresses"`
	AnyNet     bool   `long:"anynet" description:"accept addresses of every network"`
	Lenient    bool   `short:"l" long:"lenient" description:"pick the address out of surrounding text"`
	Compact    bool   `short:"c" long:"compact" description:"print one JSON object per line"`
	DebugLevel string `short:"d" long:"debuglevel" description:"logging level (trace, debug, info, warn, error, critical, off)"`
}

// options returns the decode options selected by the configuration.
func (cfg *config) options() ([]zaddr.Option, error) {
	numNets := 0
	for _, set := range []bool{cfg.Network != "", cfg.TestNet, cfg.RegNet,
		cfg.AnyNet} {

		if set {
			numNets++
		}
	}
	if numNets > 1 {
		return nil, errors.New("--network, --testnet, --regnet, and " +
			"--anynet may not be used together")
	}

	var opts []zaddr.Option
	switch {
	case strings.EqualFold(cfg.Network, "any"):
		opts = append(opts, zaddr.WithAnyNetwork())
	case cfg.Network != "":
		net, err := chaincfg.ParseNetwork(cfg.Network)
		if err != nil {
			return nil, err
		}
		opts = append(opts, zaddr.WithNetwork(net))
	case cfg.TestNet:
		opts = append(opts, zaddr.WithNetwork(chaincfg.TestNet))
	case cfg.RegNet:
		opts = append(opts, zaddr.WithNetwork(chaincfg.RegNet))
	case cfg.AnyNet:
		opts = append(opts, zaddr.WithAnyNetwork())
	}
	if cfg.Lenient {
		opts = append(opts, zaddr.WithLenientParsing())
	}
	return opts, nil
}

func main() {
	cfg := config{
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [address...]"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := setLogLevels(cfg.DebugLevel); err != nil {
		fatalf("%v\n", err)
	}
	opts, err := cfg.options()
	if err != nil {
		fatalf("%v\n", err)
	}

	w := newReportWriter(os.Stdout, cfg.Compact)
	if len(args) > 0 {
		for _, arg := range args {
			if err := w.write(newReport(arg, opts...)); err != nil {
				fatalf("unable to write to stdout: %v\n", err)
			}
		}
		return
	}

	// Prompt for each address when reading from a terminal.
	var prompt io.Writer
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = os.Stderr
	}
	if err := classifyLines(os.Stdin, w, prompt, opts...); err != nil {
		fatalf("%v\n", err)
	}
}
