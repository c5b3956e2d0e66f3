// Copyright (c) 2024-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ruzcash/zaddr"
	"github.com/ruzcash/zaddr/unified"
)

// receiversJSON is the hex encoding of the raw receivers of an address.
type receiversJSON struct {
	P2PKH   string            `json:"p2pkh,omitempty"`
	P2SH    string            `json:"p2sh,omitempty"`
	Sapling string            `json:"sapling,omitempty"`
	Orchard string            `json:"orchard,omitempty"`
	Unknown []unknownReceiver `json:"unknown,omitempty"`
}

// unknownReceiver is the hex encoding of a receiver with an unknown typecode.
type unknownReceiver struct {
	Typecode uint32 `json:"typecode"`
	Data     string `json:"data"`
}

// addressesJSON lists the receivers of an address as standalone addresses.
type addressesJSON struct {
	P2PKH   string `json:"p2pkh,omitempty"`
	P2SH    string `json:"p2sh,omitempty"`
	Sapling string `json:"sapling,omitempty"`
	Orchard string `json:"orchard,omitempty"`
}

// report describes the classification of a single input.
type report struct {
	Input      string         `json:"input"`
	Valid      bool           `json:"valid"`
	Status     string         `json:"status"`
	Type       string         `json:"type"`
	Network    string         `json:"network,omitempty"`
	Normalized string         `json:"normalized,omitempty"`
	Typecodes  []string       `json:"typecodes,omitempty"`
	Receivers  *receiversJSON `json:"receivers,omitempty"`
	Addresses  *addressesJSON `json:"receiveraddresses,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// hexOrEmpty returns the hex encoding of b or an empty string when b is nil.
func hexOrEmpty(b []byte) string {
	if b == nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// newReport classifies the input under the options and describes the result.
func newReport(input string, opts ...zaddr.Option) *report {
	c := zaddr.Classify(input, opts...)
	r := &report{
		Input:  input,
		Valid:  c.Status == zaddr.StatusValid,
		Status: c.Status.String(),
		Type:   c.Type.String(),
	}
	if c.Err != nil {
		r.Error = c.Err.Error()
		log.Debugf("Classified %q as %v: %v", input, c.Status, c.Err)
		return r
	}

	addr := c.Address
	r.Network = addr.Network().String()
	r.Normalized = addr.String()

	recv := addr.Receivers()
	r.Receivers = &receiversJSON{
		P2PKH:   hexOrEmpty(recv.P2PKH),
		P2SH:    hexOrEmpty(recv.P2SH),
		Sapling: hexOrEmpty(recv.Sapling),
		Orchard: hexOrEmpty(recv.Orchard),
	}
	for _, u := range recv.Unknown {
		r.Receivers.Unknown = append(r.Receivers.Unknown, unknownReceiver{
			Typecode: uint32(u.Typecode),
			Data:     hex.EncodeToString(u.Data),
		})
	}

	if ua, ok := addr.(*zaddr.AddressUnified); ok {
		r.Typecodes = typecodeNames(ua.UnifiedReceivers())
	}

	// Only addresses that bundle receivers list them separately.
	if addr.Type() == zaddr.TypeUnified || addr.Type() == zaddr.TypeTex {
		a := zaddr.GetReceiverAddresses(r.Normalized, zaddr.WithNetwork(
			addr.Network()))
		r.Addresses = &addressesJSON{
			P2PKH:   a.P2PKH,
			P2SH:    a.P2SH,
			Sapling: a.Sapling,
			Orchard: a.Orchard,
		}
	}
	if n := len(recv.Unknown); n > 0 {
		log.Infof("Address %s carries %d receivers with unknown typecodes "+
			"(first %v)", r.Normalized, n, recv.Unknown[0].Typecode)
	}
	return r
}

// reportWriter writes reports as JSON.
type reportWriter struct {
	enc *json.Encoder
}

// newReportWriter returns a writer that encodes reports to w, one per line
// when compact is set and indented otherwise.
func newReportWriter(w io.Writer, compact bool) *reportWriter {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return &reportWriter{enc: enc}
}

// write encodes the report.
func (w *reportWriter) write(r *report) error {
	return w.enc.Encode(r)
}

// readLine reads the next line from r without its line ending.  Only the
// first maxLen+1 bytes of a longer line are kept and the rest is discarded, in
// which case cut is true.  It returns io.EOF once the input is exhausted.
func readLine(r *bufio.Reader, maxLen int) (line string, cut bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				break
			}
			return "", false, err
		}
		if len(buf) <= maxLen {
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if len(buf) > maxLen {
		return string(buf[:maxLen+1]), true, nil
	}
	return string(buf), false, nil
}

// classifyLines classifies each non-empty line read from in and writes the
// reports.  When prompt is not nil a prompt is written to it before each
// line is read.
//
// A line longer than zaddr.MaxAddressLength is reported as exceeding it
// rather than ending the run.
func classifyLines(in io.Reader, w *reportWriter, prompt io.Writer,
	opts ...zaddr.Option) error {

	r := bufio.NewReader(in)
	for {
		if prompt != nil {
			fmt.Fprint(prompt, "Address: ")
		}
		line, cut, err := readLine(r, zaddr.MaxAddressLength)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("unable to read input: %w", err)
		}
		if !cut {
			line = strings.TrimSpace(line)
		}
		if line == "" {
			continue
		}
		if err := w.write(newReport(line, opts...)); err != nil {
			return fmt.Errorf("unable to write report: %w", err)
		}
	}
	if prompt != nil {
		fmt.Fprintln(prompt)
	}
	return nil
}

// typecodeNames returns the names of the typecodes of the receivers.
func typecodeNames(receivers []unified.Receiver) []string {
	names := make([]string, 0, len(receivers))
	for _, r := range receivers {
		names = append(names, r.Typecode.String())
	}
	return names
}
