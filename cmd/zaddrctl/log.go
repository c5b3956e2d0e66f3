// Copyright (c) 2017-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/decred/slog"
	"github.com/ruzcash/zaddr"
)

// backendLog is the logging backend used to create all subsystem loggers.
// Output goes to standard error so it never mixes with the JSON results.
var backendLog = slog.NewBackend(os.Stderr)

var (
	log     = backendLog.Logger("ZCTL")
	zaddLog = backendLog.Logger("ZADR")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"ZCTL": log,
	"ZADR": zaddLog,
}

func init() {
	zaddr.UseLogger(zaddLog)
}

// setLogLevels sets the logging level of every subsystem logger to the level
// named by debugLevel.
func setLogLevels(debugLevel string) error {
	level, ok := slog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("the specified debug level [%v] is invalid",
			debugLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
