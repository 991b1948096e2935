// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/btcsuite/btclog"

// log is the package logger.  Nothing is logged until the caller provides a
// logger with UseLogger; parameters are built at startup, usually before the
// application has set up its logging backend.
var log btclog.Logger

func init() {
	DisableLog()
}

// DisableLog disables all library log output.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger uses a specified Logger to output genesis construction and
// network selection messages.
func UseLogger(logger btclog.Logger) {
	log = logger
}
