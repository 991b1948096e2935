// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the parameters of the Cerberus networks.
//
// Each network, main, test and regtest, is described by a Params value holding
// its consensus thresholds, wire magic, genesis block, checkpoints, seeds and
// address encoding magics.  Parameters are built by MainNetParams,
// TestNetParams and RegNetParams.  Every constructor builds the genesis block
// from its literal header fields and fails with a *GenesisMismatchError when
// the result does not hash to the expected value.
//
// A node constructs all networks once at startup with NewRegistry and selects
// the one it runs on:
//
//	registry, err := chaincfg.NewRegistry()
//	if err != nil {
//		// A genesis mismatch is a corrupted build; do not start.
//		os.Exit(1)
//	}
//	selector := chaincfg.NewSelector(registry)
//	if err := selector.Select(cfg.Network); err != nil {
//		// *UnknownNetworkError: the name is a configuration error.
//	}
//	params := selector.Params()
//
// The selected *Params is then passed to every subsystem.  Params are never
// modified after construction and may be read concurrently.
//
// The package only stores and serves the checkpoint table; rejecting blocks
// that disagree with it is up to block validation.
package chaincfg
