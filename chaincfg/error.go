// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrAlreadySelected describes an error where a network selection was
// attempted after one had already been made.
var ErrAlreadySelected = errors.New("active network already selected")

// ErrWrongNetwork describes an error where an encoded address or key carries
// the prefix of a different network.
var ErrWrongNetwork = errors.New("encoded for a different network")

// ErrNoKey describes an error where a network defines no key of the
// requested kind.
var ErrNoKey = errors.New("network defines no such key")

// UnknownNetworkError describes an error where a network identifier does not
// name any of the known networks.
type UnknownNetworkError struct {
	Name string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network %q (want %q, %q or %q)", e.Name,
		MainNetName, TestNetName, RegTestName)
}

// GenesisMismatchError describes an error where a genesis block built from
// the hard-coded parameters of a network does not hash to the value the
// network expects.  It always indicates a corrupted build or a typo in the
// parameters, and a node must not start with it.
type GenesisMismatchError struct {
	Network Network
	Field   string // "block hash" or "merkle root"
	Got     chainhash.Hash
	Want    chainhash.Hash
}

// Error satisfies the error interface and prints human-readable errors.
func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: got %v, want %v", e.Network,
		e.Field, e.Got, e.Want)
}
