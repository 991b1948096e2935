// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// The authorization keys are stored exactly as configured and only parsed
// when a consumer asks for them.

// parsePubKey parses a serialized secp256k1 public key.
func parsePubKey(kind string, serialized []byte) (*secp256k1.PublicKey, error) {
	if len(serialized) == 0 {
		return nil, fmt.Errorf("%s key: %w", kind, ErrNoKey)
	}
	key, err := secp256k1.ParsePubKey(serialized)
	if err != nil {
		return nil, fmt.Errorf("%s key: %w", kind, err)
	}
	return key, nil
}

// parseHexPubKey parses a hex encoded secp256k1 public key.
func parseHexPubKey(kind, hexKey string) (*secp256k1.PublicKey, error) {
	serialized, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%s key: %w", kind, err)
	}
	return parsePubKey(kind, serialized)
}

// SporkKey returns the public key spork messages must be signed with.
func (p *Params) SporkKey() (*secp256k1.PublicKey, error) {
	return parseHexPubKey("spork", p.SporkPubKey)
}

// MasternodePaymentsKey returns the public key masternode payment votes must
// be signed with.
func (p *Params) MasternodePaymentsKey() (*secp256k1.PublicKey, error) {
	return parseHexPubKey("masternode payments", p.MasternodePaymentsPubKey)
}

// AlertKey returns the public key alert messages must be signed with.
func (p *Params) AlertKey() (*secp256k1.PublicKey, error) {
	return parsePubKey("alert", p.AlertPubKey)
}
