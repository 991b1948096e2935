// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// hash160Size is the size of the hash in a pay-to-pubkey-hash or
// pay-to-script-hash address.
const hash160Size = 20

// AddressParams returns the parameters in the form btcutil's address, WIF
// and extended key encoders expect.  Only the fields those encoders and
// btcd's network registry read are meaningful; deployments are left unset.
//
// The result shares no memory with p, so it may be handed to btcd's global
// registry without exposing the network parameters to modification.
func (p *Params) AddressParams() *btcchaincfg.Params {
	dnsSeeds := make([]btcchaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		dnsSeeds = append(dnsSeeds, btcchaincfg.DNSSeed{Host: seed.Host})
	}
	checkpoints := make([]btcchaincfg.Checkpoint, 0,
		len(p.Checkpoints.Checkpoints))
	for _, cp := range p.Checkpoints.Checkpoints {
		hash := *cp.Hash
		checkpoints = append(checkpoints, btcchaincfg.Checkpoint{
			Height: cp.Height,
			Hash:   &hash,
		})
	}

	genesisBlock := &wire.MsgBlock{Header: p.GenesisBlock.Header}
	for _, tx := range p.GenesisBlock.Transactions {
		genesisBlock.Transactions = append(genesisBlock.Transactions, tx.Copy())
	}
	genesisHash := *p.GenesisHash

	c := &p.Consensus
	return &btcchaincfg.Params{
		Name:        p.Name,
		Net:         p.Net,
		DefaultPort: p.DefaultPort,
		DNSSeeds:    dnsSeeds,

		GenesisBlock:                  genesisBlock,
		GenesisHash:                   &genesisHash,
		PowLimit:                      new(big.Int).Set(c.PowLimit),
		PowLimitBits:                  c.PowLimitBits,
		BIP0034Height:                 c.BIP0034Height,
		SubsidyReductionInterval:      c.SubsidyHalvingInterval,
		TargetTimespan:                c.PowTargetTimespan,
		TargetTimePerBlock:            c.PowTargetSpacing,
		ReduceMinDifficulty:           c.PowAllowMinDifficultyBlocks,
		GenerateSupported:             p.MineBlocksOnDemand,
		Checkpoints:                   checkpoints,
		RuleChangeActivationThreshold: c.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       c.MinerConfirmationWindow,
		RelayNonStdTxs:                !p.RequireStandard,

		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,
		HDPrivateKeyID:   p.HDPrivateKeyID,
		HDPublicKeyID:    p.HDPublicKeyID,
		HDCoinType:       p.HDCoinType,
	}
}

// RegisterAddressParams registers the network with btcd's network registry
// so that btcutil can decode its addresses and derive public extended keys
// from private ones.  Registering the same network again is not an error.
func RegisterAddressParams(p *Params) error {
	err := btcchaincfg.Register(p.AddressParams())
	if errors.Is(err, btcchaincfg.ErrDuplicateNet) {
		return nil
	}
	return err
}

// EncodePubKeyHash returns the pay-to-pubkey-hash address of the given
// hash160 on the network.
func (p *Params) EncodePubKeyHash(hash160 []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(hash160, p.AddressParams())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// EncodeScriptHash returns the pay-to-script-hash address of the given script
// hash on the network.
func (p *Params) EncodeScriptHash(scriptHash []byte) (string, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(scriptHash,
		p.AddressParams())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// DecodePubKeyHash returns the hash160 of a pay-to-pubkey-hash address.  It
// fails with ErrWrongNetwork when the address carries another prefix.
func (p *Params) DecodePubKeyHash(addr string) ([]byte, error) {
	hash, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", addr, err)
	}
	if version != p.PubKeyHashAddrID {
		return nil, fmt.Errorf("address %q has prefix %#02x, want %#02x: "+
			"%w", addr, version, p.PubKeyHashAddrID, ErrWrongNetwork)
	}
	if len(hash) != hash160Size {
		return nil, fmt.Errorf("address %q has a %d byte hash, want %d",
			addr, len(hash), hash160Size)
	}
	return hash, nil
}

// GenesisPayoutAddress returns the pay-to-pubkey-hash form of the key the
// genesis coinbase pays to.
func (p *Params) GenesisPayoutAddress() (string, error) {
	pubKey, err := btcutil.NewAddressPubKey(genesisPubKey, p.AddressParams())
	if err != nil {
		return "", err
	}
	return pubKey.AddressPubKeyHash().EncodeAddress(), nil
}
