// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cerberusng/cerberusd/chaincfg"
	"github.com/davecgh/go-spew/spew"
)

// writeSummary writes a short description of the network to w.
func writeSummary(w io.Writer, params *chaincfg.Params, now time.Time) error {
	payout, err := params.GenesisPayoutAddress()
	if err != nil {
		return err
	}

	c := &params.Consensus
	latest := "none"
	if cp := params.Checkpoints.LatestCheckpoint(); cp != nil {
		latest = fmt.Sprintf("%d %v", cp.Height, cp.Hash)
	}
	coinType := params.HDCoinTypeBytes()
	lines := []struct {
		label string
		value interface{}
	}{
		{"network", params.Name},
		{"message start", fmt.Sprintf("%x", params.MessageStart())},
		{"default port", params.DefaultPort},
		{"genesis hash", params.GenesisHash},
		{"genesis merkle root", params.GenesisBlock.Header.MerkleRoot},
		{"genesis payout", payout},
		{"subsidy halving interval", c.SubsidyHalvingInterval},
		{"target spacing", c.PowTargetSpacing},
		{"difficulty adjustment interval", c.DifficultyAdjustmentInterval()},
		{"pow limit bits", fmt.Sprintf("%08x", c.PowLimitBits)},
		{"checkpoints", params.Checkpoints.TotalCheckpoints()},
		{"latest checkpoint", latest},
		{"estimated height", params.EstimatedHeightForTime(now)},
		{"dns seeds", len(params.DNSSeeds)},
		{"address prefixes", fmt.Sprintf("pubkey %#02x, script %#02x, "+
			"secret %#02x", params.PubKeyHashAddrID,
			params.ScriptHashAddrID, params.PrivateKeyID)},
		{"hd prefixes", fmt.Sprintf("private %x, public %x",
			params.HDPrivateKeyID, params.HDPublicKeyID)},
		{"hd coin type", fmt.Sprintf("%d (%x)", params.HDCoinType, coinType)},
	}

	for _, line := range lines {
		_, err := fmt.Fprintf(w, "%-32s %v\n", line.label+":", line.value)
		if err != nil {
			return err
		}
	}
	return nil
}

// cerberusParamsMain is the real main function for cerberusparams.  It is
// necessary to work around the fact that deferred functions do not run when
// os.Exit() is called.
func cerberusParamsMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Every network is constructed, and therefore verified, before one is
	// selected.
	registry, err := chaincfg.NewRegistry()
	if err != nil {
		cprmLog.Criticalf("Unable to load network parameters: %v", err)
		return err
	}

	selector := chaincfg.NewSelector(registry)
	if err := selector.Select(cfg.network); err != nil {
		cprmLog.Errorf("Unable to select network: %v", err)
		return err
	}
	params := selector.Params()

	if err := chaincfg.RegisterAddressParams(params); err != nil {
		cprmLog.Errorf("Unable to register %s address parameters: %v",
			params.Name, err)
		return err
	}

	if err := writeSummary(os.Stdout, params, time.Now()); err != nil {
		cprmLog.Errorf("Unable to write summary: %v", err)
		return err
	}

	if cfg.addressHash != nil {
		addr, err := params.EncodePubKeyHash(cfg.addressHash)
		if err != nil {
			cprmLog.Errorf("Unable to encode address: %v", err)
			return err
		}
		fmt.Printf("%-32s %s\n", "address:", addr)
	}

	if cfg.Dump {
		spew.Fdump(os.Stdout, params)
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := cerberusParamsMain(); err != nil {
		os.Exit(1)
	}
}
