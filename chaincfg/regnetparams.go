// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RegNetParams returns the network parameters for the regression test
// network.  The network is meant for a fully isolated, deterministic local
// chain: blocks are produced on demand, difficulty never retargets and there
// are no seeds.
func RegNetParams() (*Params, error) {
	// regNetPowLimit is the highest proof of work value a block can have
	// for the regression test network.  It is the value 2^255 - 1.
	regNetPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	genesisBlock, genesisHash, err := createNetworkGenesis(RegTest,
		1515708002, 13649,
		"00000ba8223431a7a5db1f9381d59d4b8fe23a9e93e665bb7a94c8504ecf534f",
		"efcdbc4c7d74c3abf0b0d725828a0ba34b931fabb68313c659717eb2cf307080")
	if err != nil {
		return nil, err
	}

	return &Params{
		Name:        RegTestName,
		Network:     RegTest,
		Net:         RegTestMagic,
		DefaultPort: "12666",
		DNSSeeds:    nil, // NOTE: There must NOT be any seeds.
		FixedSeeds:  nil,

		// Chain parameters
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisHash,
		Consensus: ConsensusParams{
			SubsidyHalvingInterval:           150,
			MasternodePaymentsStartBlock:     240,
			MasternodePaymentsIncreaseBlock:  350,
			MasternodePaymentsIncreasePeriod: 10,
			InstantSendKeepLock:              6,
			BudgetPaymentsStartBlock:         1000,
			BudgetPaymentsCycleBlocks:        50,
			BudgetPaymentsWindowBlocks:       10,
			BudgetProposalEstablishingTime:   time.Minute * 20,
			SuperblockStartBlock:             1500,
			SuperblockCycle:                  10,
			GovernanceMinQuorum:              1,
			GovernanceFilterElements:         100,
			MasternodeMinimumConfirmations:   1,
			MajorityEnforceBlockUpgrade:      750,
			MajorityRejectBlockOutdated:      950,
			MajorityWindow:                   1000,
			BIP0034Height:                    -1, // Not necessarily active
			BIP0034Hash:                      chainhash.Hash{},
			PowLimit:                         regNetPowLimit,
			PowLimitBits:                     0x207fffff,
			PowTargetTimespan:                time.Hour * 12,   // 12 hours
			PowTargetSpacing:                 time.Second * 90, // 1.5 minutes
			PowAllowMinDifficultyBlocks:      true,
			PowNoRetargeting:                 true,

			// Consensus rule change deployments.
			RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  0,            // Always available for vote
					ExpireTime: 999999999999, // Never expires
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  0,            // Always available for vote
					ExpireTime: 999999999999, // Never expires
				},
			},

			GenesisHash: *genesisHash,
		},
		PruneAfterHeight: 1000,
		MaxTipAge:        time.Hour * 24 * 30,

		MiningRequiresPeers:           false,
		DefaultConsistencyChecks:      true,
		RequireStandard:               false,
		MineBlocksOnDemand:            true,
		TestnetToBeDeprecatedFieldRPC: false,

		FulfilledRequestExpireTime: time.Minute * 5,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, genesisHash},
			},
			LastCheckpointTime:      time.Unix(1515708002, 0),
			TxCountAtLastCheckpoint: 0,
			TxPerDayAfterCheckpoint: 0,
		},

		// Address encoding magics
		PubKeyHashAddrID: 0x8c, // starts with y
		ScriptHashAddrID: 0x12, // starts with 8
		PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x5f, 0x18, 0xbc}, // starts with vprv
		HDPublicKeyID:  [4]byte{0x04, 0x5f, 0x1c, 0xf6}, // starts with vpub

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 1,
	}, nil
}
