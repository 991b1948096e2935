// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"time"
)

// TestNetParams returns the network parameters for the public Cerberus test
// network.  Standardness checks are relaxed and minimum difficulty blocks are
// allowed when the previous block is too old.
func TestNetParams() (*Params, error) {
	genesisBlock, genesisHash, err := createNetworkGenesis(TestNet,
		1515708000, 142682,
		"000009d6946cffd7a3dafed3412af6de8158fa99f677c304911cfd401aecb494",
		"efcdbc4c7d74c3abf0b0d725828a0ba34b931fabb68313c659717eb2cf307080")
	if err != nil {
		return nil, err
	}

	return &Params{
		Name:        TestNetName,
		Network:     TestNet,
		Net:         TestNetMagic,
		DefaultPort: "11666",
		DNSSeeds: []DNSSeed{
			{"cerberus-ng.com", "testnet-seed1.cerberus-ng.com"},
		},
		FixedSeeds: nil,

		// Chain parameters
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisHash,
		Consensus: ConsensusParams{
			SubsidyHalvingInterval:           100000,
			MasternodePaymentsStartBlock:     300, // less than MasternodePaymentsIncreaseBlock
			MasternodePaymentsIncreaseBlock:  58000,
			MasternodePaymentsIncreasePeriod: 576 * 30,
			InstantSendKeepLock:              6,
			BudgetPaymentsStartBlock:         2100000000,
			BudgetPaymentsCycleBlocks:        50,
			BudgetPaymentsWindowBlocks:       10,
			BudgetProposalEstablishingTime:   time.Minute * 20,
			SuperblockStartBlock:             2100000000,
			SuperblockCycle:                  24, // hourly
			GovernanceMinQuorum:              1,
			GovernanceFilterElements:         500,
			MasternodeMinimumConfirmations:   1,
			MajorityEnforceBlockUpgrade:      51,
			MajorityRejectBlockOutdated:      75,
			MajorityWindow:                   100,
			BIP0034Height:                    0,
			BIP0034Hash:                      *genesisHash,
			PowLimit:                         newPowLimit("00000fffff000000000000000000000000000000000000000000000000000000"),
			PowLimitBits:                     0x1e0fffff,
			PowTargetTimespan:                time.Hour * 12,   // 12 hours
			PowTargetSpacing:                 time.Second * 90, // 1.5 minutes
			PowAllowMinDifficultyBlocks:      true,
			PowNoRetargeting:                 false,

			// Consensus rule change deployments.
			RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1502280000, // August 9th, 2017
					ExpireTime: 1533816000, // August 9th, 2018
				},
			},

			GenesisHash: *genesisHash,
		},
		PruneAfterHeight: 1000,
		MaxTipAge:        time.Second * math.MaxInt32, // mine on top of old blocks
		AlertPubKey:      hexDecode("04c73f65f6c09bd3c2701549fba25acb7c607779db60809601c0f6c9c9a9b20c7351833f0340886faadf7710e00a8d624f11155ff4ba07b93a5b72fbf07ffc4e8a"),

		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      false,
		RequireStandard:               false,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: true,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: time.Minute * 5,
		SporkPubKey:                "04c5a0b61c2dbf34a367d99d2a15287722cd22feb5887387e083f2bb819a573366d4ebe4c6f86063dad11974220026312a20c0b6b01fa583c75ac5518143a8e8ad",
		MasternodePaymentsPubKey:   "04f9325caafd391ec5866063467217c302e4cd948f331d808bf60a84512a4e98f5cf56f8daef91010f210dccae1dd6ec92b72e9546abc6e9edeef969f91929c3a4",

		// Checkpoints ordered from oldest to newest.
		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, genesisHash},
			},
			LastCheckpointTime:      time.Unix(1515708000, 0),
			TxCountAtLastCheckpoint: 0,
			TxPerDayAfterCheckpoint: 500,
		},

		// Address encoding magics
		PubKeyHashAddrID: 0x70, // starts with n
		ScriptHashAddrID: 0x14, // starts with 9
		PrivateKeyID:     0xf0, // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 1,
	}, nil
}
