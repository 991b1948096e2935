// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// MainNetParams returns the network parameters for the main Cerberus network.
// An error is returned when the genesis block built from the parameters does
// not match the hard-coded genesis hash or merkle root.
func MainNetParams() (*Params, error) {
	genesisBlock, genesisHash, err := createNetworkGenesis(MainNet,
		1515819600, 1534623,
		"00000980ea8d83f03493b7a583ce47d91de5c2469e0dc9361e9e125a64142df1",
		"efcdbc4c7d74c3abf0b0d725828a0ba34b931fabb68313c659717eb2cf307080")
	if err != nil {
		return nil, err
	}

	return &Params{
		Name:        MainNetName,
		Network:     MainNet,
		Net:         MainNetMagic,
		DefaultPort: "10666",
		DNSSeeds: []DNSSeed{
			{"cerberus-ng.com", "seed1.cerberus-ng.com"},
			{"cerberus-ng.com", "seed2.cerberus-ng.com"},
			{"cerberus-ng.com", "seed3.cerberus-ng.com"},
		},
		FixedSeeds: nil,

		// Chain parameters
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisHash,
		Consensus: ConsensusParams{
			SubsidyHalvingInterval:           262800, // one year
			MasternodePaymentsStartBlock:     100,
			MasternodePaymentsIncreaseBlock:  20160, // after 4 weeks
			MasternodePaymentsIncreasePeriod: 20160, // every 4 weeks
			InstantSendKeepLock:              24,
			BudgetPaymentsStartBlock:         525000,
			BudgetPaymentsCycleBlocks:        21600,
			BudgetPaymentsWindowBlocks:       100,
			BudgetProposalEstablishingTime:   time.Hour * 24,
			SuperblockStartBlock:             900000000, // off for now
			SuperblockCycle:                  21600,
			GovernanceMinQuorum:              10,
			GovernanceFilterElements:         20000,
			MasternodeMinimumConfirmations:   15,
			MajorityEnforceBlockUpgrade:      750,
			MajorityRejectBlockOutdated:      950,
			MajorityWindow:                   1000,
			BIP0034Height:                    0,
			BIP0034Hash:                      *genesisHash,
			PowLimit:                         newPowLimit("00000fffff000000000000000000000000000000000000000000000000000000"),
			PowLimitBits:                     0x1e0fffff,
			PowTargetTimespan:                time.Minute * 30, // 0.5 hours
			PowTargetSpacing:                 time.Minute * 2,  // 2 minutes
			PowAllowMinDifficultyBlocks:      false,
			PowNoRetargeting:                 false,

			// Consensus rule change deployments.
			RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
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
		PruneAfterHeight: 100000,
		MaxTipAge:        time.Hour * 6, // ~180 blocks behind
		AlertPubKey:      hexDecode("0414a5ae855274ef87159053776cf81c044aeee2660bcc06acca30b4cdbcc086a959d9e7132aecd08b00447b8382354712ee3239e16ab3f0d2772db7a857317b6f"),

		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: false,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: time.Hour,
		SporkPubKey:                "04978128456dd761e2fde24d20be726bfe171d8e8461360d62ffb42aa4d8b02b6f857d3bf6fe6dfe75338940158db4d200d7efbad4024f7a06acca149ee0e5b499",
		MasternodePaymentsPubKey:   "048fad2608f8f4ba09ac006c1089b30e010d04473a60af21190659c5bedbec8339f43f0797f247b52658ac059d54d45d4cbdefdb460fe776bdad81484d5ad1e05a",

		// Checkpoints ordered from oldest to newest.
		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, genesisHash},
				{1300, newHashFromStr("00000000004414be721ec3c863352e3c4d295eed2e153dc1c7b4fc690cd6e52c")},
				{20000, newHashFromStr("0000000000b614436a5caf158132aaa1ee45ee1b42988b1df9c744eba84cc00b")},
				{30000, newHashFromStr("0000000000cea9ec75d19c5960e276fbad25bbfaa07f4384b09946a6b78b3e77")},
				{40000, newHashFromStr("000000000890217f93ce1ef06b0d1f8351def52851f4ae053a40801e1044fd28")},
				{50000, newHashFromStr("00000000170db3d57c30c336c3a0b75489681f1550dd8024a77bc702d8853fe1")},
				{60000, newHashFromStr("0000000008323e25e8cdc4405a2bcb327aade2ec4032b35bf680e919f5fd45fb")},
				{70000, newHashFromStr("000000004ed8e3ca3b06698bb67724ec2fa51c41c6045534569ceee355e6cd50")},
				{75000, newHashFromStr("000000005efe835b5ee643928de4143f86bbbc9dd37fb8d265b46cc3e0073236")},
				{80000, newHashFromStr("00000000d6362ef19ca5a6730d37c5664fce6d48b714133056ef3a076635f779")},
				{81000, newHashFromStr("000000003480badce8395af1eb1d295b914f9b75cb03ad637c6ad7d04c289cbc")},
				{82000, newHashFromStr("00000000bae3b1e8c1b8a1f39f2e91e6047ee4809a3a4f7528209241496ec07b")},
				{83000, newHashFromStr("0000000024793bced07ddd246542295434351c5cf9c0fb7d6db278f026957f73")},
				{84000, newHashFromStr("000000001cb459d938bf18ace53da199f288fd4f33c1bba928ba1079feaeef2a")},
				{85000, newHashFromStr("0000000035671ebcc774f1d4c2dc7e7bda036a520104da4df36641be2f41f808")},
				{86000, newHashFromStr("0000000059a325e4e349dcb7e55836bbb8fbc52e1290635fd40756c727676d96")},
				{87000, newHashFromStr("000000006776e30c3364795c40d34a785e73d7a70715cf276bef7a9e38c840fe")},
				{88000, newHashFromStr("00000000ca441fd20eaab9af3e17b0fff6a62e1ca0220776a5bfeae899182cd6")},
				{89000, newHashFromStr("00000000a3780c451840e303d0ba4f2a739dbd5b2559cf3ebb0abcfbbf66530b")},
				{89100, newHashFromStr("000000000fe70b4cbe2584b15b613de1a18d0ab92433140dac9bc8d84735571e")},
			},
			LastCheckpointTime:      time.Unix(1527317112, 0),
			TxCountAtLastCheckpoint: 117367,
			TxPerDayAfterCheckpoint: 1000,
		},

		// Address encoding magics
		PubKeyHashAddrID: 0x1c, // starts with C
		ScriptHashAddrID: 0x10, // starts with 7
		PrivateKeyID:     0xcc, // starts with 7 (uncompressed) or X (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 5,
	}, nil
}
