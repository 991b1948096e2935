// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Cerberus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"net"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// Checkpoint identifies a known good point in the block chain.  A block at a
// checkpointed height whose hash differs from the checkpoint must be rejected
// by block validation.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the operator of the seed.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// FixedSeed is a peer address compiled into the binary, used when DNS seeding
// yields nothing.  IPv4 addresses are stored IPv4-mapped.
type FixedSeed struct {
	IP   [16]byte
	Port uint16
}

// NewFixedSeed returns a FixedSeed for the given address.  ok is false when ip
// is not a valid IPv4 or IPv6 address.
func NewFixedSeed(ip net.IP, port uint16) (seed FixedSeed, ok bool) {
	ip16 := ip.To16()
	if ip16 == nil {
		return FixedSeed{}, false
	}
	copy(seed.IP[:], ip16)
	seed.Port = port
	return seed, true
}

// String returns the seed as a host:port pair.
func (s FixedSeed) String() string {
	return net.JoinHostPort(net.IP(s.IP[:]).String(),
		strconv.Itoa(int(s.Port)))
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64
}

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// ConsensusParams holds the thresholds consumed by block validation, the
// difficulty algorithm and the masternode, budget and governance subsystems.
type ConsensusParams struct {
	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// Masternode payment schedule.
	MasternodePaymentsStartBlock     int32
	MasternodePaymentsIncreaseBlock  int32
	MasternodePaymentsIncreasePeriod int32

	// InstantSendKeepLock is the number of blocks an InstantSend lock is
	// kept for.
	InstantSendKeepLock int32

	// Budget and superblock schedule.  SuperblockStartBlock is greater than
	// BudgetPaymentsStartBlock, except on testnet where both are parked at
	// the same unreachable height.
	BudgetPaymentsStartBlock       int32
	BudgetPaymentsCycleBlocks      int32
	BudgetPaymentsWindowBlocks     int32
	BudgetProposalEstablishingTime time.Duration
	SuperblockStartBlock           int32
	SuperblockCycle                int32

	// Governance object thresholds.
	GovernanceMinQuorum      int32
	GovernanceFilterElements int32

	// MasternodeMinimumConfirmations is the depth a masternode collateral
	// must reach before the masternode is accepted.
	MasternodeMinimumConfirmations int32

	// Block version upgrade majorities, counted over the last
	// MajorityWindow blocks.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP0034Height is the height at which BIP0034 became active and
	// BIP0034Hash the hash of that block.  A negative height means the
	// rule is not necessarily active.
	BIP0034Height int32
	BIP0034Hash   chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PowTargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined, and
	// PowTargetSpacing the desired amount of time to generate each block.
	PowTargetTimespan time.Duration
	PowTargetSpacing  time.Duration

	// PowAllowMinDifficultyBlocks allows a minimum difficulty block when
	// the previous block is too old.  Only for test networks.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting disables difficulty retargeting entirely.
	PowNoRetargeting bool

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// GenesisHash is the hash of the genesis block.
	GenesisHash chainhash.Hash
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets, PowTargetTimespan / PowTargetSpacing.
//
// NOTE: MinerConfirmationWindow is documented as this ratio, but the
// hard-coded constants of every network disagree with it.  Both are kept
// as they are.
func (c *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return int64(c.PowTargetTimespan / c.PowTargetSpacing)
}

// Params defines a Cerberus network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// Params are built once by the network constructors and must never be
// modified afterwards.  Nothing enforces this: GenesisBlock, GenesisHash,
// Consensus.PowLimit and the seed and checkpoint slices are pointers shared
// by every holder of the same Params, such as the registry and its selectors.
// Use AddressParams to obtain an independent copy for btcd.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the closed identifier of the network.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the peer addresses compiled into the binary.
	FixedSeeds []FixedSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Consensus holds the consensus rule thresholds.
	Consensus ConsensusParams

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight uint64

	// MaxTipAge is how old the chain tip may be before the node considers
	// itself in initial block download.
	MaxTipAge time.Duration

	// AlertPubKey is the key alert messages must be signed with.
	AlertPubKey []byte

	// MiningRequiresPeers defines whether mining requires at least one
	// connected peer.
	MiningRequiresPeers bool

	// DefaultConsistencyChecks enables expensive internal consistency
	// checks by default.
	DefaultConsistencyChecks bool

	// RequireStandard defines whether only standard transactions are
	// relayed and mined.
	RequireStandard bool

	// MineBlocksOnDemand defines whether blocks may be produced on request
	// instead of by mining.
	MineBlocksOnDemand bool

	// TestnetToBeDeprecatedFieldRPC keeps the deprecated "testnet" field in
	// RPC replies.
	TestnetToBeDeprecatedFieldRPC bool

	// PoolMaxTransactions is the maximum number of transactions in a
	// mixing pool.
	PoolMaxTransactions int

	// FulfilledRequestExpireTime is how long a fulfilled network request is
	// remembered.
	FulfilledRequestExpireTime time.Duration

	// Keys authorizing spork messages and masternode payment votes,
	// hex encoded uncompressed public keys.
	SporkPubKey              string
	MasternodePaymentsPubKey string

	// Checkpoints ordered from oldest to newest.
	Checkpoints CheckpointData

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32
}

// MessageStart returns the four bytes that start every peer-to-peer message
// on the network.
func (p *Params) MessageStart() [4]byte {
	return messageStart(p.Net)
}

// HDCoinTypeBytes returns the hardened BIP44 coin type as the big endian four
// byte sequence used in extended key derivation paths.
func (p *Params) HDCoinTypeBytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], p.HDCoinType|hdHardenedKeyStart)
	return b
}

// hdHardenedKeyStart is the index at which a hardened key starts.
const hdHardenedKeyStart = 0x80000000

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes, so it will only ever potentially panic
		// while the parameters are constructed.
		panic(err)
	}
	return hash
}

// hexDecode converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors
// in the source code can be detected.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// newPowLimit returns the proof of work limit encoded by the given big-endian
// hex string.
func newPowLimit(hexStr string) *big.Int {
	limit, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid pow limit: " + hexStr)
	}
	return limit
}
